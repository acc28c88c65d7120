// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package plugin

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	lua "github.com/yuin/gopher-lua"

	"github.com/stacklok/skinstudio-core/document"
	"github.com/stacklok/skinstudio-core/rules"
	"github.com/stacklok/skinstudio-core/schema"
	"github.com/stacklok/skinstudio-core/storage"
	"github.com/stacklok/skinstudio-core/validation/name"
)

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFS sets the filesystem plugins and the storages they declare use.
func WithFS(fsys afero.Fs) LoaderOption {
	return func(l *Loader) { l.fs = fsys }
}

// WithEngine sets the rule engine used to compile predicates.
func WithEngine(e *rules.Engine) LoaderOption {
	return func(l *Loader) { l.engine = e }
}

// WithLogger sets the logger handed to the loader and the providers it builds.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loader builds providers from plugin directories.
type Loader struct {
	fs     afero.Fs
	engine *rules.Engine
	logger *slog.Logger
}

// NewLoader creates a Loader reading from the OS filesystem by default.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		fs:     afero.NewOsFs(),
		engine: rules.NewEngine(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load scans dirs in order and returns the providers found. Within a
// directory, manifests come first and standalone scripts second, each in
// lexical order. Scripts named by a manifest are not loaded again on their own.
// Missing directories are skipped; the first invalid plugin aborts the load.
func (l *Loader) Load(ctx context.Context, dirs ...string) ([]any, error) {
	var out []any
	for _, dir := range dirs {
		providers, err := l.loadDir(ctx, dir)
		if err != nil {
			return nil, err
		}
		out = append(out, providers...)
	}
	l.logger.Debug("loaded plugins", "dirs", dirs, "providers", len(out))
	return out, nil
}

func (l *Loader) loadDir(ctx context.Context, dir string) ([]any, error) {
	entries, err := afero.ReadDir(l.fs, dir)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Debug("plugin directory does not exist", "dir", dir)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading plugin directory %s: %w", dir, err)
	}

	var (
		out        []any
		scripts    []string
		referenced = make(map[string]bool)
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			providers, refs, err := l.loadManifest(path)
			if err != nil {
				return nil, err
			}
			out = append(out, providers...)
			for _, r := range refs {
				referenced[r] = true
			}
		case ".lua":
			scripts = append(scripts, path)
		}
	}

	for _, path := range scripts {
		if referenced[path] {
			continue
		}
		tmpl, err := l.LoadScript(ctx, path)
		if err != nil {
			return nil, err
		}
		out = append(out, tmpl)
	}
	return out, nil
}

// LoadManifest builds the providers declared by the manifest at path.
func (l *Loader) LoadManifest(path string) ([]any, error) {
	providers, _, err := l.loadManifest(path)
	return providers, err
}

func (l *Loader) loadManifest(path string) (providers []any, scripts []string, err error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, nil, err
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	logger := l.logger.With("plugin", m.Name)

	for _, spec := range m.Storages {
		s, err := l.buildStorage(dir, spec, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: storage %q: %w", path, spec.Name, err)
		}
		providers = append(providers, s)
	}
	for _, spec := range m.Editors {
		edit, err := l.engine.Compile(spec.Edit)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: editor %q: %w", path, spec.Name, err)
		}
		providers = append(providers, NewRuleEditorFactory(spec.Name, edit, spec.Toolbox, logger))
	}
	for _, spec := range m.Templates {
		if spec.Script == "" {
			providers = append(providers, NewStaticTemplate(spec.Name, spec.Type, spec.Sections...))
			continue
		}
		scriptPath := filepath.Join(dir, spec.Script)
		source, err := afero.ReadFile(l.fs, scriptPath)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: template %q: %w", path, spec.Name, err)
		}
		providers = append(providers, NewLuaTemplate(spec.Name, spec.Type, scriptPath, string(source)))
		scripts = append(scripts, scriptPath)
	}

	logger.Debug("loaded plugin manifest", "path", path,
		"storages", len(m.Storages), "editors", len(m.Editors), "templates", len(m.Templates))
	return providers, scripts, nil
}

// LoadScript loads a standalone Lua template. The script is run once to read
// its name and doctype globals and to check that it defines create().
func (l *Loader) LoadScript(ctx context.Context, path string) (*LuaTemplate, error) {
	source, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, err
	}
	L, err := runScript(ctx, path, string(source))
	if err != nil {
		return nil, err
	}
	defer L.Close()

	tmplName := globalString(L, "name")
	if err := name.Validate("template", tmplName); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScript, path, err)
	}
	kind := globalString(L, "doctype")
	if kind == "" {
		return nil, fmt.Errorf("%w: %s does not set doctype", ErrScript, path)
	}
	if L.GetGlobal("create").Type() != lua.LTFunction {
		return nil, fmt.Errorf("%w: %s does not define create()", ErrScript, path)
	}
	return NewLuaTemplate(tmplName, document.Type(kind), path, string(source)), nil
}

func (l *Loader) buildStorage(dir string, spec StorageSpec, logger *slog.Logger) (*RuleStorage, error) {
	codec := storage.YAML
	if spec.Codec != "" {
		c, err := storage.CodecByName(spec.Codec)
		if err != nil {
			return nil, err
		}
		codec = c
	}

	validator := schema.Payload()
	if spec.Schema != "" {
		schemaPath := filepath.Join(dir, spec.Schema)
		data, err := afero.ReadFile(l.fs, schemaPath)
		if err != nil {
			return nil, err
		}
		if validator, err = schema.New(spec.Schema, data); err != nil {
			return nil, err
		}
	}

	read, err := l.engine.Compile(spec.Read)
	if err != nil {
		return nil, err
	}
	write, err := l.engine.Compile(spec.Write)
	if err != nil {
		return nil, err
	}

	inner := storage.New(
		storage.WithFS(l.fs),
		storage.WithCodec(codec),
		storage.WithSchema(validator),
		storage.WithLogger(logger),
	)
	return NewRuleStorage(spec.Name, inner, read, write, logger), nil
}
