// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/spf13/afero"

	"github.com/stacklok/skinstudio-core/document"
	"github.com/stacklok/skinstudio-core/schema"
)

// PayloadDocument is a document whose content a codec can encode.
type PayloadDocument interface {
	document.Document
	Payload() document.Payload
}

// Option configures a Storage.
type Option func(*Storage)

// WithFS sets the filesystem. The default is the OS filesystem.
func WithFS(fs afero.Fs) Option {
	return func(s *Storage) { s.fs = fs }
}

// WithCodec sets the codec. The default is YAML.
func WithCodec(c Codec) Option {
	return func(s *Storage) { s.codec = c }
}

// WithCodecByExtension makes Read and Write use the codec matching the path
// extension, falling back to the configured codec for unknown extensions.
func WithCodecByExtension() Option {
	return func(s *Storage) { s.byExtension = true }
}

// WithPatterns sets the base-name globs accepted by CanRead.
func WithPatterns(patterns ...string) Option {
	return func(s *Storage) { s.patterns = patterns }
}

// WithTypes restricts CanWrite to the given document types.
func WithTypes(types ...document.Type) Option {
	return func(s *Storage) { s.types = types }
}

// WithSchema validates payloads on read and before write.
func WithSchema(v *schema.Validator) Option {
	return func(s *Storage) { s.validator = v }
}

// WithLogger sets the logger. The default discards all records.
func WithLogger(l *slog.Logger) Option {
	return func(s *Storage) {
		if l != nil {
			s.logger = l
		}
	}
}

// Storage reads and writes structured documents through a codec.
// It is safe for concurrent use.
type Storage struct {
	fs        afero.Fs
	codec       Codec
	byExtension bool
	patterns    []string
	types       []document.Type
	validator   *schema.Validator
	logger      *slog.Logger

	mu      sync.Mutex
	digests map[string]digest.Digest
}

// New creates a Storage.
func New(opts ...Option) *Storage {
	s := &Storage{
		fs:      afero.NewOsFs(),
		codec:   YAML,
		logger:  slog.New(slog.DiscardHandler),
		digests: make(map[string]digest.Digest),
	}
	for _, opt := range opts {
		opt(s)
	}
	if len(s.patterns) == 0 {
		for _, ext := range s.codec.Extensions() {
			s.patterns = append(s.patterns, "*"+ext)
		}
	}
	return s
}

// Codec returns the codec in use.
func (s *Storage) Codec() Codec {
	return s.codec
}

// CodecFor returns the codec used to read or write path.
func (s *Storage) CodecFor(path string) Codec {
	if s.byExtension {
		if c, ok := CodecForPath(path); ok {
			return c
		}
	}
	return s.codec
}

// CanRead reports whether the base name of path matches a pattern.
func (s *Storage) CanRead(path string) bool {
	name := filepath.Base(path)
	for _, p := range s.patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

// CanWrite reports whether t is one of the configured types. A storage
// without configured types writes every type.
func (s *Storage) CanWrite(t document.Type) bool {
	return len(s.types) == 0 || slices.Contains(s.types, t)
}

// Read decodes the file at path into a clean document referencing path.
func (s *Storage) Read(ctx context.Context, path string) (document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, err
	}
	codec := s.CodecFor(path)
	p, err := codec.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s as %s: %w", path, codec.Name(), err)
	}
	if s.validator != nil {
		if err := s.validator.ValidateValue(p); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	doc := document.FromPayload(p)
	doc.SetReference(document.NewReference(path))
	s.record(path, digest.FromBytes(data))
	s.logger.Debug("read document", "path", path, "codec", codec.Name(), "type", p.Type)
	return doc, nil
}

// Write atomically replaces the file at path with the encoded document.
func (s *Storage) Write(ctx context.Context, path string, doc document.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pd, ok := doc.(PayloadDocument)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnsupportedDocument, doc)
	}
	p := pd.Payload()
	if s.validator != nil {
		if err := s.validator.ValidateValue(p); err != nil {
			return err
		}
	}
	codec := s.CodecFor(path)
	data, err := codec.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding %s as %s: %w", path, codec.Name(), err)
	}
	// Record first so a watcher seeing the rename already knows the content.
	d := digest.FromBytes(data)
	prev := s.record(path, d)
	if err := writeAtomic(s.fs, path, data); err != nil {
		s.restore(path, prev)
		return err
	}
	s.logger.Debug("wrote document", "path", path, "codec", codec.Name(), "digest", d.String())
	return nil
}

// Digest returns the digest of the bytes last read from or written to path.
func (s *Storage) Digest(path string) (digest.Digest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.digests[digestKey(path)]
	return d, ok
}

// record stores d for path and returns the digest it replaced.
func (s *Storage) record(path string, d digest.Digest) digest.Digest {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := digestKey(path)
	prev := s.digests[key]
	s.digests[key] = d
	return prev
}

func (s *Storage) restore(path string, prev digest.Digest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev == "" {
		delete(s.digests, digestKey(path))
		return
	}
	s.digests[digestKey(path)] = prev
}

// digestKey makes relative and absolute spellings of a path share a digest.
func digestKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

// FileDigest computes the digest of the file at path.
func FileDigest(fs afero.Fs, path string) (digest.Digest, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return digest.FromReader(f)
}

func writeAtomic(fs afero.Fs, path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = fs.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = fs.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
