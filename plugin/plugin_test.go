// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package plugin

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stacklok/skinstudio-core/document"
	"github.com/stacklok/skinstudio-core/registry"
	"github.com/stacklok/skinstudio-core/rules"
	"github.com/stacklok/skinstudio-core/schema"
	"github.com/stacklok/skinstudio-core/storage"
)

const skinManifest = `name: rainmeter-skins
description: Rainmeter skin support
storages:
  - name: skin files
    codec: yaml
    read: ext == ".skin"
    write: type == "skin"
editors:
  - name: skin editor
    edit: type in ["skin", "layout"]
    toolbox: [String, Image]
templates:
  - name: empty skin
    type: skin
    sections:
      - name: Rainmeter
        entries:
          - {key: Update, value: "1000"}
  - name: clock
    type: skin
    script: clock.lua
`

const clockScript = `
function create()
  local interval = 500 * 2
  return {
    { name = "Rainmeter", entries = { { key = "Update", value = interval } } },
    { name = "MeterClock", entries = {
        { key = "Meter", value = "String" },
        { key = "AntiAlias", value = true },
    } },
  }
end
`

const layoutScript = `
name = "blank layout"
doctype = "layout"

function create()
  return { { name = "Layout" } }
end
`

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func newPluginFS(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, filepath.Join("plugins", "skins.yaml"), skinManifest)
	writeFile(t, fsys, filepath.Join("plugins", "clock.lua"), clockScript)
	writeFile(t, fsys, filepath.Join("plugins", "layout.lua"), layoutScript)
	writeFile(t, fsys, filepath.Join("plugins", "README.md"), "ignored")
	return fsys
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	fsys := newPluginFS(t)
	loader := NewLoader(WithFS(fsys))

	providers, err := loader.Load(context.Background(), "missing", "plugins")
	require.NoError(t, err)
	require.Len(t, providers, 5, "storage, editor, two manifest templates, one standalone script")

	reg := registry.New()
	assert.Equal(t, 5, reg.RegisterAll(providers...))

	names := make([]string, 0, len(reg.Templates()))
	for _, tmpl := range reg.Templates() {
		names = append(names, tmpl.Name())
	}
	assert.Equal(t, []string{"empty skin", "clock", "blank layout"}, names)

	s, err := reg.ResolveReaderStorage(filepath.Join("skins", "a.skin"))
	require.NoError(t, err)
	assert.Equal(t, "skin files", s.(*RuleStorage).Name())
	_, err = reg.ResolveReaderStorage("a.ini")
	require.ErrorIs(t, err, registry.ErrNoStorageFound)

	f, err := reg.ResolveEditor("layout")
	require.NoError(t, err)
	assert.Equal(t, "skin editor", f.(*RuleEditorFactory).Name())
}

func TestLoader_TemplatesCreateDocuments(t *testing.T) {
	t.Parallel()

	providers, err := NewLoader(WithFS(newPluginFS(t))).Load(context.Background(), "plugins")
	require.NoError(t, err)
	reg := registry.New()
	reg.RegisterAll(providers...)

	tests := []struct {
		template string
		wantType document.Type
		want     []document.Section
	}{
		{
			template: "empty skin",
			wantType: "skin",
			want:     []document.Section{{Name: "Rainmeter", Entries: []document.Entry{{Key: "Update", Value: "1000"}}}},
		},
		{
			template: "clock",
			wantType: "skin",
			want: []document.Section{
				{Name: "Rainmeter", Entries: []document.Entry{{Key: "Update", Value: "1000"}}},
				{Name: "MeterClock", Entries: []document.Entry{
					{Key: "Meter", Value: "String"},
					{Key: "AntiAlias", Value: "true"},
				}},
			},
		},
		{
			template: "blank layout",
			wantType: "layout",
			want:     []document.Section{{Name: "Layout"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.template, func(t *testing.T) {
			t.Parallel()
			tmpl, err := reg.Template(tc.template)
			require.NoError(t, err)

			doc, err := tmpl.CreateDocument(context.Background())
			require.NoError(t, err)
			s := doc.(*document.Structured)
			assert.Equal(t, tc.wantType, s.Type())
			assert.Equal(t, tc.want, s.Sections())
		})
	}
}

func TestRuleStorage_ReadWrite(t *testing.T) {
	t.Parallel()

	fsys := newPluginFS(t)
	providers, err := NewLoader(WithFS(fsys)).LoadManifest(filepath.Join("plugins", "skins.yaml"))
	require.NoError(t, err)
	s := providers[0].(*RuleStorage)

	assert.True(t, s.CanWrite("skin"))
	assert.False(t, s.CanWrite("layout"))

	doc := document.NewStructured("skin", document.Section{Name: "Variables"})
	require.NoError(t, s.Write(context.Background(), "clock.skin", doc))

	got, err := s.Read(context.Background(), "clock.skin")
	require.NoError(t, err)
	assert.Equal(t, doc.Payload(), got.(*document.Structured).Payload())

	d, ok := s.Digest("clock.skin")
	require.True(t, ok)
	onDisk, err := storage.FileDigest(fsys, "clock.skin")
	require.NoError(t, err)
	assert.Equal(t, onDisk, d)
}

func TestRuleEditorFactory_Toolbox(t *testing.T) {
	t.Parallel()

	edit, err := rules.NewEngine().Compile(`type == "skin"`)
	require.NoError(t, err)

	withToolbox := NewRuleEditorFactory("skin editor", edit, []string{"String", "Image"}, nil)
	doc := document.NewStructured("skin")
	ed, err := withToolbox.CreateEditor(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"String", "Image"}, document.ToolboxItems(ed))
	assert.Equal(t, "Untitled", document.Title(ed))

	var titles []string
	document.OnTitleChanged(ed, func() { titles = append(titles, document.Title(ed)) })
	doc.Set("Variables", "Color", "red")
	assert.Equal(t, []string{"Untitled*"}, titles)

	plain := NewRuleEditorFactory("plain", edit, nil, nil)
	ed, err = plain.CreateEditor(document.NewStructured("skin"))
	require.NoError(t, err)
	assert.Nil(t, document.ToolboxItems(ed))
}

func TestParseManifest_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		manifest string
		wantMsg  string
	}{
		{"empty", ``, "empty manifest"},
		{"not yaml", `name: [`, ""},
		{"missing name", `storages: []`, "name"},
		{"unknown field", "name: skins\nversion: 2\n", "version"},
		{"storage without read rule", "name: skins\nstorages:\n  - name: s\n    write: \"true\"\n", "read"},
		{"unknown codec", "name: skins\nstorages:\n  - {name: s, codec: ini, read: \"true\", write: \"true\"}\n", "codec"},
		{"template with script and sections", "name: skins\ntemplates:\n  - {name: t, type: skin, script: a.lua, sections: []}\n", "not"},
		{"uppercase plugin name", "name: Skins\n", "lowercase"},
		{"invalid template name", "name: skins\ntemplates:\n  - {name: \"Empty Skin\", type: skin}\n", "template name"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseManifest([]byte(tc.manifest))
			require.ErrorIs(t, err, ErrInvalidManifest)
			if tc.wantMsg != "" {
				assert.Contains(t, err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestLoader_InvalidRule(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, filepath.Join("plugins", "bad.yaml"), "name: bad\neditors:\n  - {name: e, edit: \"size > 3\"}\n")

	_, err := NewLoader(WithFS(fsys)).Load(context.Background(), "plugins")
	var checkErr *rules.CheckError
	require.ErrorAs(t, err, &checkErr)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestLoader_CustomSchema(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, filepath.Join("plugins", "strict.yaml"),
		"name: strict\nstorages:\n  - {name: s, read: \"ext == '.skin'\", write: \"true\", schema: strict.schema.json}\n")
	writeFile(t, fsys, filepath.Join("plugins", "strict.schema.json"),
		`{"type":"object","required":["sections"],"properties":{"sections":{"type":"array","minItems":1}}}`)

	providers, err := NewLoader(WithFS(fsys)).Load(context.Background(), "plugins")
	require.NoError(t, err)
	require.Len(t, providers, 1)
	s := providers[0].(*RuleStorage)

	err = s.Write(context.Background(), "a.skin", document.NewStructured("skin"))
	require.ErrorIs(t, err, schema.ErrValidation)
	require.NoError(t, s.Write(context.Background(), "a.skin", document.NewStructured("skin", document.Section{Name: "A"})))
}

func TestLuaTemplate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
	}{
		{"syntax error", `function create( return {} end`},
		{"runtime error", `error("boom")`},
		{"no create", `x = 1`},
		{"create returns a string", `function create() return "skin" end`},
		{"section without name", `function create() return { { entries = {} } } end`},
		{"entry value is a table", `function create() return { { name = "A", entries = { { key = "k", value = {} } } } } end`},
		{"sandboxed io", `function create() io.open("/etc/passwd") return {} end`},
		{"sandboxed dofile", `dofile("x.lua")`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			tmpl := NewLuaTemplate("t", "skin", "test.lua", tc.source)
			_, err := tmpl.CreateDocument(context.Background())
			require.ErrorIs(t, err, ErrScript)
		})
	}
}

func TestLuaTemplate_Cancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	tmpl := NewLuaTemplate("spin", "skin", "spin.lua", `function create() while true do end end`)
	_, err := tmpl.CreateDocument(ctx)
	require.ErrorIs(t, err, ErrScript)
}

func TestLoader_LoadScriptRequiresGlobals(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "untyped.lua", `name = "untyped"
function create() return {} end`)
	writeFile(t, fsys, "unnamed.lua", `doctype = "skin"
function create() return {} end`)

	loader := NewLoader(WithFS(fsys))
	_, err := loader.LoadScript(context.Background(), "untyped.lua")
	require.ErrorIs(t, err, ErrScript)
	assert.Contains(t, err.Error(), "doctype")

	_, err = loader.LoadScript(context.Background(), "unnamed.lua")
	require.ErrorIs(t, err, ErrScript)
}
