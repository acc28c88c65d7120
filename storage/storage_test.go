// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/stacklok/skinstudio-core/document"
	"github.com/stacklok/skinstudio-core/document/mocks"
	"github.com/stacklok/skinstudio-core/schema"
)

func clockSkin() *document.Structured {
	return document.NewStructured("skin",
		document.Section{Name: "Rainmeter", Entries: []document.Entry{{Key: "Update", Value: "1000"}}},
		document.Section{Name: "MeterClock", Entries: []document.Entry{
			{Key: "Meter", Value: "String"},
			{Key: "Text", Value: "%1"},
		}},
	)
}

func TestStorage_WriteThenRead(t *testing.T) {
	t.Parallel()

	for _, codec := range []Codec{YAML, TOML, JSON} {
		t.Run(codec.Name(), func(t *testing.T) {
			t.Parallel()

			mem := afero.NewMemMapFs()
			s := New(WithFS(mem), WithCodec(codec), WithSchema(schema.Payload()))
			path := filepath.Join("skins", "clock"+codec.Extensions()[0])
			src := clockSkin()

			require.NoError(t, s.Write(context.Background(), path, src))

			doc, err := s.Read(context.Background(), path)
			require.NoError(t, err)
			got := doc.(*document.Structured)
			assert.Equal(t, src.Payload(), got.Payload())
			assert.False(t, got.IsDirty())
			assert.Equal(t, document.NewReference(path), got.Reference())
		})
	}
}

func TestStorage_WriteLeavesNoTemporaryFiles(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()
	s := New(WithFS(mem))
	path := filepath.Join("skins", "clock.yaml")

	require.NoError(t, s.Write(context.Background(), path, clockSkin()))
	require.NoError(t, s.Write(context.Background(), path, document.NewStructured("skin")))

	entries, err := afero.ReadDir(mem, "skins")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "clock.yaml", entries[0].Name())

	doc, err := s.Read(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, doc.(*document.Structured).Sections())
}

func TestStorage_Capabilities(t *testing.T) {
	t.Parallel()

	def := New(WithFS(afero.NewMemMapFs()))
	assert.True(t, def.CanRead("a.yaml"))
	assert.True(t, def.CanRead(filepath.Join("dir", "a.yml")))
	assert.False(t, def.CanRead("a.toml"))
	assert.True(t, def.CanWrite("anything"), "no configured types means every type")

	skins := New(WithFS(afero.NewMemMapFs()), WithPatterns("*.skin", "*.ini"), WithTypes("skin"))
	assert.True(t, skins.CanRead(filepath.Join("skins", "clock.skin")))
	assert.True(t, skins.CanRead("vars.ini"))
	assert.False(t, skins.CanRead("clock.yaml"))
	assert.True(t, skins.CanWrite("skin"))
	assert.False(t, skins.CanWrite("layout"))
}

func TestStorage_ReadFailures(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "bad.yaml", []byte("type: [unclosed"), 0o644))
	require.NoError(t, afero.WriteFile(mem, "empty.yaml", nil, 0o644))
	require.NoError(t, afero.WriteFile(mem, "unknown.yaml", []byte("type: skin\ncolour: red\n"), 0o644))
	require.NoError(t, afero.WriteFile(mem, "invalid.yaml", []byte("type: skin\nsections:\n  - name: \"\"\n"), 0o644))

	s := New(WithFS(mem), WithSchema(schema.Payload()))

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"missing file", "missing.yaml", fs.ErrNotExist},
		{"empty file", "empty.yaml", ErrEmptyDocument},
		{"schema violation", "invalid.yaml", schema.ErrValidation},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := s.Read(context.Background(), tc.path)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("malformed", func(t *testing.T) {
		t.Parallel()
		_, err := s.Read(context.Background(), "bad.yaml")
		require.ErrorContains(t, err, "decoding bad.yaml as yaml")
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		_, err := s.Read(context.Background(), "unknown.yaml")
		require.ErrorContains(t, err, "colour")
	})
}

func TestStorage_WriteUnsupportedDocument(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	doc := mocks.NewMockDocument(ctrl)

	mem := afero.NewMemMapFs()
	s := New(WithFS(mem))
	err := s.Write(context.Background(), "a.yaml", doc)
	require.ErrorIs(t, err, ErrUnsupportedDocument)

	exists, err := afero.Exists(mem, "a.yaml")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStorage_WriteRejectsInvalidPayload(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()
	s := New(WithFS(mem), WithSchema(schema.Payload()))
	err := s.Write(context.Background(), "a.yaml", document.NewStructured(""))
	require.ErrorIs(t, err, schema.ErrValidation)

	exists, _ := afero.Exists(mem, "a.yaml")
	assert.False(t, exists)
}

func TestStorage_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(WithFS(afero.NewMemMapFs()))
	_, err := s.Read(ctx, "a.yaml")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, s.Write(ctx, "a.yaml", clockSkin()), context.Canceled)
}

func TestStorage_Digest(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()
	s := New(WithFS(mem))
	path := filepath.Join("skins", "clock.yaml")

	_, ok := s.Digest(path)
	assert.False(t, ok)

	require.NoError(t, s.Write(context.Background(), path, clockSkin()))
	written, ok := s.Digest(path)
	require.True(t, ok)
	assert.Equal(t, digest.SHA256, written.Algorithm())

	onDisk, err := FileDigest(mem, path)
	require.NoError(t, err)
	assert.Equal(t, written, onDisk)

	// Non-canonical spellings of the same path share the digest.
	sep := string(filepath.Separator)
	alias, ok := s.Digest("skins" + sep + "." + sep + "clock.yaml")
	require.True(t, ok)
	assert.Equal(t, written, alias)

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	absolute, ok := s.Digest(abs)
	require.True(t, ok)
	assert.Equal(t, written, absolute)
}

func TestStorage_FailedWriteKeepsDigest(t *testing.T) {
	t.Parallel()

	mem := afero.NewMemMapFs()
	require.NoError(t, New(WithFS(mem)).Write(context.Background(), "clock.yaml", clockSkin()))

	s := New(WithFS(afero.NewReadOnlyFs(mem)))
	_, err := s.Read(context.Background(), "clock.yaml")
	require.NoError(t, err)
	read, ok := s.Digest("clock.yaml")
	require.True(t, ok)

	require.Error(t, s.Write(context.Background(), "clock.yaml", document.NewStructured("layout")))
	after, ok := s.Digest("clock.yaml")
	require.True(t, ok)
	assert.Equal(t, read, after)

	require.Error(t, s.Write(context.Background(), "new.yaml", clockSkin()))
	_, ok = s.Digest("new.yaml")
	assert.False(t, ok)
}

func TestStorage_CodecByExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Codec
	}{
		{"clock.toml", TOML},
		{"clock.JSON", JSON},
		{"clock.yml", YAML},
		{"clock.skin", YAML},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()

			mem := afero.NewMemMapFs()
			s := New(WithFS(mem), WithCodecByExtension())
			assert.Equal(t, tc.want, s.CodecFor(tc.path))

			require.NoError(t, s.Write(context.Background(), tc.path, clockSkin()))
			data, err := afero.ReadFile(mem, tc.path)
			require.NoError(t, err)
			p, err := tc.want.Unmarshal(data)
			require.NoError(t, err)
			assert.Equal(t, clockSkin().Payload(), p)

			doc, err := s.Read(context.Background(), tc.path)
			require.NoError(t, err)
			assert.Equal(t, clockSkin().Payload(), doc.(*document.Structured).Payload())
		})
	}

	plain := New(WithCodec(JSON))
	assert.Equal(t, JSON, plain.CodecFor("clock.toml"), "the configured codec is used without the option")
}

func TestCodecByName(t *testing.T) {
	t.Parallel()

	c, err := CodecByName("TOML")
	require.NoError(t, err)
	assert.Equal(t, TOML, c)

	_, err = CodecByName("ini")
	require.ErrorIs(t, err, ErrUnknownCodec)

	c, ok := CodecForPath("clock.YML")
	require.True(t, ok)
	assert.Equal(t, YAML, c)
	_, ok = CodecForPath("clock.skin")
	assert.False(t, ok)
}
