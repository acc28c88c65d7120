// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/stacklok/skinstudio-core/document"
	"github.com/stacklok/skinstudio-core/registry"
	"github.com/stacklok/skinstudio-core/schema"
	"github.com/stacklok/skinstudio-core/storage"
)

// EmptyTemplate is the name of the built-in template.
const EmptyTemplate = "empty"

// genericType is the type of documents created by EmptyTemplate.
const genericType document.Type = "document"

// genericEditors edits any document type. It is registered after plugins so
// that plugin factories take precedence.
type genericEditors struct{}

func (genericEditors) CanEdit(document.Type) bool { return true }

func (genericEditors) CreateEditor(doc document.Document) (document.Editor, error) {
	return document.NewBasicEditor(doc), nil
}

// newBuiltinStorage reads and writes files with the codec matching their
// extension, using codec for unknown extensions.
func newBuiltinStorage(fs afero.Fs, codec storage.Codec, logger *slog.Logger) *storage.Storage {
	return storage.New(
		storage.WithFS(fs),
		storage.WithCodec(codec),
		storage.WithCodecByExtension(),
		storage.WithSchema(schema.Payload()),
		storage.WithLogger(logger),
	)
}

// registerBuiltins adds a storage per codec plus the generic editor and empty
// template. The preferred codec storage comes first so it wins writer
// resolution; it writes paths with an unknown extension in that codec.
func registerBuiltins(reg *registry.Registry, fs afero.Fs, preferred storage.Codec, logger *slog.Logger) {
	reg.RegisterStorage(newBuiltinStorage(fs, preferred, logger))
	for _, c := range []storage.Codec{storage.YAML, storage.TOML, storage.JSON} {
		if c != preferred {
			reg.RegisterStorage(newBuiltinStorage(fs, c, logger))
		}
	}
	reg.RegisterEditorFactory(genericEditors{})
	reg.RegisterTemplate(document.NewTemplate(EmptyTemplate, func(context.Context) (document.Document, error) {
		return document.NewStructured(genericType), nil
	}))
}
