// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package document

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import "context"

// Type identifies the kind of a document for capability matching.
type Type string

// Document is an in-memory document.
type Document interface {
	// Type returns the runtime type tag of the document.
	Type() Type

	// Reference returns the persisted identity, or nil if never saved.
	Reference() *Reference

	// SetReference replaces the persisted identity.
	SetReference(ref *Reference)

	// IsDirty reports whether the document has unsaved modifications.
	IsDirty() bool

	// SetDirty sets the unsaved-modifications flag.
	SetDirty(dirty bool)
}

// Editor wraps exactly one document.
type Editor interface {
	// ID returns an identifier unique among live editors.
	ID() string

	// Document returns the edited document.
	Document() Document
}

// EditorFactory creates editors for the document types it supports.
type EditorFactory interface {
	// CanEdit reports whether the factory can create an editor for documents of type t.
	CanEdit(t Type) bool

	// CreateEditor creates an editor for doc.
	CreateEditor(doc Document) (Editor, error)
}

// Storage reads and writes documents.
type Storage interface {
	// CanRead reports whether the storage can read the document at path.
	CanRead(path string) bool

	// CanWrite reports whether the storage can write documents of type t.
	CanWrite(t Type) bool

	// Read loads the document stored at path.
	Read(ctx context.Context, path string) (Document, error)

	// Write persists doc at path.
	Write(ctx context.Context, path string, doc Document) error
}

// Template is a "new file" archetype.
type Template interface {
	// Name returns the template name shown to users.
	Name() string

	// CreateDocument creates a new, unsaved document.
	CreateDocument(ctx context.Context) (Document, error)
}
