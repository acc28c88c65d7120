// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"context"
	"slices"

	"github.com/google/uuid"
)

// untitled is the title of documents that have never been saved.
const untitled = "Untitled"

// BasicEditor is a headless editor used by hosts without a UI. When its
// document implements ChangeNotifier, the editor reports title changes.
type BasicEditor struct {
	id  string
	doc Document

	title        string
	titleChanged Listeners
}

// NewBasicEditor creates an editor for doc with a random ID.
func NewBasicEditor(doc Document) *BasicEditor {
	e := &BasicEditor{id: uuid.NewString(), doc: doc}
	if n, ok := doc.(ChangeNotifier); ok {
		e.title = e.Title()
		n.OnChange(e.refreshTitle)
	}
	return e
}

// ID returns the editor identifier.
func (e *BasicEditor) ID() string {
	return e.id
}

// Document returns the edited document.
func (e *BasicEditor) Document() Document {
	return e.doc
}

// Title returns the reference name, or "Untitled", with a "*" suffix when dirty.
func (e *BasicEditor) Title() string {
	title := untitled
	if ref := e.doc.Reference(); ref != nil {
		title = ref.Name
	}
	if e.doc.IsDirty() {
		title += "*"
	}
	return title
}

// OnTitleChanged registers fn to run after the title changed. Editors of
// documents that do not implement ChangeNotifier never call fn.
func (e *BasicEditor) OnTitleChanged(fn func()) (remove func()) {
	return e.titleChanged.Add(fn)
}

func (e *BasicEditor) refreshTitle() {
	title := e.Title()
	if title == e.title {
		return
	}
	e.title = title
	e.titleChanged.Notify()
}

// BasicEditorFactory creates BasicEditors for a fixed set of document types.
type BasicEditorFactory struct {
	types []Type
}

// NewBasicEditorFactory creates a factory for the given types.
func NewBasicEditorFactory(types ...Type) *BasicEditorFactory {
	return &BasicEditorFactory{types: slices.Clone(types)}
}

// CanEdit reports whether t is one of the factory's types.
func (f *BasicEditorFactory) CanEdit(t Type) bool {
	return slices.Contains(f.types, t)
}

// CreateEditor creates a BasicEditor for doc.
func (*BasicEditorFactory) CreateEditor(doc Document) (Editor, error) {
	return NewBasicEditor(doc), nil
}

// TemplateFunc adapts a function into a named Template.
type TemplateFunc struct {
	name   string
	create func(ctx context.Context) (Document, error)
}

// NewTemplate creates a Template named name that delegates to create.
func NewTemplate(name string, create func(ctx context.Context) (Document, error)) *TemplateFunc {
	return &TemplateFunc{name: name, create: create}
}

// Name returns the template name.
func (t *TemplateFunc) Name() string {
	return t.name
}

// CreateDocument calls the wrapped function.
func (t *TemplateFunc) CreateDocument(ctx context.Context) (Document, error) {
	return t.create(ctx)
}
