// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/stacklok/skinstudio-core/document"
	"github.com/stacklok/skinstudio-core/pubsub"
	"github.com/stacklok/skinstudio-core/registry"
)

// Manager owns the set of open editors and drives document lifecycle
// operations through a registry.
type Manager struct {
	reg     *registry.Registry
	editors []document.Editor
	subs    []*subscription
	broker  *pubsub.Broker[Event]
	logger  *slog.Logger
}

// New creates a Manager resolving capabilities through reg.
func New(reg *registry.Registry, opts ...Option) *Manager {
	m := &Manager{
		reg:    reg,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Registry returns the registry the manager resolves through.
func (m *Manager) Registry() *registry.Registry {
	return m.reg
}

// Create makes a new document from tmpl, marks it dirty, and opens an editor for it.
func (m *Manager) Create(ctx context.Context, tmpl document.Template) (document.Editor, error) {
	doc, err := tmpl.CreateDocument(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating document from template %q: %w", tmpl.Name(), err)
	}
	if doc == nil {
		return nil, fmt.Errorf("template %q: %w", tmpl.Name(), ErrNoDocument)
	}
	doc.SetDirty(true)

	ed, err := m.openEditor(doc)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("created document", "template", tmpl.Name(), "type", doc.Type(), "editor", ed.ID())
	m.emit(Event{Kind: Opened, Editor: ed})
	return ed, nil
}

// Open reads the document at path with the first storage that can read it
// and opens an editor for it.
func (m *Manager) Open(ctx context.Context, path string) (document.Editor, error) {
	storage, err := m.reg.ResolveReaderStorage(path)
	if err != nil {
		return nil, err
	}
	doc, err := storage.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("reading %s: %w", path, ErrNoDocument)
	}

	ed, err := m.openEditor(doc)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("opened document", "path", path, "type", doc.Type(), "editor", ed.ID())
	m.emit(Event{Kind: Opened, Editor: ed, Path: referencePath(doc)})
	return ed, nil
}

// Save writes doc to its reference path and clears its dirty flag.
// A document without a reference fails with ErrMissingReference before any
// storage is consulted.
func (m *Manager) Save(ctx context.Context, doc document.Document) error {
	ref := doc.Reference()
	if ref == nil {
		return ErrMissingReference
	}
	if err := m.write(ctx, ref.Path, doc); err != nil {
		return err
	}
	doc.SetDirty(false)
	m.logger.Debug("saved document", "path", ref.Path, "type", doc.Type())
	m.emit(Event{Kind: Saved, Editor: m.EditorFor(doc), Path: ref.Path})
	return nil
}

// SaveAs writes doc to path, replaces its reference with one for path, and
// clears its dirty flag.
func (m *Manager) SaveAs(ctx context.Context, path string, doc document.Document) error {
	if err := m.write(ctx, path, doc); err != nil {
		return err
	}
	doc.SetReference(document.NewReference(path))
	doc.SetDirty(false)
	m.logger.Debug("saved document as", "path", path, "type", doc.Type())
	m.emit(Event{Kind: Saved, Editor: m.EditorFor(doc), Path: path})
	return nil
}

// SaveACopy writes doc to path without changing its reference or dirty flag.
func (m *Manager) SaveACopy(ctx context.Context, path string, doc document.Document) error {
	if err := m.write(ctx, path, doc); err != nil {
		return err
	}
	m.logger.Debug("saved copy of document", "path", path, "type", doc.Type())
	return nil
}

// Close removes ed from the open set. Closing an editor that is not open is
// not an error; the Closed event fires either way. Close(nil) does nothing.
func (m *Manager) Close(ed document.Editor) {
	if ed == nil {
		return
	}
	if i := slices.Index(m.editors, ed); i >= 0 {
		m.editors = slices.Delete(m.editors, i, i+1)
		m.logger.Debug("closed editor", "editor", ed.ID())
	}
	var path string
	if doc := ed.Document(); doc != nil {
		path = referencePath(doc)
	}
	m.emit(Event{Kind: Closed, Editor: ed, Path: path})
}

// Editors returns a snapshot of the open editors in the order they were opened.
func (m *Manager) Editors() []document.Editor {
	return slices.Clone(m.editors)
}

// IsOpen reports whether ed is in the open set.
func (m *Manager) IsOpen(ed document.Editor) bool {
	return slices.Contains(m.editors, ed)
}

// EditorFor returns the first open editor showing doc, or nil.
func (m *Manager) EditorFor(doc document.Document) document.Editor {
	for _, ed := range m.editors {
		if ed.Document() == doc {
			return ed
		}
	}
	return nil
}

func (m *Manager) openEditor(doc document.Document) (document.Editor, error) {
	factory, err := m.reg.ResolveEditor(doc.Type())
	if err != nil {
		return nil, err
	}
	ed, err := factory.CreateEditor(doc)
	if err != nil {
		return nil, fmt.Errorf("creating editor for %s: %w", doc.Type(), err)
	}
	m.editors = append(m.editors, ed)
	return ed, nil
}

func (m *Manager) write(ctx context.Context, path string, doc document.Document) error {
	storage, err := m.reg.ResolveWriterStorage(doc.Type())
	if err != nil {
		return err
	}
	if err := storage.Write(ctx, path, doc); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
