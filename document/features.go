// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package document

import "slices"

// TitleProvider is implemented by editors that compute their own title.
type TitleProvider interface {
	Title() string

	// OnTitleChanged registers fn to run after Title changed and returns a
	// function that removes it.
	OnTitleChanged(fn func()) (remove func())
}

// ToolboxProvider is implemented by editors that accept items dropped from a toolbox.
type ToolboxProvider interface {
	// SupportsToolboxDrop reports whether toolbox items can currently be dropped.
	SupportsToolboxDrop() bool

	// ToolboxItems returns the item names offered to the toolbox.
	ToolboxItems() []string

	// OnToolboxItemsChanged registers fn to run after the items or drop
	// support changed and returns a function that removes it.
	OnToolboxItemsChanged(fn func()) (remove func())
}

// Title returns the editor title if it provides one, otherwise the document
// reference name, otherwise "Untitled".
func Title(e Editor) string {
	if tp, ok := e.(TitleProvider); ok {
		return tp.Title()
	}
	if ref := e.Document().Reference(); ref != nil {
		return ref.Name
	}
	return untitled
}

// ToolboxItems returns the editor's toolbox items, or nil when the editor
// does not provide any or does not currently accept drops.
func ToolboxItems(e Editor) []string {
	tp, ok := e.(ToolboxProvider)
	if !ok || !tp.SupportsToolboxDrop() {
		return nil
	}
	return tp.ToolboxItems()
}

// OnTitleChanged registers fn with editors that provide a title. For other
// editors it registers nothing and returns a no-op.
func OnTitleChanged(e Editor, fn func()) (remove func()) {
	if tp, ok := e.(TitleProvider); ok {
		return tp.OnTitleChanged(fn)
	}
	return func() {}
}

// OnToolboxItemsChanged registers fn with editors that provide toolbox items.
// For other editors it registers nothing and returns a no-op.
func OnToolboxItemsChanged(e Editor, fn func()) (remove func()) {
	if tp, ok := e.(ToolboxProvider); ok {
		return tp.OnToolboxItemsChanged(fn)
	}
	return func() {}
}

// Toolbox implements ToolboxProvider for editors that embed it. Drops are
// supported while the item list is not empty.
type Toolbox struct {
	items   []string
	changed Listeners
}

// SupportsToolboxDrop reports whether any items are set.
func (t *Toolbox) SupportsToolboxDrop() bool {
	return len(t.items) > 0
}

// ToolboxItems returns a copy of the items.
func (t *Toolbox) ToolboxItems() []string {
	return slices.Clone(t.items)
}

// SetToolboxItems replaces the items and notifies listeners if they differ.
func (t *Toolbox) SetToolboxItems(items []string) {
	if slices.Equal(t.items, items) {
		return
	}
	t.items = slices.Clone(items)
	t.changed.Notify()
}

// OnToolboxItemsChanged registers fn to run after SetToolboxItems changed the items.
func (t *Toolbox) OnToolboxItemsChanged(fn func()) (remove func()) {
	return t.changed.Add(fn)
}
