// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package document

// Base implements the reference and dirty-flag half of Document and notifies
// listeners when either changes. Embed it in concrete document types.
type Base struct {
	ref     *Reference
	dirty   bool
	changed Listeners
}

// Reference returns the persisted identity, or nil.
func (b *Base) Reference() *Reference {
	return b.ref
}

// SetReference replaces the persisted identity.
func (b *Base) SetReference(ref *Reference) {
	if b.ref == ref {
		return
	}
	b.ref = ref
	b.changed.Notify()
}

// IsDirty reports whether the document has unsaved modifications.
func (b *Base) IsDirty() bool {
	return b.dirty
}

// SetDirty sets the unsaved-modifications flag.
func (b *Base) SetDirty(dirty bool) {
	if b.dirty == dirty {
		return
	}
	b.dirty = dirty
	b.changed.Notify()
}

// OnChange registers fn to run after the reference or dirty flag changed.
func (b *Base) OnChange(fn func()) (remove func()) {
	return b.changed.Add(fn)
}
