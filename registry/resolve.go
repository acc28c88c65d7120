// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"fmt"

	"github.com/stacklok/skinstudio-core/document"
)

// ResolveEditor returns the first registered factory that can edit documents of type t.
func (r *Registry) ResolveEditor(t document.Type) (document.EditorFactory, error) {
	for _, f := range r.factories {
		if f.CanEdit(t) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w for document type %q", ErrNoEditorFound, t)
}

// ResolveReaderStorage returns the first registered storage that can read path.
func (r *Registry) ResolveReaderStorage(path string) (document.Storage, error) {
	for _, s := range r.storages {
		if s.CanRead(path) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w to read %q", ErrNoStorageFound, path)
}

// ResolveWriterStorage returns the first registered storage that can write documents of type t.
func (r *Registry) ResolveWriterStorage(t document.Type) (document.Storage, error) {
	for _, s := range r.storages {
		if s.CanWrite(t) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w to write document type %q", ErrNoStorageFound, t)
}

// Template returns the first registered template named name.
func (r *Registry) Template(name string) (document.Template, error) {
	for _, t := range r.templates {
		if t.Name() == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w named %q", ErrNoTemplateFound, name)
}
