// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package document

import "path/filepath"

// Reference is the on-disk identity of a persisted document.
type Reference struct {
	// Name is the display label, usually the file name.
	Name string `json:"name" yaml:"name"`
	// Path is the location of the document.
	Path string `json:"path" yaml:"path"`
}

// NewReference returns a reference for path, named after its last element.
func NewReference(path string) *Reference {
	return &Reference{
		Name: filepath.Base(path),
		Path: path,
	}
}

// String returns the reference path.
func (r Reference) String() string {
	return r.Path
}
