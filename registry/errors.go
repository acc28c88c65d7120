// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import "errors"

// Sentinel errors for resolution failures.
var (
	// ErrNoEditorFound is returned when no registered factory can edit a document type.
	ErrNoEditorFound = errors.New("no editor found")

	// ErrNoStorageFound is returned when no registered storage can read a path
	// or write a document type.
	ErrNoStorageFound = errors.New("no storage found")

	// ErrNoTemplateFound is returned when no registered template has the requested name.
	ErrNoTemplateFound = errors.New("no template found")
)
