// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package manager

import "errors"

// Sentinel errors for lifecycle operations.
var (
	// ErrMissingReference is returned by Save for a document that has never been saved.
	ErrMissingReference = errors.New("document has no reference; use save as")

	// ErrNoDocument is returned when a template or storage returns a nil document without an error.
	ErrNoDocument = errors.New("no document produced")
)
