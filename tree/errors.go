// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package tree

import "errors"

// Sentinel errors for tree mutations.
var (
	// ErrIndexOutOfRange is returned when a child index is outside the valid range.
	ErrIndexOutOfRange = errors.New("child index out of range")

	// ErrCycle is returned when inserting a node would make a tree its own descendant.
	ErrCycle = errors.New("node cannot be inserted below itself")

	// ErrAttached is returned when inserting a node that already has a parent.
	ErrAttached = errors.New("node is already attached to a parent")

	// ErrNilNode is returned when a nil node is inserted.
	ErrNilNode = errors.New("nil node")
)
