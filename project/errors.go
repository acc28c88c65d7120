// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package project

import "errors"

var (
	// ErrInvalidProject is returned when a project file cannot be used.
	ErrInvalidProject = errors.New("invalid project")

	// ErrNotFound is returned when a path is not part of the project.
	ErrNotFound = errors.New("path not in project")
)
