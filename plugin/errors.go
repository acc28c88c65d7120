// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package plugin

import "errors"

var (
	// ErrInvalidManifest is returned for manifests that fail validation.
	ErrInvalidManifest = errors.New("invalid plugin manifest")

	// ErrScript is returned when a Lua template fails to load or run.
	ErrScript = errors.New("template script failed")
)
