// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import (
	"os"
	"strings"
)

// Prefix is prepended to every variable the studio reads.
const Prefix = "STUDIO_"

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// MapReader serves variables from a fixed map.
type MapReader map[string]string

// Getenv returns m[key].
func (m MapReader) Getenv(key string) string {
	return m[key]
}

// Key returns the prefixed, upper-cased variable name for a config key
// such as "log_level" or "watch.suppress_window".
func Key(name string) string {
	return Prefix + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(name))
}
