// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package name

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// MaxLength is the longest accepted name, in bytes.
const MaxLength = 128

// ErrInvalid matches every validation failure.
var ErrInvalid = errors.New("invalid name")

var validNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9._\- ]*$`)

// Validate checks n against the naming rules. kind ("plugin", "template")
// only appears in the error message.
func Validate(kind, n string) error {
	if strings.TrimSpace(n) == "" {
		return fmt.Errorf("%w: %s name cannot be empty", ErrInvalid, kind)
	}
	if len(n) > MaxLength {
		return fmt.Errorf("%w: %s name is longer than %d bytes", ErrInvalid, kind, MaxLength)
	}
	if strings.TrimSpace(n) != n {
		return fmt.Errorf("%w: %s name cannot have leading or trailing whitespace: %q", ErrInvalid, kind, n)
	}
	if n != strings.ToLower(n) {
		return fmt.Errorf("%w: %s name must be lowercase: %q", ErrInvalid, kind, n)
	}
	if !validNameRegex.MatchString(n) {
		return fmt.Errorf("%w: %s name can only contain lowercase letters, digits, dots, underscores, dashes, and spaces, starting with a letter or digit: %q",
			ErrInvalid, kind, n)
	}
	if strings.Contains(n, "  ") {
		return fmt.Errorf("%w: %s name cannot contain consecutive spaces: %q", ErrInvalid, kind, n)
	}
	return nil
}
