// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package name validates the names of plugins, templates, and projects.

Names appear in CLI arguments and manifest files, so they follow one
convention everywhere.

# Name Validation

	if err := name.Validate("template", "empty skin"); err != nil {
		// errors.Is(err, name.ErrInvalid)
	}

Valid names must:
  - Be non-empty (not just whitespace)
  - Contain only lowercase alphanumeric characters, dots, underscores, dashes, and spaces
  - Start with a letter or digit
  - Not have leading or trailing whitespace
  - Not contain consecutive spaces
  - Be at most MaxLength bytes long

# Examples

Valid names:

	"empty skin"
	"rainmeter-skins"
	"clock_v2.1"

Invalid names:

	""              // empty
	"Empty Skin"    // uppercase
	"skin@home"     // special characters
	"-skin"         // leading dash
	"empty  skin"   // consecutive spaces
*/
package name
