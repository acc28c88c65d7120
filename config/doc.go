// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads the studio configuration.

Values come, in increasing precedence, from built-in defaults, an optional
YAML or TOML file, and STUDIO_* environment variables:

	log_level: debug
	log_format: text
	plugin_dirs:
	  - ~/.config/skinstudio/plugins
	  - ./plugins
	watch: true
	watch_suppress_window: 750ms
	default_codec: toml

The environment variable for a key is env.Key(key), for example
STUDIO_WATCH_SUPPRESS_WINDOW. STUDIO_PLUGIN_DIRS uses the platform list
separator.

Without an explicit path, [Load] looks for config.yaml or config.toml in
[Dir], which lives under the XDG configuration home.
*/
package config
