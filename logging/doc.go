// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging provides the [log/slog.Logger] factory used by library
packages such as manager, storage, and plugin.

# Defaults

  - Format: JSON ([FormatJSON]) via [log/slog.JSONHandler]
  - Level: INFO ([log/slog.LevelInfo])
  - Output: [os.Stderr]
  - Timestamps: [time.RFC3339]

# Basic Usage

	logger := logging.New()
	logger.Info("document saved", "path", "clock.skin")

# Configuration

Configuration files and flags carry the format and level as strings.
[ParseFormat] and [ParseLevel] turn them into options:

	format, err := logging.ParseFormat(cfg.LogFormat) // "json" or "text"
	level, err := logging.ParseLevel(cfg.LogLevel)    // "debug", "info", "warn", "error"
	logger := logging.New(logging.WithFormat(format), logging.WithLevel(level))

# Dynamic Level Changes

Pass a [log/slog.LevelVar] to change the level at runtime:

	var lvl slog.LevelVar
	logger := logging.New(logging.WithLevel(&lvl))
	lvl.Set(slog.LevelDebug) // takes effect immediately

# Testing

Inject a buffer to capture log output in tests:

	var buf bytes.Buffer
	logger := logging.New(logging.WithOutput(&buf))
	logger.Info("test message")
	// inspect buf.String()

# Handler Access

Use [NewHandler] when you need to wrap the handler:

	base := logging.NewHandler(logging.WithLevel(slog.LevelDebug))
	logger := slog.New(&myMiddleware{Handler: base})
*/
package logging
