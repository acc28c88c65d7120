// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package storage provides a filesystem Storage for structured documents.

A [Storage] encodes [document.Payload] values with a [Codec] (YAML, TOML, or
JSON) on top of an afero filesystem, so the same code runs against the OS
filesystem in the CLI and an in-memory filesystem in tests.

# Basic Usage

	s := storage.New(
	    storage.WithCodec(storage.YAML),
	    storage.WithPatterns("*.skin"),
	    storage.WithTypes("skin"),
	    storage.WithSchema(schema.Payload()),
	)
	reg.RegisterStorage(s)

CanRead matches the base name of a path against the glob patterns, which
default to the codec's extensions. CanWrite accepts the configured types, or
every type when none are configured.

# Writes

Write encodes to a temporary file in the target directory and renames it over
the target, so readers never observe a partially written file. After every
successful read or write the sha256 digest of the bytes is recorded and can be
retrieved with [Storage.Digest].

Only documents exposing a Payload method (such as [document.Structured]) can
be written; others fail with [ErrUnsupportedDocument].
*/
package storage
