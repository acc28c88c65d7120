// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package watcher reports external changes to open documents.

A [Watcher] follows the lifecycle events a manager publishes to its broker:
Opened documents are watched, Closed ones are released, and Saved ones have
their new content digest recorded. When a watched file changes on disk and its
sha256 digest differs from the last known one, the change callback runs.

Directories rather than files are handed to fsnotify, so atomic replace-by-rename
writes are seen. Events for a path are ignored for a short window after the
manager saved it. With [WithDigestSources], content matching a digest a
storage recorded is also treated as the studio's own write.

	w, err := watcher.New(onChange, watcher.WithLogger(logr), watcher.WithDigestSources(store))
	go w.Follow(ctx, broker.Subscribe(ctx))
	err = w.Run(ctx)
*/
package watcher
