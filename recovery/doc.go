// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package recovery contains panics raised by editor event handlers.
//
// The manager runs handlers synchronously and lets their panics propagate.
// Front ends that host third-party handlers wrap them with [Handler]:
//
//	mgr.Subscribe(recovery.Handler(func(ev manager.Event) {
//		refreshTabs(ev)
//	}, logger))
//
// [Call] is the underlying primitive and turns any panic into a
// [*PanicError] wrapping [ErrPanic].
package recovery
