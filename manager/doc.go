// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package manager implements the document lifecycle: creating documents from
templates, opening them from storage, saving them, and closing their editors.

The [Manager] resolves editors and storages through a [registry.Registry],
tracks the set of open editors, and notifies subscribers when documents are
opened, saved, or closed.

# Lifecycle

	mgr := manager.New(reg, manager.WithLogger(logger))

	ed, err := mgr.Open(ctx, "clock.skin")
	if err != nil {
	    // registry.ErrNoStorageFound, registry.ErrNoEditorFound,
	    // or the storage's own read error
	}

	doc := ed.Document()
	// ... edit, then:
	err = mgr.Save(ctx, doc)              // write to doc.Reference().Path
	err = mgr.SaveAs(ctx, "new.skin", doc) // write and adopt a new reference
	err = mgr.SaveACopy(ctx, "bak.skin", doc)
	mgr.Close(ed)

Save requires a reference and fails with [ErrMissingReference] without
touching any storage. SaveAs replaces the reference; SaveACopy leaves the
reference and dirty flag alone. A failed write changes neither.

# Notifications

Handlers registered with [Manager.Subscribe] run synchronously, in
subscription order, on the goroutine performing the operation. A panicking
handler propagates to the caller; wrap handlers with the recovery package to
isolate them. When a broker is configured with [WithBroker], each event is also
published to it after the handlers ran, for asynchronous listeners.

# Concurrency

A Manager has no internal locking and expects a single owning goroutine.
Use [Guarded] when operations may come from several goroutines.

Editors are tracked by identity, so Editor implementations should be pointer
types.
*/
package manager
