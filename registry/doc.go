// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package registry holds the capability registries for editor factories,
storages, and document templates, and resolves which provider handles a given
document type or path.

# Registration

Registration appends to an ordered list. Nothing is deduplicated or validated:
registering the same provider twice makes it a candidate twice.

	reg := registry.New()
	reg.RegisterStorage(yamlStorage)
	reg.RegisterEditorFactory(document.NewBasicEditorFactory("skin"))

Hosts that discover providers (for example from a plugin directory) pass the
instances to [Registry.RegisterAll], which registers each candidate into every
registry whose capability it implements.

# Resolution

Resolution is first match in registration order. Callers control precedence
purely through the order in which they register providers:

	storage, err := reg.ResolveReaderStorage("clock.skin")
	if errors.Is(err, registry.ErrNoStorageFound) {
	    // nothing can read the file
	}

# Concurrency

A Registry has no internal locking. It is meant to be populated once at
startup and then queried from a single goroutine. Hosts that register or
resolve from several goroutines must serialize access themselves.
*/
package registry
