// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package plugin discovers capability providers declared in plugin directories.

The host performs one explicit registration pass at startup: [Loader.Load]
scans each directory in lexical order and returns the providers it built,
ready for registry.RegisterAll. Nothing is discovered by reflection.

# Manifests

A *.yaml or *.yml file is a manifest:

	name: rainmeter-skins
	storages:
	  - name: skin files
	    codec: yaml
	    read: ext == ".skin"
	    write: type == "skin"
	    schema: skin.schema.json   # optional, relative to the manifest
	editors:
	  - name: skin editor
	    edit: type in ["skin", "layout"]
	    toolbox: [String, Image, Bar]
	templates:
	  - name: empty skin
	    type: skin
	    sections:
	      - name: Rainmeter
	        entries:
	          - {key: Update, value: "1000"}
	  - name: clock
	    type: skin
	    script: clock.lua

The read, write, and edit fields are CEL predicates evaluated by the rules
package. Manifests are validated against an embedded JSON Schema before use.

# Scripts

A *.lua file next to the manifests is a standalone template. It sets the
globals name and doctype and defines create(), which returns a list of sections:

	name = "clock"
	doctype = "skin"

	function create()
	  return {
	    { name = "Rainmeter", entries = { { key = "Update", value = 1000 } } },
	  }
	end

Scripts run in a fresh sandboxed Lua state on every CreateDocument call, with
only the base, table, string, and math libraries available.
*/
package plugin
