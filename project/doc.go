// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package project models a skin project as a tree of document references.

A [Project] has a root reference (the project folder) whose descendants are
the folders and documents that belong to the project. Projects are persisted
as YAML:

	name: clock
	root:
	  data: {name: clock, path: skins/clock}
	  children:
	    - data: {name: clock.skin, path: skins/clock/clock.skin}

[FolderTree] builds the same kind of tree from what is on disk, for views that
show every file in the project folder rather than only the files the project
lists.
*/
package project
