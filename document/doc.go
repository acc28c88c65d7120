// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package document defines the capability contracts shared by the document
registry, the lifecycle manager, and the plugins that provide editors,
storages, and templates.

# Documents

A [Document] exposes its runtime [Type], an optional [Reference] describing
where it is persisted, and a dirty flag. Implementations usually embed [Base]
to get the reference and dirty-flag half of the interface:

	type SkinDocument struct {
	    document.Base
	    Sections []Section
	}

	func (*SkinDocument) Type() document.Type { return "skin" }

A document that has never been saved has a nil reference.

# Capabilities

Providers implement one or more of [EditorFactory], [Storage], and [Template].
Each capability answers a yes/no question ([EditorFactory.CanEdit],
[Storage.CanRead], [Storage.CanWrite]) and performs the corresponding action.

# Optional Editor Features

Editors may additionally implement [TitleProvider] or [ToolboxProvider]. Hosts
discover these with a type assertion, or through [Title], [ToolboxItems],
[OnTitleChanged], and [OnToolboxItemsChanged], which fall back to defaults.
Editors can embed [Toolbox] for the toolbox half.

[Base] notifies [ChangeNotifier] listeners when the reference or dirty flag
changes, and [BasicEditor] turns those into title changes:

	remove := document.OnTitleChanged(ed, func() { tab.SetText(document.Title(ed)) })
	defer remove()

# Testing

Generated mocks of the capability interfaces are available in the mocks
sub-package:

	ctrl := gomock.NewController(t)
	storage := mocks.NewMockStorage(ctrl)
	storage.EXPECT().CanRead("a.skin").Return(true)
*/
package document
