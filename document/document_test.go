// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		wantName string
	}{
		{"plain file", "a.skin", "a.skin"},
		{"nested file", filepath.Join("skins", "clock", "clock.skin"), "clock.skin"},
		{"directory", filepath.Join("skins", "clock"), "clock"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ref := NewReference(tc.path)
			assert.Equal(t, tc.wantName, ref.Name)
			assert.Equal(t, tc.path, ref.Path)
			assert.Equal(t, tc.path, ref.String())
		})
	}
}

func TestStructured_SetMarksDirty(t *testing.T) {
	t.Parallel()

	doc := NewStructured("skin")
	assert.False(t, doc.IsDirty())
	assert.Nil(t, doc.Reference())

	doc.Set("Rainmeter", "Update", "1000")
	assert.True(t, doc.IsDirty())

	v, ok := doc.Get("Rainmeter", "Update")
	require.True(t, ok)
	assert.Equal(t, "1000", v)

	doc.Set("Rainmeter", "Update", "500")
	v, _ = doc.Get("Rainmeter", "Update")
	assert.Equal(t, "500", v)
	assert.Len(t, doc.Sections(), 1)
	assert.Len(t, doc.Sections()[0].Entries, 1)
}

func TestStructured_Delete(t *testing.T) {
	t.Parallel()

	doc := NewStructured("skin", Section{
		Name:    "MeterClock",
		Entries: []Entry{{Key: "Meter", Value: "String"}, {Key: "X", Value: "0"}},
	})

	assert.False(t, doc.Delete("Missing", "X"))
	assert.False(t, doc.Delete("MeterClock", "Y"))
	assert.False(t, doc.IsDirty())

	assert.True(t, doc.Delete("MeterClock", "X"))
	assert.True(t, doc.IsDirty())
	_, ok := doc.Get("MeterClock", "X")
	assert.False(t, ok)
}

func TestStructured_PayloadIsACopy(t *testing.T) {
	t.Parallel()

	doc := NewStructured("skin", Section{Name: "Variables", Entries: []Entry{{Key: "Color", Value: "red"}}})
	p := doc.Payload()
	p.Sections[0].Entries[0].Value = "blue"

	v, _ := doc.Get("Variables", "Color")
	assert.Equal(t, "red", v)

	clone := FromPayload(doc.Payload())
	assert.Equal(t, doc.Type(), clone.Type())
	assert.Equal(t, doc.Sections(), clone.Sections())
}

func TestBasicEditor_Title(t *testing.T) {
	t.Parallel()

	doc := NewStructured("skin")
	ed := NewBasicEditor(doc)
	assert.NotEmpty(t, ed.ID())
	assert.Same(t, doc, ed.Document())
	assert.Equal(t, "Untitled", ed.Title())

	doc.SetDirty(true)
	assert.Equal(t, "Untitled*", ed.Title())

	doc.SetReference(NewReference(filepath.Join("skins", "clock.skin")))
	doc.SetDirty(false)
	assert.Equal(t, "clock.skin", Title(ed))
	assert.NotEqual(t, ed.ID(), NewBasicEditor(doc).ID())
}

type toolboxEditor struct {
	*BasicEditor
	Toolbox
}

func TestToolboxItems(t *testing.T) {
	t.Parallel()

	base := NewBasicEditor(NewStructured("skin"))
	assert.Nil(t, ToolboxItems(base))

	ed := &toolboxEditor{BasicEditor: base}
	assert.Nil(t, ToolboxItems(ed), "no items means no drops")

	ed.SetToolboxItems([]string{"String", "Image"})
	assert.Equal(t, []string{"String", "Image"}, ToolboxItems(ed))

	items := ed.ToolboxItems()
	items[0] = "Bar"
	assert.Equal(t, []string{"String", "Image"}, ed.ToolboxItems())
}

func TestOnToolboxItemsChanged(t *testing.T) {
	t.Parallel()

	ed := &toolboxEditor{BasicEditor: NewBasicEditor(NewStructured("skin"))}
	var calls int
	remove := OnToolboxItemsChanged(ed, func() { calls++ })

	ed.SetToolboxItems([]string{"String"})
	assert.Equal(t, 1, calls)

	ed.SetToolboxItems([]string{"String"})
	assert.Equal(t, 1, calls, "same items do not notify")

	ed.SetToolboxItems(nil)
	assert.Equal(t, 2, calls)

	remove()
	remove()
	ed.SetToolboxItems([]string{"Image"})
	assert.Equal(t, 2, calls)

	assert.NotPanics(t, func() {
		OnToolboxItemsChanged(NewBasicEditor(NewStructured("skin")), func() {})()
	}, "editors without a toolbox get a no-op")
}

func TestBasicEditor_OnTitleChanged(t *testing.T) {
	t.Parallel()

	doc := NewStructured("skin")
	ed := NewBasicEditor(doc)
	var titles []string
	remove := OnTitleChanged(ed, func() { titles = append(titles, ed.Title()) })

	doc.Set("Rainmeter", "Update", "1000")
	doc.Set("Rainmeter", "Update", "500")
	doc.SetReference(NewReference(filepath.Join("skins", "clock.skin")))
	doc.SetDirty(false)
	doc.SetDirty(false)
	doc.SetReference(NewReference(filepath.Join("backup", "clock.skin")))
	assert.Equal(t, []string{"Untitled*", "clock.skin*", "clock.skin"}, titles,
		"only changes to the title text notify")

	remove()
	doc.SetDirty(true)
	assert.Len(t, titles, 3)
}

func TestBase_OnChange(t *testing.T) {
	t.Parallel()

	doc := NewStructured("skin")
	var calls int
	remove := doc.OnChange(func() { calls++ })

	doc.SetDirty(true)
	doc.SetDirty(true)
	assert.Equal(t, 1, calls)

	ref := NewReference("clock.skin")
	doc.SetReference(ref)
	doc.SetReference(ref)
	assert.Equal(t, 2, calls)

	remove()
	doc.SetReference(nil)
	assert.Equal(t, 2, calls)
}

func TestListeners(t *testing.T) {
	t.Parallel()

	var l Listeners
	var order []string
	l.Add(func() { order = append(order, "a") })
	removeB := l.Add(func() { order = append(order, "b") })
	var removeSelf func()
	removeSelf = l.Add(func() {
		order = append(order, "c")
		removeSelf()
	})
	require.Equal(t, 3, l.Len())

	l.Notify()
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 2, l.Len(), "a callback may remove itself")

	removeB()
	order = nil
	l.Notify()
	assert.Equal(t, []string{"a"}, order)
}

func TestBasicEditorFactory(t *testing.T) {
	t.Parallel()

	f := NewBasicEditorFactory("skin", "layout")
	assert.True(t, f.CanEdit("skin"))
	assert.True(t, f.CanEdit("layout"))
	assert.False(t, f.CanEdit("theme"))

	doc := NewStructured("skin")
	ed, err := f.CreateEditor(doc)
	require.NoError(t, err)
	assert.Same(t, doc, ed.Document())
}

func TestTemplateFunc(t *testing.T) {
	t.Parallel()

	tmpl := NewTemplate("empty skin", func(context.Context) (Document, error) {
		return NewStructured("skin"), nil
	})
	assert.Equal(t, "empty skin", tmpl.Name())

	doc, err := tmpl.CreateDocument(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Type("skin"), doc.Type())
}
