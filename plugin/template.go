// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package plugin

import (
	"context"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/stacklok/skinstudio-core/document"
)

// StaticTemplate creates documents with fixed content.
type StaticTemplate struct {
	name     string
	kind     document.Type
	sections []document.Section
}

// NewStaticTemplate creates a template producing documents of type t with sections.
func NewStaticTemplate(name string, t document.Type, sections ...document.Section) *StaticTemplate {
	return &StaticTemplate{name: name, kind: t, sections: sections}
}

// Name returns the template name.
func (t *StaticTemplate) Name() string {
	return t.name
}

// CreateDocument returns a new document holding a copy of the sections.
func (t *StaticTemplate) CreateDocument(context.Context) (document.Document, error) {
	return document.NewStructured(t.kind, t.sections...), nil
}

// LuaTemplate creates documents by running a Lua script's create function.
type LuaTemplate struct {
	name   string
	kind   document.Type
	chunk  string
	source string
}

// NewLuaTemplate creates a template from Lua source. chunk names the script
// in error messages, usually its path.
func NewLuaTemplate(name string, t document.Type, chunk, source string) *LuaTemplate {
	return &LuaTemplate{name: name, kind: t, chunk: chunk, source: source}
}

// Name returns the template name.
func (t *LuaTemplate) Name() string {
	return t.name
}

// CreateDocument runs the script in a fresh state and converts the table
// returned by create() into a document. ctx cancels a running script.
func (t *LuaTemplate) CreateDocument(ctx context.Context) (document.Document, error) {
	L, err := runScript(ctx, t.chunk, t.source)
	if err != nil {
		return nil, err
	}
	defer L.Close()

	fn, ok := L.GetGlobal("create").(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("%w: %s does not define create()", ErrScript, t.chunk)
	}
	if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScript, t.chunk, err)
	}
	ret := L.Get(-1)
	L.Pop(1)

	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: %s: create() returned a %s, not a table", ErrScript, t.chunk, ret.Type())
	}
	sections, err := sectionsFromTable(tbl)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScript, t.chunk, err)
	}
	return document.NewStructured(t.kind, sections...), nil
}
