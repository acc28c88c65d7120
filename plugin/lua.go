// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package plugin

import (
	"context"
	"fmt"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/stacklok/skinstudio-core/document"
)

// newSandbox returns a Lua state with only the base, table, string, and math
// libraries, and without the functions that load code from disk or strings.
func newSandbox(ctx context.Context) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetContext(ctx)
	return L
}

// runScript executes source and returns the state for inspection. The caller closes it.
func runScript(ctx context.Context, chunk, source string) (*lua.LState, error) {
	L := newSandbox(ctx)
	fn, err := L.Load(strings.NewReader(source), chunk)
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrScript, chunk, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		L.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrScript, chunk, err)
	}
	return L, nil
}

func globalString(L *lua.LState, name string) string {
	if s, ok := L.GetGlobal(name).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// sectionsFromTable converts a list of {name=..., entries={{key=..., value=...}}} tables.
func sectionsFromTable(tbl *lua.LTable) ([]document.Section, error) {
	sections := make([]document.Section, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		st, ok := tbl.RawGetInt(i).(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("section %d is a %s, not a table", i, tbl.RawGetInt(i).Type())
		}
		name, ok := st.RawGetString("name").(lua.LString)
		if !ok || name == "" {
			return nil, fmt.Errorf("section %d has no name", i)
		}
		sec := document.Section{Name: string(name)}

		switch entries := st.RawGetString("entries").(type) {
		case *lua.LTable:
			for j := 1; j <= entries.Len(); j++ {
				et, ok := entries.RawGetInt(j).(*lua.LTable)
				if !ok {
					return nil, fmt.Errorf("section %q entry %d is not a table", name, j)
				}
				key, ok := et.RawGetString("key").(lua.LString)
				if !ok || key == "" {
					return nil, fmt.Errorf("section %q entry %d has no key", name, j)
				}
				value, err := scalarString(et.RawGetString("value"))
				if err != nil {
					return nil, fmt.Errorf("section %q key %q: %w", name, key, err)
				}
				sec.Entries = append(sec.Entries, document.Entry{Key: string(key), Value: value})
			}
		case *lua.LNilType:
		default:
			return nil, fmt.Errorf("section %q entries is a %s, not a table", name, entries.Type())
		}
		sections = append(sections, sec)
	}
	return sections, nil
}

func scalarString(v lua.LValue) (string, error) {
	switch v.Type() {
	case lua.LTString, lua.LTNumber, lua.LTBool:
		return v.String(), nil
	default:
		return "", fmt.Errorf("value is a %s, want string, number, or boolean", v.Type())
	}
}
