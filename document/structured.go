// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package document

import "slices"

// Entry is a key/value pair inside a section.
type Entry struct {
	Key   string `json:"key" yaml:"key" toml:"key"`
	Value string `json:"value" yaml:"value" toml:"value"`
}

// Section is a named, ordered group of entries.
type Section struct {
	Name    string  `json:"name" yaml:"name" toml:"name"`
	Entries []Entry `json:"entries,omitempty" yaml:"entries,omitempty" toml:"entries,omitempty"`
}

// Payload is the format-neutral content of a Structured document.
// Storages encode and decode this value.
type Payload struct {
	Type     Type      `json:"type" yaml:"type" toml:"type"`
	Sections []Section `json:"sections" yaml:"sections" toml:"sections"`
}

// Structured is a generic configuration document made of ordered sections.
// Its type tag is chosen by whoever creates it, so one Go type can back
// several document types.
type Structured struct {
	Base

	kind     Type
	sections []Section
}

// NewStructured creates a clean, unreferenced document of type t.
func NewStructured(t Type, sections ...Section) *Structured {
	return &Structured{kind: t, sections: cloneSections(sections)}
}

// FromPayload creates a clean, unreferenced document from p.
func FromPayload(p Payload) *Structured {
	return NewStructured(p.Type, p.Sections...)
}

// Type returns the document type tag.
func (s *Structured) Type() Type {
	return s.kind
}

// Payload returns a copy of the document content.
func (s *Structured) Payload() Payload {
	return Payload{Type: s.kind, Sections: cloneSections(s.sections)}
}

// Sections returns a copy of the sections in order.
func (s *Structured) Sections() []Section {
	return cloneSections(s.sections)
}

// Get returns the value of key in section.
func (s *Structured) Get(section, key string) (string, bool) {
	i := s.sectionIndex(section)
	if i < 0 {
		return "", false
	}
	for _, e := range s.sections[i].Entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Set assigns value to key in section, creating either as needed.
// It marks the document dirty.
func (s *Structured) Set(section, key, value string) {
	i := s.sectionIndex(section)
	if i < 0 {
		s.sections = append(s.sections, Section{Name: section})
		i = len(s.sections) - 1
	}
	sec := &s.sections[i]
	j := slices.IndexFunc(sec.Entries, func(e Entry) bool { return e.Key == key })
	if j < 0 {
		sec.Entries = append(sec.Entries, Entry{Key: key, Value: value})
	} else {
		sec.Entries[j].Value = value
	}
	s.SetDirty(true)
}

// Delete removes key from section and reports whether it existed.
// It marks the document dirty when something was removed.
func (s *Structured) Delete(section, key string) bool {
	i := s.sectionIndex(section)
	if i < 0 {
		return false
	}
	sec := &s.sections[i]
	j := slices.IndexFunc(sec.Entries, func(e Entry) bool { return e.Key == key })
	if j < 0 {
		return false
	}
	sec.Entries = slices.Delete(sec.Entries, j, j+1)
	s.SetDirty(true)
	return true
}

func (s *Structured) sectionIndex(name string) int {
	return slices.IndexFunc(s.sections, func(sec Section) bool { return sec.Name == name })
}

func cloneSections(in []Section) []Section {
	if in == nil {
		return nil
	}
	out := make([]Section, len(in))
	for i, sec := range in {
		out[i] = Section{Name: sec.Name, Entries: slices.Clone(sec.Entries)}
	}
	return out
}
