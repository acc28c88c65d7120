// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package manager

import "github.com/stacklok/skinstudio-core/document"

// Kind identifies a lifecycle transition.
type Kind string

const (
	// Opened fires after Create or Open added an editor to the open set.
	Opened Kind = "opened"
	// Closed fires after Close, whether or not the editor was open.
	Closed Kind = "closed"
	// Saved fires after Save or SaveAs wrote a document to its reference path.
	Saved Kind = "saved"
)

// Event describes a lifecycle transition.
type Event struct {
	Kind Kind
	// Editor is the affected editor. For Saved it is nil when the saved
	// document has no open editor.
	Editor document.Editor
	// Path is the written path for Saved, and the document reference path
	// (if any) for Opened and Closed.
	Path string
}

// Handler receives lifecycle events.
type Handler func(Event)

type subscription struct {
	fn Handler
}

// Subscribe registers fn and returns a function that unregisters it.
func (m *Manager) Subscribe(fn Handler) (unsubscribe func()) {
	sub := &subscription{fn: fn}
	m.subs = append(m.subs, sub)
	return func() {
		for i, s := range m.subs {
			if s == sub {
				m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

// emit runs the handlers, then publishes to the broker. Handler panics propagate.
func (m *Manager) emit(ev Event) {
	subs := append([]*subscription(nil), m.subs...)
	for _, s := range subs {
		s.fn(ev)
	}
	if m.broker != nil {
		m.broker.Publish(ev)
	}
}

func referencePath(doc document.Document) string {
	if ref := doc.Reference(); ref != nil {
		return ref.Path
	}
	return ""
}
