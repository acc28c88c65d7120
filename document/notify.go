// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package document

// ChangeNotifier is implemented by documents that report changes to their
// reference or dirty flag. [Base] implements it.
type ChangeNotifier interface {
	// OnChange registers fn and returns a function that removes it.
	OnChange(fn func()) (remove func())
}

type listener struct {
	fn func()
}

// Listeners is a list of change callbacks. The zero value is empty and ready
// to use. Like documents, it is not safe for concurrent use.
type Listeners struct {
	list []*listener
}

// Add registers fn and returns a function that removes it. Removing twice is
// a no-op.
func (l *Listeners) Add(fn func()) (remove func()) {
	entry := &listener{fn: fn}
	l.list = append(l.list, entry)
	return func() {
		for i, e := range l.list {
			if e == entry {
				l.list = append(l.list[:i:i], l.list[i+1:]...)
				return
			}
		}
	}
}

// Notify calls the registered callbacks in registration order. Callbacks
// added or removed during Notify take effect on the next call.
func (l *Listeners) Notify() {
	for _, e := range append([]*listener(nil), l.list...) {
		e.fn()
	}
}

// Len returns the number of registered callbacks.
func (l *Listeners) Len() int {
	return len(l.list)
}
