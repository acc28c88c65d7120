// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package manager

import (
	"context"
	"sync"

	"github.com/stacklok/skinstudio-core/document"
)

// Guarded serializes access to a Manager with a mutex.
// Event handlers run while the lock is held and must not call back into the Guarded.
type Guarded struct {
	mu sync.Mutex
	m  *Manager
}

// NewGuarded wraps m. The caller must not use m directly afterwards.
func NewGuarded(m *Manager) *Guarded {
	return &Guarded{m: m}
}

// Create calls Manager.Create under the lock.
func (g *Guarded) Create(ctx context.Context, tmpl document.Template) (document.Editor, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.m.Create(ctx, tmpl)
}

// Open calls Manager.Open under the lock.
func (g *Guarded) Open(ctx context.Context, path string) (document.Editor, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.m.Open(ctx, path)
}

// Save calls Manager.Save under the lock.
func (g *Guarded) Save(ctx context.Context, doc document.Document) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.m.Save(ctx, doc)
}

// SaveAs calls Manager.SaveAs under the lock.
func (g *Guarded) SaveAs(ctx context.Context, path string, doc document.Document) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.m.SaveAs(ctx, path, doc)
}

// SaveACopy calls Manager.SaveACopy under the lock.
func (g *Guarded) SaveACopy(ctx context.Context, path string, doc document.Document) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.m.SaveACopy(ctx, path, doc)
}

// Close calls Manager.Close under the lock.
func (g *Guarded) Close(ed document.Editor) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.m.Close(ed)
}

// Editors calls Manager.Editors under the lock.
func (g *Guarded) Editors() []document.Editor {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.m.Editors()
}

// Subscribe calls Manager.Subscribe under the lock. The returned function
// also takes the lock.
func (g *Guarded) Subscribe(fn Handler) func() {
	g.mu.Lock()
	defer g.mu.Unlock()
	unsubscribe := g.m.Subscribe(fn)
	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		unsubscribe()
	}
}
