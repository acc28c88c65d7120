// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"slices"

	"github.com/stacklok/skinstudio-core/document"
)

// Registry holds three independent, append-only capability lists.
type Registry struct {
	factories []document.EditorFactory
	storages  []document.Storage
	templates []document.Template
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// RegisterEditorFactory appends f to the editor factories.
func (r *Registry) RegisterEditorFactory(f document.EditorFactory) {
	r.factories = append(r.factories, f)
}

// RegisterStorage appends s to the storages.
func (r *Registry) RegisterStorage(s document.Storage) {
	r.storages = append(r.storages, s)
}

// RegisterTemplate appends t to the templates.
func (r *Registry) RegisterTemplate(t document.Template) {
	r.templates = append(r.templates, t)
}

// RegisterAll registers each candidate into every registry whose capability
// it implements, preserving candidate order. Candidates implementing none of
// the capabilities are ignored. It returns the number of registrations made.
func (r *Registry) RegisterAll(candidates ...any) int {
	n := 0
	for _, c := range candidates {
		if f, ok := c.(document.EditorFactory); ok {
			r.RegisterEditorFactory(f)
			n++
		}
		if s, ok := c.(document.Storage); ok {
			r.RegisterStorage(s)
			n++
		}
		if t, ok := c.(document.Template); ok {
			r.RegisterTemplate(t)
			n++
		}
	}
	return n
}

// EditorFactories returns the registered factories in registration order.
func (r *Registry) EditorFactories() []document.EditorFactory {
	return slices.Clone(r.factories)
}

// Storages returns the registered storages in registration order.
func (r *Registry) Storages() []document.Storage {
	return slices.Clone(r.storages)
}

// Templates returns the registered templates in registration order.
func (r *Registry) Templates() []document.Template {
	return slices.Clone(r.templates)
}
