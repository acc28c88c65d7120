// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package plugin

import (
	"context"
	"log/slog"

	"github.com/opencontainers/go-digest"

	"github.com/stacklok/skinstudio-core/document"
	"github.com/stacklok/skinstudio-core/rules"
	"github.com/stacklok/skinstudio-core/storage"
)

// match evaluates p, treating evaluation failures as "no".
func match(logger *slog.Logger, owner string, p *rules.Predicate, in rules.Input) bool {
	ok, err := p.Match(in)
	if err != nil {
		logger.Warn("rule evaluation failed", "provider", owner, "rule", p.Source(), "error", err)
		return false
	}
	return ok
}

// RuleStorage is a codec storage whose capabilities are decided by predicates.
type RuleStorage struct {
	name   string
	inner  *storage.Storage
	read   *rules.Predicate
	write  *rules.Predicate
	logger *slog.Logger
}

// NewRuleStorage wraps inner with read and write predicates.
func NewRuleStorage(name string, inner *storage.Storage, read, write *rules.Predicate, logger *slog.Logger) *RuleStorage {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RuleStorage{name: name, inner: inner, read: read, write: write, logger: logger}
}

// Name returns the storage name from the manifest.
func (s *RuleStorage) Name() string { return s.name }

// CanRead evaluates the read predicate for path.
func (s *RuleStorage) CanRead(path string) bool {
	return match(s.logger, s.name, s.read, rules.ForPath(path))
}

// CanWrite evaluates the write predicate for t.
func (s *RuleStorage) CanWrite(t document.Type) bool {
	return match(s.logger, s.name, s.write, rules.ForType(t))
}

// Read delegates to the wrapped storage.
func (s *RuleStorage) Read(ctx context.Context, path string) (document.Document, error) {
	return s.inner.Read(ctx, path)
}

// Write delegates to the wrapped storage.
func (s *RuleStorage) Write(ctx context.Context, path string, doc document.Document) error {
	return s.inner.Write(ctx, path, doc)
}

// Digest delegates to the wrapped storage.
func (s *RuleStorage) Digest(path string) (digest.Digest, bool) {
	return s.inner.Digest(path)
}

// RuleEditorFactory creates headless editors for the types its predicate accepts.
type RuleEditorFactory struct {
	name    string
	edit    *rules.Predicate
	toolbox []string
	logger  *slog.Logger
}

// NewRuleEditorFactory creates a factory. Editors it creates offer toolbox
// items when toolbox is not empty.
func NewRuleEditorFactory(name string, edit *rules.Predicate, toolbox []string, logger *slog.Logger) *RuleEditorFactory {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &RuleEditorFactory{name: name, edit: edit, toolbox: toolbox, logger: logger}
}

// Name returns the editor name from the manifest.
func (f *RuleEditorFactory) Name() string { return f.name }

// CanEdit evaluates the edit predicate for t.
func (f *RuleEditorFactory) CanEdit(t document.Type) bool {
	return match(f.logger, f.name, f.edit, rules.ForType(t))
}

// CreateEditor wraps doc in an editor.
func (f *RuleEditorFactory) CreateEditor(doc document.Document) (document.Editor, error) {
	ed := &ruleEditor{BasicEditor: document.NewBasicEditor(doc)}
	ed.SetToolboxItems(f.toolbox)
	return ed, nil
}

type ruleEditor struct {
	*document.BasicEditor
	document.Toolbox
}
