// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/skinstudio-core/document"
	"github.com/stacklok/skinstudio-core/tree"
	"github.com/stacklok/skinstudio-core/validation/name"
)

// Node is a project tree node.
type Node = tree.Tree[document.Reference]

// Project is a named tree of references rooted at the project folder.
type Project struct {
	Name string `yaml:"name"`
	Root *Node  `yaml:"root"`
}

// New creates a project whose root references dir.
func New(projectName, dir string) (*Project, error) {
	if err := name.Validate("project", projectName); err != nil {
		return nil, err
	}
	return &Project{
		Name: projectName,
		Root: tree.New(*document.NewReference(filepath.Clean(dir))),
	}, nil
}

// Load reads a project file.
func Load(fsys afero.Fs, path string) (*Project, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	var p Project
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidProject, path, err)
	}
	if err := name.Validate("project", p.Name); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidProject, path, err)
	}
	if p.Root == nil {
		return nil, fmt.Errorf("%w: %s: missing root", ErrInvalidProject, path)
	}
	return &p, nil
}

// Save writes the project file, creating its directory if needed.
func (p *Project) Save(fsys afero.Fs, path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding project %s: %w", p.Name, err)
	}
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(fsys, path, data, 0o644)
}

// Find returns the node whose reference path equals path, or nil.
func (p *Project) Find(path string) *Node {
	path = filepath.Clean(path)
	var found *Node
	p.Root.Walk(func(_ int, n *Node) bool {
		if filepath.Clean(n.Data.Path) == path {
			found = n
			return false
		}
		return true
	})
	return found
}

// Add attaches a reference for path under the node for parent and returns it.
// Adding a path that is already a child of parent returns the existing node.
func (p *Project) Add(parent, path string) (*Node, error) {
	dir := p.Find(parent)
	if dir == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, parent)
	}
	ref := *document.NewReference(filepath.Clean(path))
	if i := dir.IndexOfData(ref); i >= 0 {
		return dir.ChildAt(i)
	}
	return dir.AppendValue(ref), nil
}

// Remove detaches the node for path, with its subtree. The root cannot be removed.
func (p *Project) Remove(path string) error {
	n := p.Find(path)
	if n == nil || n.Parent() == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	parent := n.Parent()
	for i, c := range parent.Children() {
		if c == n {
			_, err := parent.RemoveChildAt(i)
			return err
		}
	}
	return nil
}

// Documents returns the references of every leaf below the root, in pre-order.
func (p *Project) Documents() []document.Reference {
	var refs []document.Reference
	p.Root.Walk(func(depth int, n *Node) bool {
		if depth > 0 && n.IsLeaf() {
			refs = append(refs, n.Data)
		}
		return true
	})
	return refs
}
