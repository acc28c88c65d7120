// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package project

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/stacklok/skinstudio-core/document"
	"github.com/stacklok/skinstudio-core/registry"
	"github.com/stacklok/skinstudio-core/tree"
)

// Filter decides whether a file appears in a folder tree. Directories are
// always listed.
type Filter func(path string) bool

// ReadableBy accepts files that some storage in reg can read.
func ReadableBy(reg *registry.Registry) Filter {
	return func(path string) bool {
		_, err := reg.ResolveReaderStorage(path)
		return err == nil
	}
}

// FolderTree builds a reference tree of dir. Each level lists directories
// first and then files, each in lexical order. Hidden entries (starting
// with a dot) are skipped. A nil filter lists every file.
func FolderTree(fsys afero.Fs, dir string, filter Filter) (*Node, error) {
	dir = filepath.Clean(dir)
	root := tree.New(*document.NewReference(dir))
	if err := fill(fsys, root, filter); err != nil {
		return nil, err
	}
	return root, nil
}

func fill(fsys afero.Fs, n *Node, filter Filter) error {
	entries, err := afero.ReadDir(fsys, n.Data.Path)
	if err != nil {
		return err
	}
	slices.SortStableFunc(entries, func(a, b fs.FileInfo) int {
		switch {
		case a.IsDir() == b.IsDir():
			return 0
		case a.IsDir():
			return -1
		default:
			return 1
		}
	})

	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		path := filepath.Join(n.Data.Path, e.Name())
		if e.IsDir() {
			child := n.AppendValue(*document.NewReference(path))
			if err := fill(fsys, child, filter); err != nil {
				return err
			}
			continue
		}
		if filter == nil || filter(path) {
			n.AppendValue(*document.NewReference(path))
		}
	}
	return nil
}
