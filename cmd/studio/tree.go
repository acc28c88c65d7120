// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stacklok/skinstudio-core/project"
)

// ProjectExt is the extension of project files written by "project init".
const ProjectExt = ".skinproj"

func printTree(w io.Writer, root *project.Node) {
	root.Walk(func(depth int, n *project.Node) bool {
		label := n.Data.Name
		if depth == 0 {
			label = n.Data.Path
		} else if !n.IsLeaf() {
			label += string(filepath.Separator)
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), label)
		return true
	})
}

func newTreeCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "tree [dir]",
		Short: "Print the documents below a folder",
		Long: `Print the folder tree below dir, directories first. Only files some
storage can read are listed unless --all is given.`,
		Args: args(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, argv []string) error {
			dir := "."
			if len(argv) == 1 {
				dir = argv[0]
			}
			filter := project.ReadableBy(a.reg)
			if all {
				filter = nil
			}
			root, err := project.FolderTree(a.fs, dir, filter)
			if err != nil {
				return err
			}
			printTree(cmd.OutOrStdout(), root)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every file")
	return cmd
}

func newProjectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Create and inspect project files",
	}
	cmd.AddCommand(newProjectInitCmd(a), newProjectShowCmd(a))
	return cmd
}

func newProjectInitCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "init <name> [dir]",
		Short: "Snapshot a folder into a project file",
		Args:  args(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, argv []string) error {
			dir := "."
			if len(argv) == 2 {
				dir = argv[1]
			}
			p, err := project.New(argv[0], dir)
			if err != nil {
				return err
			}
			if p.Root, err = project.FolderTree(a.fs, dir, project.ReadableBy(a.reg)); err != nil {
				return err
			}
			if out == "" {
				out = filepath.Join(dir, argv[0]+ProjectExt)
			}
			if err := p.Save(a.fs, out); err != nil {
				return fmt.Errorf("saving project: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d documents)\n", out, len(p.Documents()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "project file (default: <dir>/<name>"+ProjectExt+")")
	return cmd
}

func newProjectShowCmd(a *app) *cobra.Command {
	var docsOnly bool
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a project file",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, argv []string) error {
			p, err := project.Load(a.fs, argv[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if docsOnly {
				for _, ref := range p.Documents() {
					fmt.Fprintln(w, ref.Path)
				}
				return nil
			}
			fmt.Fprintf(w, "project %s\n", p.Name)
			printTree(w, p.Root)
			return nil
		},
	}
	cmd.Flags().BoolVar(&docsOnly, "documents", false, "list document paths only")
	return cmd
}
