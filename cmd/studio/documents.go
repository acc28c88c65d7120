// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stacklok/skinstudio-core/document"
	"github.com/stacklok/skinstudio-core/exitcode"
)

func newTemplatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available document templates",
		Args:  args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, t := range a.reg.Templates() {
				fmt.Fprintln(cmd.OutOrStdout(), t.Name())
			}
			return nil
		},
	}
}

func newNewCmd(a *app) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "new <template> <path>",
		Short: "Create a document from a template and save it",
		Long: `Create a document from a template and save it to path.

Entries can be preset with --set section.key=value. The first storage able
to write the document type saves it. Built-in storages encode the file with
the codec matching its extension and fall back to --codec.`,
		Args: args(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, argv []string) error {
			ctx := cmd.Context()
			tmpl, err := a.reg.Template(argv[0])
			if err != nil {
				return err
			}
			ed, err := a.mgr.Create(ctx, tmpl)
			if err != nil {
				return err
			}
			defer a.mgr.Close(ed)

			if err := applySets(ed.Document(), sets); err != nil {
				return err
			}
			if err := a.mgr.SaveAs(ctx, argv[1], ed.Document()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", argv[1], ed.Document().Type())
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "preset an entry as section.key=value, repeatable")
	return cmd
}

// applySets assigns section.key=value pairs to a structured document.
func applySets(doc document.Document, sets []string) error {
	if len(sets) == 0 {
		return nil
	}
	s, ok := doc.(*document.Structured)
	if !ok {
		return exitcode.WithCode(fmt.Errorf("documents of type %s do not accept --set", doc.Type()), exitcode.Usage)
	}
	for _, kv := range sets {
		path, value, ok := strings.Cut(kv, "=")
		section, key, dot := strings.Cut(path, ".")
		if !ok || !dot || section == "" || key == "" {
			return exitcode.WithCode(fmt.Errorf("--set %q: want section.key=value", kv), exitcode.Usage)
		}
		s.Set(section, key, value)
	}
	return nil
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Re-encode a document with the codec matching the output extension",
		Args:  args(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, argv []string) error {
			ctx := cmd.Context()
			ed, err := a.mgr.Open(ctx, argv[0])
			if err != nil {
				return err
			}
			defer a.mgr.Close(ed)

			out, err := a.outputStorage(argv[1])
			if err != nil {
				return err
			}
			if err := out.Write(ctx, argv[1], ed.Document()); err != nil {
				return fmt.Errorf("writing %s: %w", argv[1], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "converted %s -> %s (%s)\n", argv[0], argv[1], out.CodecFor(argv[1]).Name())
			return nil
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>...",
		Short: "Open documents and report the ones that fail to load",
		Args:  args(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, argv []string) error {
			var errs []error
			for _, path := range argv {
				ed, err := a.mgr.Open(cmd.Context(), path)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", path, err)
					errs = append(errs, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (%s)\n", path, ed.Document().Type())
				a.mgr.Close(ed)
			}
			if len(errs) > 0 {
				err := fmt.Errorf("%d of %d documents failed: %w", len(errs), len(argv), errors.Join(errs...))
				return exitcode.WithCode(err, exitcode.Invalid)
			}
			return nil
		},
	}
}
