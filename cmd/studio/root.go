// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "studio",
		Short:         "Create, convert, validate and watch skin documents",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.teardown()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/skinstudio/config.yaml)")
	flags.StringVar(&a.codec, "codec", "", "preferred codec for new documents: yaml|toml|json")
	flags.StringSliceVar(&a.pluginDirs, "plugin-dir", nil, "plugin directory, repeatable (replaces plugin_dirs)")
	flags.BoolVar(&a.noPlugins, "no-plugins", false, "skip plugin loading")

	root.AddCommand(
		newTemplatesCmd(a),
		newNewCmd(a),
		newConvertCmd(a),
		newValidateCmd(a),
		newTreeCmd(a),
		newProjectCmd(a),
		newWatchCmd(a),
	)
	return root
}
