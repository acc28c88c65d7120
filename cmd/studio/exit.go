// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/spf13/cobra"

	"github.com/stacklok/skinstudio-core/exitcode"
)

// args wraps a cobra argument validator so violations exit with Usage.
func args(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		return exitcode.WithCode(v(cmd, a), exitcode.Usage)
	}
}
