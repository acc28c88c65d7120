// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Command studio manages skin documents from the command line: it creates
// documents from templates, converts and validates them, lists folders and
// projects, and watches open documents for external changes.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/stacklok/skinstudio-core/env"
	"github.com/stacklok/skinstudio-core/exitcode"
	"github.com/stacklok/skinstudio-core/logger"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

func run(ctx context.Context, args []string) int {
	cmd := newRootCmd(newApp(&env.OSReader{}))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	logger.Sync()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
	}
	return exitcode.Code(err)
}
