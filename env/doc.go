// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env abstracts environment variable access so configuration and
logger setup can be tested without touching the process environment.

# Basic Usage

	reader := &env.OSReader{}
	value := reader.Getenv(env.Key("log_level")) // STUDIO_LOG_LEVEL

Every variable the studio reads carries the [Prefix] "STUDIO_". [Key]
derives the variable name from a configuration key.

# Testing

[MapReader] serves a fixed set of variables. A generated mock is
available in the mocks sub-package when call expectations matter:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv("STUDIO_UNSTRUCTURED_LOGS").Return("false")
*/
package env
