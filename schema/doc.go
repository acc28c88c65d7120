// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package schema validates document content against JSON Schemas.
//
// [Payload] returns the built-in schema for structured documents. Plugins can
// ship their own schemas and compile them with [New].
package schema
