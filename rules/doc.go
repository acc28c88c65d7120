// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package rules compiles CEL capability predicates used by declarative plugins
to answer CanRead, CanWrite, and CanEdit questions.

Predicates see four string variables:

	path  the full path being asked about ("" for type questions)
	name  the base name of path
	ext   the extension of path, including the dot
	type  the document type ("" for path questions)

# Basic Usage

	engine := rules.NewEngine()

	p, err := engine.Compile(`ext == ".skin" || name.endsWith(".ini")`)
	if err != nil {
	    // *rules.ParseError or *rules.CheckError
	}

	ok, err := p.Match(rules.ForPath("skins/clock.skin"))
	// ok == true

	p, _ = engine.Compile(`type in ["skin", "layout"]`)
	ok, _ = p.Match(rules.ForType("skin"))

Predicates must evaluate to a bool; anything else fails with ErrInvalidResult.

# Limits

Expressions longer than the configured maximum are rejected at compile time,
and programs are compiled with a runtime cost limit. See [WithMaxExpressionLength]
and [WithCostLimit].

# Concurrency

An Engine builds its CEL environment once and can be shared between
goroutines. Compiled predicates are safe for concurrent evaluation.
*/
package rules
