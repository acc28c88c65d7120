// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

// Sentinel errors for predicate compilation and evaluation.
var (
	// ErrExpressionCheck is returned when a predicate fails syntax or type checking.
	ErrExpressionCheck = errors.New("rule expression check failed")

	// ErrEvaluation is returned when evaluating a predicate fails.
	ErrEvaluation = errors.New("rule evaluation failed")

	// ErrInvalidResult is returned when a predicate does not produce a bool.
	ErrInvalidResult = errors.New("rule returned a non-boolean result")
)

// Issue is one problem reported for an expression.
type Issue struct {
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`
	Msg  string `json:"msg,omitempty"`
}

// Details lists the issues found in an expression.
type Details struct {
	Source string  `json:"source,omitempty"`
	Issues []Issue `json:"issues,omitempty"`
}

// AsJSON renders the details for machine consumption, e.g. by `studio validate -o json`.
func (d *Details) AsJSON() string {
	b, err := json.Marshal(d)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(b)
}

func detailsFrom(source string, issues *cel.Issues) Details {
	d := Details{Source: source, Issues: make([]Issue, 0, len(issues.Errors()))}
	for _, e := range issues.Errors() {
		d.Issues = append(d.Issues, Issue{
			Line: e.Location.Line(),
			Col:  e.Location.Column(),
			Msg:  e.Message,
		})
	}
	return d
}

// ParseError reports a syntax error in a predicate.
type ParseError struct {
	Details
	cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in rule %q: %s", e.Source, e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }

// CheckError reports a type error in a predicate, such as an unknown variable.
type CheckError struct {
	Details
	cause error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("type error in rule %q: %s", e.Source, e.cause)
}

func (e *CheckError) Unwrap() error { return e.cause }

func newParseError(source string, issues *cel.Issues) error {
	return &ParseError{
		Details: detailsFrom(source, issues),
		cause:   fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err()),
	}
}

func newCheckError(source string, issues *cel.Issues) error {
	return &CheckError{
		Details: detailsFrom(source, issues),
		cause:   fmt.Errorf("%w: %w", ErrExpressionCheck, issues.Err()),
	}
}
