// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/stacklok/skinstudio-core/document"
)

const (
	// DefaultMaxExpressionLength bounds the size of a predicate source.
	DefaultMaxExpressionLength = 4096

	// DefaultCostLimit bounds the runtime cost of a single evaluation.
	DefaultCostLimit = 100000
)

// Input is the subject a predicate is asked about.
type Input struct {
	Path string
	Type document.Type
}

// ForPath builds the input for a CanRead question.
func ForPath(path string) Input {
	return Input{Path: path}
}

// ForType builds the input for a CanWrite or CanEdit question.
func ForType(t document.Type) Input {
	return Input{Type: t}
}

func (in Input) activation() map[string]any {
	var name, ext string
	if in.Path != "" {
		name = filepath.Base(in.Path)
		ext = filepath.Ext(in.Path)
	}
	return map[string]any{
		"path": in.Path,
		"name": name,
		"ext":  ext,
		"type": string(in.Type),
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxExpressionLength sets the longest accepted predicate source.
func WithMaxExpressionLength(n int) Option {
	return func(e *Engine) { e.maxLen = n }
}

// WithCostLimit sets the runtime cost limit of compiled predicates.
func WithCostLimit(limit uint64) Option {
	return func(e *Engine) { e.costLimit = limit }
}

// Engine compiles predicates against the capability variables.
type Engine struct {
	env       func() (*cel.Env, error)
	maxLen    int
	costLimit uint64
}

// NewEngine creates an Engine. The CEL environment is built on first use.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		maxLen:    DefaultMaxExpressionLength,
		costLimit: DefaultCostLimit,
		env: sync.OnceValues(func() (*cel.Env, error) {
			return cel.NewEnv(
				cel.Variable("path", cel.StringType),
				cel.Variable("name", cel.StringType),
				cel.Variable("ext", cel.StringType),
				cel.Variable("type", cel.StringType),
			)
		}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Check parses and type-checks expr without building a program.
func (e *Engine) Check(expr string) error {
	_, _, err := e.check(expr)
	return err
}

// Compile parses, type-checks, and compiles expr.
func (e *Engine) Compile(expr string) (*Predicate, error) {
	env, ast, err := e.check(expr)
	if err != nil {
		return nil, err
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("%w: rule %q has type %s", ErrInvalidResult, expr, ast.OutputType())
	}
	prg, err := env.Program(ast, cel.CostLimit(e.costLimit))
	if err != nil {
		return nil, fmt.Errorf("building program for rule %q: %w", expr, err)
	}
	return &Predicate{source: expr, program: prg}, nil
}

func (e *Engine) check(expr string) (*cel.Env, *cel.Ast, error) {
	if len(expr) > e.maxLen {
		return nil, nil, fmt.Errorf("%w: rule length %d exceeds maximum of %d",
			ErrExpressionCheck, len(expr), e.maxLen)
	}
	env, err := e.env()
	if err != nil {
		return nil, nil, fmt.Errorf("creating rule environment: %w", err)
	}
	parsed, issues := env.Parse(expr)
	if issues.Err() != nil {
		return nil, nil, newParseError(expr, issues)
	}
	checked, issues := env.Check(parsed)
	if issues.Err() != nil {
		return nil, nil, newCheckError(expr, issues)
	}
	return env, checked, nil
}

// Predicate is a compiled rule.
type Predicate struct {
	source  string
	program cel.Program
}

// Source returns the expression the predicate was compiled from.
func (p *Predicate) Source() string {
	return p.source
}

// Match evaluates the predicate for in.
func (p *Predicate) Match(in Input) (bool, error) {
	out, _, err := p.program.Eval(in.activation())
	if err != nil {
		return false, fmt.Errorf("%w: %q: %s", ErrEvaluation, p.source, err)
	}
	v, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: got %T", ErrInvalidResult, out.Value())
	}
	return v, nil
}
