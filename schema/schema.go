// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed data/payload.schema.json
var embeddedSchemaFS embed.FS

// ErrValidation matches every *ValidationError.
var ErrValidation = errors.New("schema validation failed")

// ValidationError lists the schema violations found in one document.
type ValidationError struct {
	Schema   string
	Messages []string
}

func (e *ValidationError) Error() string {
	prefix := fmt.Sprintf("%s validation failed", e.Schema)
	if len(e.Messages) == 1 {
		return prefix + ": " + e.Messages[0]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s with %d errors:", prefix, len(e.Messages))
	for i, msg := range e.Messages {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, msg)
	}
	return b.String()
}

// Is reports whether target is ErrValidation.
func (*ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Validator checks JSON documents against a compiled schema.
// It is safe for concurrent use.
type Validator struct {
	name   string
	schema *gojsonschema.Schema
}

// New compiles a JSON Schema. name identifies the schema in error messages.
func New(name string, schemaJSON []byte) (*Validator, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", name, err)
	}
	return &Validator{name: name, schema: s}, nil
}

var payloadValidator = sync.OnceValue(func() *Validator {
	data, err := embeddedSchemaFS.ReadFile("data/payload.schema.json")
	if err != nil {
		panic(fmt.Sprintf("reading embedded payload schema: %v", err))
	}
	v, err := New("payload", data)
	if err != nil {
		panic(err)
	}
	return v
})

// Payload returns the validator for document.Payload values.
func Payload() *Validator {
	return payloadValidator()
}

// Name returns the schema name given to New.
func (v *Validator) Name() string {
	return v.name
}

// Validate checks raw JSON bytes.
func (v *Validator) Validate(data []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validating against %s: %w", v.name, err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return &ValidationError{Schema: v.name, Messages: msgs}
}

// ValidateValue marshals value to JSON and validates the result.
func (v *Validator) ValidateValue(value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializing value for %s: %w", v.name, err)
	}
	return v.Validate(data)
}
