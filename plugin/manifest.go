// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package plugin

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/stacklok/skinstudio-core/document"
	"github.com/stacklok/skinstudio-core/schema"
	"github.com/stacklok/skinstudio-core/validation/name"
)

//go:embed data/manifest.schema.json
var manifestSchemaJSON []byte

var manifestSchema = sync.OnceValues(func() (*schema.Validator, error) {
	return schema.New("plugin manifest", manifestSchemaJSON)
})

// Manifest declares the providers of one plugin.
type Manifest struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Storages    []StorageSpec  `yaml:"storages,omitempty"`
	Editors     []EditorSpec   `yaml:"editors,omitempty"`
	Templates   []TemplateSpec `yaml:"templates,omitempty"`
}

// StorageSpec declares a rule storage.
type StorageSpec struct {
	Name   string `yaml:"name"`
	Codec  string `yaml:"codec,omitempty"`
	Read   string `yaml:"read"`
	Write  string `yaml:"write"`
	Schema string `yaml:"schema,omitempty"`
}

// EditorSpec declares a rule editor factory.
type EditorSpec struct {
	Name    string   `yaml:"name"`
	Edit    string   `yaml:"edit"`
	Toolbox []string `yaml:"toolbox,omitempty"`
}

// TemplateSpec declares a static template, or a Lua template when Script is set.
type TemplateSpec struct {
	Name     string             `yaml:"name"`
	Type     document.Type      `yaml:"type"`
	Script   string             `yaml:"script,omitempty"`
	Sections []document.Section `yaml:"sections,omitempty"`
}

// ParseManifest decodes and validates a manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: empty manifest", ErrInvalidManifest)
	}
	validator, err := manifestSchema()
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateValue(raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	if err := m.validateNames(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	return &m, nil
}

func (m *Manifest) validateNames() error {
	if err := name.Validate("plugin", m.Name); err != nil {
		return err
	}
	for _, t := range m.Templates {
		if err := name.Validate("template", t.Name); err != nil {
			return err
		}
	}
	return nil
}
