// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/stacklok/skinstudio-core/document"
)

// Codec converts payloads to and from bytes.
type Codec interface {
	// Name is the identifier accepted by CodecByName.
	Name() string
	// Extensions lists file extensions, with the leading dot, for this format.
	Extensions() []string
	Marshal(p document.Payload) ([]byte, error)
	Unmarshal(data []byte) (document.Payload, error)
}

// Built-in codecs.
var (
	YAML Codec = yamlCodec{}
	TOML Codec = tomlCodec{}
	JSON Codec = jsonCodec{}
)

var codecs = []Codec{YAML, TOML, JSON}

// CodecByName returns the built-in codec called name, case-insensitively.
func CodecByName(name string) (Codec, error) {
	for _, c := range codecs {
		if strings.EqualFold(c.Name(), name) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

// CodecForPath returns the built-in codec whose extensions include the
// extension of path.
func CodecForPath(path string) (Codec, bool) {
	for _, c := range codecs {
		for _, ext := range c.Extensions() {
			if strings.HasSuffix(strings.ToLower(path), ext) {
				return c, true
			}
		}
	}
	return nil, false
}

type yamlCodec struct{}

func (yamlCodec) Name() string         { return "yaml" }
func (yamlCodec) Extensions() []string { return []string{".yaml", ".yml"} }

func (yamlCodec) Marshal(p document.Payload) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (yamlCodec) Unmarshal(data []byte) (document.Payload, error) {
	var p document.Payload
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return p, ErrEmptyDocument
		}
		return p, err
	}
	return p, nil
}

type tomlCodec struct{}

func (tomlCodec) Name() string         { return "toml" }
func (tomlCodec) Extensions() []string { return []string{".toml"} }

func (tomlCodec) Marshal(p document.Payload) ([]byte, error) {
	return toml.Marshal(p)
}

func (tomlCodec) Unmarshal(data []byte) (document.Payload, error) {
	var p document.Payload
	if len(bytes.TrimSpace(data)) == 0 {
		return p, ErrEmptyDocument
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(&p)
	return p, err
}

type jsonCodec struct{}

func (jsonCodec) Name() string         { return "json" }
func (jsonCodec) Extensions() []string { return []string{".json"} }

func (jsonCodec) Marshal(p document.Payload) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonCodec) Unmarshal(data []byte) (document.Payload, error) {
	var p document.Payload
	if len(bytes.TrimSpace(data)) == 0 {
		return p, ErrEmptyDocument
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(&p)
	return p, err
}
