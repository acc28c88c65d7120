// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package tree

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// node is the serialized form of a Tree.
type node[T comparable] struct {
	Data     T          `json:"data" yaml:"data"`
	Children []*Tree[T] `json:"children,omitempty" yaml:"children,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (t *Tree[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(node[T]{Data: t.Data, Children: t.children})
}

// UnmarshalJSON implements json.Unmarshaler. Existing children are replaced.
func (t *Tree[T]) UnmarshalJSON(data []byte) error {
	var n node[T]
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	return t.adopt(n)
}

// MarshalYAML implements yaml.Marshaler.
func (t *Tree[T]) MarshalYAML() (any, error) {
	return node[T]{Data: t.Data, Children: t.children}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Existing children are replaced.
func (t *Tree[T]) UnmarshalYAML(value *yaml.Node) error {
	var n node[T]
	if err := value.Decode(&n); err != nil {
		return err
	}
	return t.adopt(n)
}

func (t *Tree[T]) adopt(n node[T]) error {
	t.Clear()
	t.Data = n.Data
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		if err := t.AppendChild(c); err != nil {
			return err
		}
	}
	return nil
}
