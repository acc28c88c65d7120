// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package tree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

// build creates a node with leaf children holding the given values.
func build(data int, children ...int) *Tree[int] {
	t := New(data)
	for _, c := range children {
		t.AppendValue(c)
	}
	return t
}

func TestTree_Equal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    *Tree[int]
		b    *Tree[int]
		want bool
	}{
		{"equal leaves", New(1), New(1), true},
		{"different data", New(1), New(2), false},
		{"same children", build(5, 1), build(5, 1), true},
		{"order matters", build(5, 1, 2), build(5, 2, 1), false},
		{"extra child", build(5, 1), build(5, 1, 2), false},
		{"leaf vs parent", New(5), build(5, 1), false},
		{"nil vs node", nil, New(0), false},
		{"nil vs nil", nil, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.a.Equal(tc.b))
			assert.Equal(t, tc.want, tc.b.Equal(tc.a), "equality should be symmetric")
		})
	}
}

func TestTree_EqualIsRecursive(t *testing.T) {
	t.Parallel()

	a := build(1, 2)
	grand, err := a.ChildAt(0)
	require.NoError(t, err)
	grand.AppendValue(3)

	b := build(1, 2)
	assert.False(t, a.Equal(b))

	bChild, err := b.ChildAt(0)
	require.NoError(t, err)
	bChild.AppendValue(3)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestTree_ChildOperations(t *testing.T) {
	t.Parallel()

	root := build(0, 1, 3)

	_, err := root.InsertValueAt(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, root.Values())

	require.NoError(t, root.SetChildAt(0, New(10)))
	assert.Equal(t, []int{10, 2, 3}, root.Values())

	removed, err := root.RemoveChildAt(2)
	require.NoError(t, err)
	assert.Equal(t, 3, removed.Data)
	assert.Nil(t, removed.Parent())
	assert.Equal(t, 2, root.ChildCount())

	_, err = root.ChildAt(5)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = root.InsertValueAt(-1, 7)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.NoError(t, root.AppendChild(removed), "a removed node can be re-attached")

	root.Clear()
	assert.Zero(t, root.ChildCount())
	assert.True(t, root.IsLeaf())
	assert.Nil(t, removed.Parent())
}

func TestTree_SetChildAtDetachesReplaced(t *testing.T) {
	t.Parallel()

	root := build(0, 1)
	old, err := root.ChildAt(0)
	require.NoError(t, err)

	require.NoError(t, root.SetChildAt(0, New(2)))
	assert.Nil(t, old.Parent())

	same, err := root.ChildAt(0)
	require.NoError(t, err)
	require.NoError(t, root.SetChildAt(0, same), "setting the same node is a no-op")
	assert.Equal(t, root, same.Parent())
}

func TestTree_RejectsCycles(t *testing.T) {
	t.Parallel()

	root := New(0)
	child := root.AppendValue(1)
	grandchild := child.AppendValue(2)

	require.ErrorIs(t, root.AppendChild(root), ErrCycle)
	require.ErrorIs(t, grandchild.AppendChild(root), ErrCycle)
	require.ErrorIs(t, New(9).AppendChild(child), ErrAttached)
	require.ErrorIs(t, root.AppendChild(nil), ErrNilNode)
	assert.Equal(t, 1, root.ChildCount(), "failed inserts must not modify the tree")
}

func TestTree_ValueLookups(t *testing.T) {
	t.Parallel()

	root := build(0, 1, 2)
	withChildren := root.AppendValue(3)
	withChildren.AppendValue(4)

	assert.True(t, root.ContainsLeaf(1))
	assert.Equal(t, 1, root.IndexOfLeaf(2))

	// A child holding 3 exists, but it is not a leaf.
	assert.False(t, root.ContainsLeaf(3))
	assert.Equal(t, -1, root.IndexOfLeaf(3))
	assert.Equal(t, 2, root.IndexOfData(3))
	assert.Equal(t, -1, root.IndexOfData(4), "only direct children are searched")

	assert.False(t, root.RemoveLeaf(3))
	assert.True(t, root.RemoveLeaf(1))
	assert.Equal(t, []int{2, 3}, root.Values())

	assert.True(t, root.ContainsChild(build(3, 4)))
	assert.True(t, root.RemoveChild(build(3, 4)))
	assert.Equal(t, []int{2}, root.Values())
}

func TestTree_Walk(t *testing.T) {
	t.Parallel()

	root := build(0, 1, 3)
	first, err := root.ChildAt(0)
	require.NoError(t, err)
	first.AppendValue(2)

	var visited []int
	var depths []int
	root.Walk(func(depth int, n *Tree[int]) bool {
		visited = append(visited, n.Data)
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []int{0, 1, 2, 3}, visited)
	assert.Equal(t, []int{0, 1, 2, 1}, depths)

	visited = nil
	root.Walk(func(_ int, n *Tree[int]) bool {
		visited = append(visited, n.Data)
		return n.Data != 1
	})
	assert.Equal(t, []int{0, 1}, visited)
}

func TestTree_Children(t *testing.T) {
	t.Parallel()

	root := build(0, 4, 5)
	var got []int
	for i, c := range root.Children() {
		got = append(got, i, c.Data)
	}
	assert.Equal(t, []int{0, 4, 1, 5}, got)
}

func TestTree_JSONRoundTripRelinksParents(t *testing.T) {
	t.Parallel()

	root := build(1, 2, 3)
	data, err := json.Marshal(root)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":1,"children":[{"data":2},{"data":3}]}`, string(data))

	var decoded Tree[int]
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, root.Equal(&decoded))

	child, err := decoded.ChildAt(1)
	require.NoError(t, err)
	assert.Same(t, &decoded, child.Parent())
}

func TestTree_YAMLRoundTrip(t *testing.T) {
	t.Parallel()

	root := New("skins")
	theme := root.AppendValue("theme")
	theme.AppendValue("clock.ini")

	data, err := yaml.Marshal(root)
	require.NoError(t, err)

	var decoded Tree[string]
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.True(t, root.Equal(&decoded))
	assert.Equal(t, root.Hash(), decoded.Hash())
}

// genTree draws a random tree of small integers.
func genTree(depth int) *rapid.Generator[*Tree[int]] {
	return rapid.Custom(func(r *rapid.T) *Tree[int] {
		n := New(rapid.IntRange(0, 3).Draw(r, "data"))
		if depth == 0 {
			return n
		}
		count := rapid.IntRange(0, 3).Draw(r, "count")
		for range count {
			_ = n.AppendChild(genTree(depth-1).Draw(r, "child"))
		}
		return n
	})
}

func TestTree_EqualityProperties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(r *rapid.T) {
		a := genTree(3).Draw(r, "a")
		b := genTree(3).Draw(r, "b")
		clone := a.Clone()

		if !a.Equal(a) {
			r.Fatal("equality must be reflexive")
		}
		if !a.Equal(clone) || !clone.Equal(a) {
			r.Fatal("a tree must equal its clone")
		}
		if a.Hash() != clone.Hash() {
			r.Fatal("equal trees must hash equal")
		}
		if a.Equal(b) != b.Equal(a) {
			r.Fatal("equality must be symmetric")
		}
		if a.Equal(b) && a.Hash() != b.Hash() {
			r.Fatal("equal trees must hash equal")
		}
	})
}
