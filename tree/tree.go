// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package tree

import (
	"fmt"
	"hash/maphash"
	"iter"
	"slices"
)

// seed is shared by every tree in the process so equal trees hash equal.
var seed = maphash.MakeSeed()

// Tree is a node holding a value and an ordered list of child nodes.
// The zero value is a leaf holding the zero value of T.
type Tree[T comparable] struct {
	// Data is the value held by this node.
	Data T

	parent   *Tree[T]
	children []*Tree[T]
}

// New creates a leaf node holding data.
func New[T comparable](data T) *Tree[T] {
	return &Tree[T]{Data: data}
}

// Parent returns the node this node is attached to, or nil for a root.
func (t *Tree[T]) Parent() *Tree[T] {
	return t.parent
}

// IsLeaf reports whether the node has no children.
func (t *Tree[T]) IsLeaf() bool {
	return len(t.children) == 0
}

// ChildCount returns the number of direct children.
func (t *Tree[T]) ChildCount() int {
	return len(t.children)
}

// Children iterates over the direct children in order.
// The tree must not be mutated during iteration.
func (t *Tree[T]) Children() iter.Seq2[int, *Tree[T]] {
	return slices.All(t.children)
}

// ChildAt returns the child at index i.
func (t *Tree[T]) ChildAt(i int) (*Tree[T], error) {
	if err := t.checkIndex(i, len(t.children)); err != nil {
		return nil, err
	}
	return t.children[i], nil
}

// SetChildAt replaces the child at index i with c. The replaced child is detached.
func (t *Tree[T]) SetChildAt(i int, c *Tree[T]) error {
	if err := t.checkIndex(i, len(t.children)); err != nil {
		return err
	}
	old := t.children[i]
	if old == c {
		return nil
	}
	if err := t.checkInsertable(c); err != nil {
		return err
	}
	old.parent = nil
	c.parent = t
	t.children[i] = c
	return nil
}

// InsertChildAt inserts c at index i. Valid indices are 0 through ChildCount.
func (t *Tree[T]) InsertChildAt(i int, c *Tree[T]) error {
	if err := t.checkIndex(i, len(t.children)+1); err != nil {
		return err
	}
	if err := t.checkInsertable(c); err != nil {
		return err
	}
	c.parent = t
	t.children = slices.Insert(t.children, i, c)
	return nil
}

// AppendChild appends c after the last child.
func (t *Tree[T]) AppendChild(c *Tree[T]) error {
	return t.InsertChildAt(len(t.children), c)
}

// AppendValue wraps v in a new leaf and appends it. It returns the new leaf.
func (t *Tree[T]) AppendValue(v T) *Tree[T] {
	leaf := New(v)
	leaf.parent = t
	t.children = append(t.children, leaf)
	return leaf
}

// InsertValueAt wraps v in a new leaf and inserts it at index i.
func (t *Tree[T]) InsertValueAt(i int, v T) (*Tree[T], error) {
	leaf := New(v)
	if err := t.InsertChildAt(i, leaf); err != nil {
		return nil, err
	}
	return leaf, nil
}

// RemoveChildAt removes and returns the child at index i. The child is detached.
func (t *Tree[T]) RemoveChildAt(i int) (*Tree[T], error) {
	if err := t.checkIndex(i, len(t.children)); err != nil {
		return nil, err
	}
	c := t.children[i]
	t.children = slices.Delete(t.children, i, i+1)
	c.parent = nil
	return c, nil
}

// Clear removes and detaches all children.
func (t *Tree[T]) Clear() {
	for _, c := range t.children {
		c.parent = nil
	}
	t.children = nil
}

// IndexOfChild returns the index of the first child structurally equal to c, or -1.
func (t *Tree[T]) IndexOfChild(c *Tree[T]) int {
	return slices.IndexFunc(t.children, func(n *Tree[T]) bool {
		return n.Equal(c)
	})
}

// ContainsChild reports whether any child is structurally equal to c.
func (t *Tree[T]) ContainsChild(c *Tree[T]) bool {
	return t.IndexOfChild(c) >= 0
}

// RemoveChild removes the first child structurally equal to c.
func (t *Tree[T]) RemoveChild(c *Tree[T]) bool {
	i := t.IndexOfChild(c)
	if i < 0 {
		return false
	}
	_, _ = t.RemoveChildAt(i)
	return true
}

// IndexOfLeaf returns the index of the first child that is a leaf holding v, or -1.
// Children holding v that have children of their own do not match.
func (t *Tree[T]) IndexOfLeaf(v T) int {
	return t.IndexOfChild(New(v))
}

// ContainsLeaf reports whether a direct child is a leaf holding v.
func (t *Tree[T]) ContainsLeaf(v T) bool {
	return t.IndexOfLeaf(v) >= 0
}

// RemoveLeaf removes the first direct child that is a leaf holding v.
func (t *Tree[T]) RemoveLeaf(v T) bool {
	return t.RemoveChild(New(v))
}

// IndexOfData returns the index of the first direct child whose Data equals v,
// regardless of its children, or -1.
func (t *Tree[T]) IndexOfData(v T) int {
	return slices.IndexFunc(t.children, func(n *Tree[T]) bool {
		return n.Data == v
	})
}

// Values returns the data of the direct children in order.
func (t *Tree[T]) Values() []T {
	out := make([]T, len(t.children))
	for i, c := range t.children {
		out[i] = c.Data
	}
	return out
}

// Clone returns a detached deep copy of the subtree rooted at t.
func (t *Tree[T]) Clone() *Tree[T] {
	out := New(t.Data)
	if len(t.children) > 0 {
		out.children = make([]*Tree[T], len(t.children))
		for i, c := range t.children {
			cc := c.Clone()
			cc.parent = out
			out.children[i] = cc
		}
	}
	return out
}

// Walk visits the tree in pre-order. Returning false from fn stops the walk.
func (t *Tree[T]) Walk(fn func(depth int, n *Tree[T]) bool) {
	t.walk(0, fn)
}

func (t *Tree[T]) walk(depth int, fn func(int, *Tree[T]) bool) bool {
	if !fn(depth, t) {
		return false
	}
	for _, c := range t.children {
		if !c.walk(depth+1, fn) {
			return false
		}
	}
	return true
}

// Equal reports whether t and other hold equal data and pairwise-equal
// children in the same order.
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t == other {
		return true
	}
	if t.Data != other.Data || len(t.children) != len(other.children) {
		return false
	}
	for i, c := range t.children {
		if !c.Equal(other.children[i]) {
			return false
		}
	}
	return true
}

// Hash combines the hash of Data with the hashes of the children in order.
func (t *Tree[T]) Hash() uint64 {
	if t == nil {
		return 0
	}
	h := maphash.Comparable(seed, t.Data)
	for _, c := range t.children {
		h = h*7 + c.Hash()
	}
	return h
}

// String renders the node value and child count, for debugging.
func (t *Tree[T]) String() string {
	return fmt.Sprintf("Tree(%v, %d children)", t.Data, len(t.children))
}

func (*Tree[T]) checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d (count %d)", ErrIndexOutOfRange, i, n)
	}
	return nil
}

// checkInsertable rejects nil nodes, attached nodes, and nodes that are t or an ancestor of t.
func (t *Tree[T]) checkInsertable(c *Tree[T]) error {
	if c == nil {
		return ErrNilNode
	}
	for n := t; n != nil; n = n.parent {
		if n == c {
			return ErrCycle
		}
	}
	if c.parent != nil {
		return ErrAttached
	}
	return nil
}
