// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package tree provides a generic ordered n-ary tree with structural equality
and hashing.

A [Tree] node holds a value and an ordered list of children. Each node owns
its children exclusively: a node can have at most one parent, and inserting a
node that would make a tree its own descendant is rejected with [ErrCycle].

# Equality

Two trees are equal when their values are equal and their ordered children are
pairwise equal, recursively. Order matters:

	a := tree.New(5)
	_ = a.AppendValue(1)
	_ = a.AppendValue(2)

	b := tree.New(5)
	_ = b.AppendValue(2)
	_ = b.AppendValue(1)

	a.Equal(b) // false

Equal trees always produce equal [Tree.Hash] values within a process.

# Value Lookups

[Tree.ContainsLeaf], [Tree.IndexOfLeaf] and [Tree.RemoveLeaf] match a direct
child that is a leaf holding the given value. A child with the same value but
with children of its own does not match. Use [Tree.IndexOfData] to match on the
value alone.

# Serialization

Trees marshal to JSON and YAML as {"data": ..., "children": [...]}.

# Concurrency

Trees are not safe for concurrent mutation.
*/
package tree
