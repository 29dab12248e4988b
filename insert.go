// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radix

import "iter"

// Insert is used to add or update a given key. The return provides
// the previous value and a bool indicating if any was set.
func (t *Tree[K, T]) Insert(key K, value T) (T, bool) {
	old, updated := recursiveInsert(t.root, []byte(key), value)
	if !updated {
		t.size++
	}
	return old, updated
}

// recursiveInsert places value at the node reached by consuming search
// from n. Each level consumes at least one byte of search.
func recursiveInsert[T any](n *Node[T], search []byte, value T) (T, bool) {
	var zero T

	// Key exhausted, n is the insertion point
	if len(search) == 0 {
		if n.hasValue() {
			return n.leaf.setValue(value), true
		}
		n.setNodeLeaf(newLeaf(value))
		return zero, false
	}

	child, idx := n.findChild(search[0])

	// No edge shares the first byte, add a new leaf
	if child == nil {
		n.addChild(newNode(getTreeKey(search), newLeaf(value)))
		return zero, false
	}

	label := child.getLabel()
	common := longestCommonPrefix(label, search)

	// Whole edge consumed, keep descending
	if common == len(label) {
		return recursiveInsert(child, search[common:], value)
	}

	// The edge diverges inside its label, split it
	prefix, suffix := splitLabel(label, common)
	split := newNode[T](prefix, nil)
	child.setLabel(suffix)
	split.addChild(child)
	n.setChild(idx, split)

	if common == len(search) {
		split.setNodeLeaf(newLeaf(value))
		return zero, false
	}
	split.addChild(newNode(getTreeKey(search[common:]), newLeaf(value)))
	return zero, false
}

// FromPairs builds a tree by inserting every pair in order. Later
// duplicates overwrite earlier ones.
func FromPairs[K Key, T any](pairs iter.Seq2[K, T]) *Tree[K, T] {
	t := New[K, T]()
	for k, v := range pairs {
		t.Insert(k, v)
	}
	return t
}

// FromMap builds a tree holding every entry of m.
func FromMap[K ~string, T any](m map[K]T) *Tree[K, T] {
	t := New[K, T]()
	for k, v := range m {
		t.Insert(k, v)
	}
	return t
}
