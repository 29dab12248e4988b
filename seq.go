// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radix

import "iter"

// Labels yields every edge label in the tree, parents before children and
// siblings in byte order. The root's empty label is not reported. Yielded
// slices must not be modified.
func (t *Tree[K, T]) Labels() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		it := &rawIterator[T]{node: t.root}
		for it.Next(); it.Front() != nil; it.Next() {
			if it.Front() == t.root {
				continue
			}
			if !yield(it.Front().getLabel()) {
				return
			}
		}
	}
}

// Leaves yields the own edge label and value of every node holding a
// value. Labels are not full keys; use All for that.
func (t *Tree[K, T]) Leaves() iter.Seq2[[]byte, T] {
	return func(yield func([]byte, T) bool) {
		it := &rawIterator[T]{node: t.root}
		for it.Next(); it.Front() != nil; it.Next() {
			n := it.Front()
			if n.hasValue() && !yield(n.getLabel(), n.leaf.getValue()) {
				return
			}
		}
	}
}

// Values yields every stored value in key order.
func (t *Tree[K, T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range t.MutableValues() {
			if !yield(*v) {
				return
			}
		}
	}
}

// MutableValues yields a pointer to every stored value in key order.
// Writes through the pointers are seen by later lookups.
func (t *Tree[K, T]) MutableValues() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := &rawIterator[T]{node: t.root}
		for it.Next(); it.Front() != nil; it.Next() {
			n := it.Front()
			if n.hasValue() && !yield(n.leaf.valuePtr()) {
				return
			}
		}
	}
}

// All yields every full key and its value in byte order.
func (t *Tree[K, T]) All() iter.Seq2[K, T] {
	return func(yield func(K, T) bool) {
		t.Walk(func(k K, v T) bool {
			return !yield(k, v)
		})
	}
}

// Drain empties the tree and yields each value it held exactly once, in
// key order. The tree is empty as soon as Drain is called, even if the
// sequence is never ranged over.
func (t *Tree[K, T]) Drain() iter.Seq[T] {
	root := t.root
	t.Clear()
	return func(yield func(T) bool) {
		if root == nil {
			return
		}
		stack := []*Node[T]{root}
		root = nil
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			children := n.getChildren()
			for itr := len(children) - 1; itr >= 0; itr-- {
				stack = append(stack, children[itr])
			}
			leaf := n.getNodeLeaf()
			n.setNodeLeaf(nil)
			n.keys, n.children = nil, nil
			if leaf != nil && !yield(leaf.getValue()) {
				return
			}
		}
	}
}
