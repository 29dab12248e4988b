// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radix

import "fortio.org/safecast"

// Delete is used to delete a key, returning the previous
// value and if it was deleted
func (t *Tree[K, T]) Delete(key K) (T, bool) {
	old, ok := recursiveDelete(t.root, []byte(key))
	if ok {
		t.size--
	}
	return old, ok
}

// Remove is an alias of Delete.
func (t *Tree[K, T]) Remove(key K) (T, bool) {
	return t.Delete(key)
}

// recursiveDelete unmarks the node reached by search under n. On the way
// back up every frame re-checks the child it descended into, so pruning
// and merging cascade towards the root. n itself is left for its caller
// to check, which is how the root is never pruned or merged.
func recursiveDelete[T any](n *Node[T], search []byte) (T, bool) {
	var zero T

	if len(search) == 0 {
		if !n.hasValue() {
			return zero, false
		}
		old := n.leaf.getValue()
		n.setNodeLeaf(nil)
		return old, true
	}

	child, idx := n.findChild(search[0])
	if child == nil || !hasPrefix(search, child.getLabel()) {
		return zero, false
	}
	old, ok := recursiveDelete(child, search[len(child.getLabel()):])
	if !ok {
		return zero, false
	}
	compressChild(n, idx)
	return old, true
}

// compressChild restores the invariants of the child at idx: a value-less
// child without edges is pruned, one with a single edge is merged with its
// own child.
func compressChild[T any](n *Node[T], idx int) {
	child := n.getChild(idx)
	if !child.compressible() {
		return
	}
	if child.isLeaf() {
		n.removeChild(idx)
		return
	}
	child.mergeChild()
}

// DeletePrefix removes every key starting with prefix and returns how
// many keys were removed.
func (t *Tree[K, T]) DeletePrefix(prefix K) int {
	removed := recursiveDeletePrefix(t.root, []byte(prefix))
	t.size -= safecast.MustConvert[uint64](removed)
	return removed
}

func recursiveDeletePrefix[T any](n *Node[T], search []byte) int {
	if len(search) == 0 {
		removed := countValues(n)
		n.setNodeLeaf(nil)
		n.keys = nil
		n.children = nil
		return removed
	}

	child, idx := n.findChild(search[0])
	if child == nil {
		return 0
	}
	label := child.getLabel()

	// The prefix ends inside or at the end of this edge, drop the subtree
	if hasPrefix(label, search) {
		removed := countValues(child)
		n.removeChild(idx)
		return removed
	}
	if !hasPrefix(search, label) {
		return 0
	}
	removed := recursiveDeletePrefix(child, search[len(label):])
	if removed > 0 {
		compressChild(n, idx)
	}
	return removed
}

func countValues[T any](n *Node[T]) int {
	count := 0
	if n.hasValue() {
		count++
	}
	for _, ch := range n.getChildren() {
		count += countValues(ch)
	}
	return count
}
