// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radix

// PathIterator is used to iterate over a set of nodes from the node
// down to a specified path. This will iterate over the same values that
// the Tree.WalkPath method will.
type PathIterator[T any] struct {
	path []byte
	node *Node[T]

	// current position and the bytes of path consumed to reach it
	n        *Node[T]
	consumed []byte
	search   []byte
	started  bool
	done     bool
}

// Next returns the next stored key that is a prefix of the path, shortest
// first.
func (i *PathIterator[T]) Next() ([]byte, T, bool) {
	var zero T

	if !i.started {
		i.started = true
		if i.node == nil {
			i.done = true
			return nil, zero, false
		}
		i.n = i.node
		i.search = i.path
		i.consumed = []byte{}
		if i.n.hasValue() {
			return i.consumed, i.n.leaf.getValue(), true
		}
	}

	for !i.done {
		if len(i.search) == 0 {
			i.done = true
			break
		}
		child, _ := i.n.findChild(i.search[0])
		if child == nil || !hasPrefix(i.search, child.getLabel()) {
			i.done = true
			break
		}
		label := child.getLabel()
		i.search = i.search[len(label):]
		i.consumed = appendPath(i.consumed, label)
		i.n = child
		if child.hasValue() {
			return i.consumed, child.leaf.getValue(), true
		}
	}
	return nil, zero, false
}
