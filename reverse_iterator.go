// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radix

// ReverseIterator is used to iterate over a set of nodes
// in reverse in-order
type ReverseIterator[T any] struct {
	i *Iterator[T]

	// expandedParents stores the set of parent nodes whose relevant children have
	// already been pushed into the stack.
	//
	// Unlike forward iteration we need to recurse into children before we can
	// output the value stored in an internal node since all children are greater.
	// We use this to track whether we have already ensured all the children are
	// in the stack.
	expandedParents map[*Node[T]]struct{}
}

// SeekPrefix is used to seek the iterator to a given prefix
func (ri *ReverseIterator[T]) SeekPrefix(prefix []byte) {
	ri.i.SeekPrefix(prefix)
	ri.expandedParents = nil
}

// Previous returns the previous node in reverse order
func (ri *ReverseIterator[T]) Previous() ([]byte, T, bool) {
	var zero T
	ri.i.seed()
	if ri.expandedParents == nil {
		ri.expandedParents = make(map[*Node[T]]struct{})
	}

	for len(ri.i.stack) > 0 {
		last := ri.i.stack[len(ri.i.stack)-1]

		_, expanded := ri.expandedParents[last.n]
		if expanded || last.n.isLeaf() {
			ri.i.stack = ri.i.stack[:len(ri.i.stack)-1]
			delete(ri.expandedParents, last.n)
			if last.n.hasValue() {
				return last.path, last.n.leaf.getValue(), true
			}
			continue
		}

		// Children in ascending order so the largest is popped first
		ri.expandedParents[last.n] = struct{}{}
		for _, ch := range last.n.getChildren() {
			ri.i.stack = append(ri.i.stack, stackEntry[T]{n: ch, path: appendPath(last.path, ch.getLabel())})
		}
	}
	return nil, zero, false
}
