// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radix

// Iterator is used to iterate over the keys stored under a node in byte
// order. Keys are reported relative to the node the iterator was created
// from; for the root that is the full key.
type Iterator[T any] struct {
	node  *Node[T]
	stack []stackEntry[T]

	// seeded is set once the stack has been initialized, either lazily by
	// Next or by one of the Seek methods.
	seeded bool

	lowerBound    []byte
	hasLowerBound bool
}

// stackEntry pairs a node with the full key leading to it.
type stackEntry[T any] struct {
	n    *Node[T]
	path []byte
}

func (i *Iterator[T]) seed() {
	if i.seeded {
		return
	}
	i.seeded = true
	if i.node != nil {
		i.stack = []stackEntry[T]{{n: i.node}}
	}
}

// SeekPrefix is used to seek the iterator to a given prefix. The prefix
// may end in the middle of an edge label.
func (i *Iterator[T]) SeekPrefix(prefix []byte) {
	i.seeded = true
	i.stack = nil
	if i.node == nil {
		return
	}
	n, path := seekPrefix(i.node, prefix)
	if n != nil {
		i.stack = []stackEntry[T]{{n: n, path: path}}
	}
}

// Next returns the next key and value in byte order, or false once the
// iteration is done.
func (i *Iterator[T]) Next() ([]byte, T, bool) {
	var zero T
	i.seed()

	for len(i.stack) > 0 {
		last := i.stack[len(i.stack)-1]
		i.stack = i.stack[:len(i.stack)-1]

		if i.hasLowerBound && i.belowBound(last.path) {
			continue
		}

		// Push the edges in reverse so the smallest is popped first
		children := last.n.getChildren()
		for itr := len(children) - 1; itr >= 0; itr-- {
			ch := children[itr]
			i.stack = append(i.stack, stackEntry[T]{n: ch, path: appendPath(last.path, ch.getLabel())})
		}

		if last.n.hasValue() && i.aboveBound(last.path) {
			return last.path, last.n.leaf.getValue(), true
		}
	}
	return nil, zero, false
}

// seekPrefix descends from n along prefix and returns the node at which
// prefix is used up together with that node's full key. When prefix ends
// inside an edge label the node below that edge is returned. It returns
// nil when no key starts with prefix.
func seekPrefix[T any](n *Node[T], prefix []byte) (*Node[T], []byte) {
	search := prefix
	var path []byte
	for len(search) > 0 {
		child, _ := n.findChild(search[0])
		if child == nil {
			return nil, nil
		}
		label := child.getLabel()
		if hasPrefix(search, label) {
			search = search[len(label):]
			path = appendPath(path, label)
			n = child
			continue
		}
		if hasPrefix(label, search) {
			return child, appendPath(path, label)
		}
		return nil, nil
	}
	return n, path
}
