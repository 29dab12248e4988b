// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radix

import (
	"golang.org/x/exp/slices"
)

// Node is one vertex of the tree. label is the edge consumed from the
// parent to reach it, leaf is set when a key terminates here, and keys
// holds the first byte of every child label, sorted, with children at the
// same index.
type Node[T any] struct {
	label    []byte
	leaf     *NodeLeaf[T]
	keys     []byte
	children []*Node[T]
}

func newNode[T any](label []byte, leaf *NodeLeaf[T]) *Node[T] {
	return &Node[T]{label: label, leaf: leaf}
}

// Label returns the edge label leading to the node. The root has an empty
// label. The returned slice must not be modified.
func (n *Node[T]) Label() []byte {
	return n.label
}

// Value returns the value stored at the node, if any.
func (n *Node[T]) Value() (T, bool) {
	if n.leaf == nil {
		var zero T
		return zero, false
	}
	return n.leaf.getValue(), true
}

// NumChildren returns the number of outgoing edges.
func (n *Node[T]) NumChildren() int {
	return len(n.children)
}

func (n *Node[T]) getLabel() []byte {
	return n.label
}

func (n *Node[T]) setLabel(label []byte) {
	n.label = label
}

func (n *Node[T]) getNodeLeaf() *NodeLeaf[T] {
	return n.leaf
}

func (n *Node[T]) setNodeLeaf(l *NodeLeaf[T]) {
	n.leaf = l
}

func (n *Node[T]) hasValue() bool {
	return n.leaf != nil
}

func (n *Node[T]) isLeaf() bool {
	return len(n.children) == 0
}

func (n *Node[T]) getNumChildren() int {
	return len(n.children)
}

func (n *Node[T]) getChild(idx int) *Node[T] {
	return n.children[idx]
}

func (n *Node[T]) getChildren() []*Node[T] {
	return n.children
}

func (n *Node[T]) getKeys() []byte {
	return n.keys
}

// findChild returns the child whose label starts with c and its index, or
// nil and the index where such a child would be inserted.
func (n *Node[T]) findChild(c byte) (*Node[T], int) {
	idx, found := slices.BinarySearch(n.keys, c)
	if !found {
		return nil, idx
	}
	return n.children[idx], idx
}

// addChild links child under n keeping keys sorted. The child label must
// be non-empty and its first byte must not already be in use.
func (n *Node[T]) addChild(child *Node[T]) {
	c := child.label[0]
	idx, _ := slices.BinarySearch(n.keys, c)
	n.keys = slices.Insert(n.keys, idx, c)
	n.children = slices.Insert(n.children, idx, child)
}

// setChild replaces the child at idx. The replacement label must start
// with the same byte as the one it replaces.
func (n *Node[T]) setChild(idx int, child *Node[T]) {
	n.children[idx] = child
}

func (n *Node[T]) removeChild(idx int) {
	n.keys = slices.Delete(n.keys, idx, idx+1)
	n.children[idx] = nil
	n.children = slices.Delete(n.children, idx, idx+1)
	if len(n.children) == 0 {
		n.keys = nil
		n.children = nil
	}
}

// mergeChild folds the only child of a value-less node into it: the labels
// are concatenated and the node adopts the child's leaf and edges.
func (n *Node[T]) mergeChild() {
	child := n.children[0]
	n.label = concatLabels(n.label, child.label)
	n.leaf = child.leaf
	n.keys = child.keys
	n.children = child.children
}

// compressible reports whether the node has become a pass-through node or
// a dead leaf and must be merged or pruned by its parent.
func (n *Node[T]) compressible() bool {
	return n.leaf == nil && len(n.children) <= 1
}

func (n *Node[T]) clone() *Node[T] {
	nc := &Node[T]{
		label: slices.Clone(n.label),
		leaf:  n.leaf.clone(),
	}
	if len(n.children) > 0 {
		nc.keys = slices.Clone(n.keys)
		nc.children = make([]*Node[T], len(n.children))
		for i, ch := range n.children {
			nc.children[i] = ch.clone()
		}
	}
	return nc
}

// Iterator returns an Iterator rooted at this node.
func (n *Node[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{node: n}
}

// ReverseIterator returns a ReverseIterator rooted at this node.
func (n *Node[T]) ReverseIterator() *ReverseIterator[T] {
	return &ReverseIterator[T]{i: n.Iterator()}
}

// PathIterator returns an iterator over the value-bearing nodes found on
// the way from this node down to path.
func (n *Node[T]) PathIterator(path []byte) *PathIterator[T] {
	return &PathIterator[T]{node: n, path: path}
}
