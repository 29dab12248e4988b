// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radix

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Key is the set of key types the tree accepts. Keys are always handled
// as their raw bytes; strings are never decoded as runes.
type Key interface {
	~string | ~[]byte
}

// Tree is a compressed radix trie. Every edge carries a label of one or
// more bytes and no node other than the root is a value-less node with a
// single child. A Tree must not be mutated concurrently; see the suggest
// package for a locked wrapper.
type Tree[K Key, T any] struct {
	root *Node[T]
	size uint64
}

// WalkFn is used when walking the tree. Takes a
// key and value, returning if iteration should
// be terminated.
type WalkFn[K Key, T any] func(k K, v T) bool

// New returns an empty Tree.
func New[K Key, T any]() *Tree[K, T] {
	return &Tree[K, T]{root: newNode[T](nil, nil)}
}

// Len is used to return the number of elements in the tree
func (t *Tree[K, T]) Len() int {
	return safecast.MustConvert[int](t.size)
}

// IsEmpty reports whether the root holds no value and has no children.
func (t *Tree[K, T]) IsEmpty() bool {
	return !t.root.hasValue() && t.root.isLeaf()
}

// Clear drops every key.
func (t *Tree[K, T]) Clear() {
	t.root = newNode[T](nil, nil)
	t.size = 0
}

// Clone returns a deep copy of the tree structure. Values are copied by
// assignment.
func (t *Tree[K, T]) Clone() *Tree[K, T] {
	return &Tree[K, T]{root: t.root.clone(), size: t.size}
}

// Root returns the root node of the tree which can be used for richer
// query operations.
func (t *Tree[K, T]) Root() *Node[T] {
	return t.root
}

// Get is used to lookup a specific key, returning
// the value and if it was found
func (t *Tree[K, T]) Get(key K) (T, bool) {
	var zero T
	n := t.root
	search := []byte(key)
	for {
		if len(search) == 0 {
			if n.hasValue() {
				return n.leaf.getValue(), true
			}
			return zero, false
		}
		child, _ := n.findChild(search[0])
		if child == nil || !hasPrefix(search, child.getLabel()) {
			return zero, false
		}
		search = search[len(child.getLabel()):]
		n = child
	}
}

// Search is an alias of Get.
func (t *Tree[K, T]) Search(key K) (T, bool) {
	return t.Get(key)
}

// LongestPrefix returns the longest stored key that is a prefix of query,
// along with its value.
func (t *Tree[K, T]) LongestPrefix(query K) (K, T, bool) {
	var (
		lastKey []byte
		lastVal T
		found   bool
	)
	it := t.root.PathIterator([]byte(query))
	for {
		k, v, ok := it.Next()
		if !ok {
			break
		}
		lastKey, lastVal, found = k, v, true
	}
	if !found {
		var zeroK K
		var zero T
		return zeroK, zero, false
	}
	return K(lastKey), lastVal, true
}

// AllKeys returns every stored key starting with prefix, in byte order.
// The prefix may end in the middle of an edge label. When no key matches,
// including on an empty tree, it returns nil and false; it never returns
// an empty non-nil result.
func (t *Tree[K, T]) AllKeys(prefix K) ([]K, bool) {
	it := t.root.Iterator()
	it.SeekPrefix([]byte(prefix))
	var out []K
	for {
		k, _, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, K(k))
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// Minimum returns the smallest key in the tree.
func (t *Tree[K, T]) Minimum() (K, T, bool) {
	return t.entry(minimum(t.root, nil))
}

// Maximum returns the largest key in the tree.
func (t *Tree[K, T]) Maximum() (K, T, bool) {
	return t.entry(maximum(t.root, nil))
}

func (t *Tree[K, T]) entry(key []byte, n *Node[T]) (K, T, bool) {
	if n == nil {
		var zeroK K
		var zero T
		return zeroK, zero, false
	}
	return K(key), n.leaf.getValue(), true
}

// Iterator returns an iterator over the full tree. Use SeekPrefix or
// SeekLowerBound before the first call to Next to narrow it.
func (t *Tree[K, T]) Iterator() *Iterator[T] {
	return t.root.Iterator()
}

// ReverseIterator returns an iterator walking keys in descending order.
func (t *Tree[K, T]) ReverseIterator() *ReverseIterator[T] {
	return t.root.ReverseIterator()
}

// PathIterator returns an iterator over every stored key that is a
// prefix of path, shortest first.
func (t *Tree[K, T]) PathIterator(path K) *PathIterator[T] {
	return t.root.PathIterator([]byte(path))
}

// Walk is used to walk the tree
func (t *Tree[K, T]) Walk(fn WalkFn[K, T]) {
	t.walkIterator(t.root.Iterator(), fn)
}

// WalkPrefix is used to walk the tree under a prefix
func (t *Tree[K, T]) WalkPrefix(prefix K, fn WalkFn[K, T]) {
	it := t.root.Iterator()
	it.SeekPrefix([]byte(prefix))
	t.walkIterator(it, fn)
}

// WalkPath is used to walk the tree, but only visiting nodes
// from the root down to a given leaf. Where WalkPrefix walks
// all the entries *under* the given prefix, this walks the
// entries *above* the given prefix.
func (t *Tree[K, T]) WalkPath(path K, fn WalkFn[K, T]) {
	it := t.root.PathIterator([]byte(path))
	for {
		k, v, ok := it.Next()
		if !ok || fn(K(k), v) {
			return
		}
	}
}

func (t *Tree[K, T]) walkIterator(it *Iterator[T], fn WalkFn[K, T]) {
	for {
		k, v, ok := it.Next()
		if !ok || fn(K(k), v) {
			return
		}
	}
}

// Dump writes an indented view of the tree structure to w, one node per
// line, values marked with '*'.
func (t *Tree[K, T]) Dump(w io.Writer) {
	it := &rawIterator[T]{node: t.root}
	for it.Next(); it.Front() != nil; it.Next() {
		n := it.Front()
		var sb strings.Builder
		sb.WriteString(strings.Repeat("  ", it.Depth()))
		sb.WriteString(strconv.Quote(string(n.getLabel())))
		if n.hasValue() {
			sb.WriteString(fmt.Sprintf(" * %v", n.leaf.getValue()))
		}
		fmt.Fprintln(w, sb.String())
	}
}
