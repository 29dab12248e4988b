// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radix

// NodeLeaf holds the value of a key that terminates at a node. A node
// without a NodeLeaf carries no value.
type NodeLeaf[T any] struct {
	value T
}

func newLeaf[T any](value T) *NodeLeaf[T] {
	return &NodeLeaf[T]{value: value}
}

func (l *NodeLeaf[T]) getValue() T {
	return l.value
}

func (l *NodeLeaf[T]) setValue(value T) T {
	old := l.value
	l.value = value
	return old
}

// valuePtr returns a pointer to the stored value so callers can update it
// in place.
func (l *NodeLeaf[T]) valuePtr() *T {
	return &l.value
}

func (l *NodeLeaf[T]) clone() *NodeLeaf[T] {
	if l == nil {
		return nil
	}
	return &NodeLeaf[T]{value: l.value}
}
