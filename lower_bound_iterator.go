// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radix

import "bytes"

// SeekLowerBound is used to seek the iterator to the smallest key that is
// greater or equal to the given key. Subtrees that sort entirely below
// the bound are skipped without being visited.
func (i *Iterator[T]) SeekLowerBound(key []byte) {
	i.seed()
	i.lowerBound = getTreeKey(key)
	i.hasLowerBound = true
}

// belowBound reports whether every key under a node with the given path
// sorts before the lower bound. A path that is a prefix of the bound may
// still lead to larger keys.
func (i *Iterator[T]) belowBound(path []byte) bool {
	if hasPrefix(i.lowerBound, path) {
		return false
	}
	return bytes.Compare(path, i.lowerBound) < 0
}

func (i *Iterator[T]) aboveBound(path []byte) bool {
	if !i.hasLowerBound {
		return true
	}
	return bytes.Compare(path, i.lowerBound) >= 0
}
