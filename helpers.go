// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package radix

// longestCommonPrefix returns the length of the longest shared prefix of
// a and b.
func longestCommonPrefix(a, b []byte) int {
	maxCmp := min(len(a), len(b))
	var idx int
	for idx = 0; idx < maxCmp; idx++ {
		if a[idx] != b[idx] {
			return idx
		}
	}
	return idx
}

// splitLabel cuts label at the given length. Both halves are fresh copies
// so either side can later be extended without touching the other.
func splitLabel(label []byte, at int) ([]byte, []byte) {
	prefix := make([]byte, at)
	copy(prefix, label[:at])
	suffix := make([]byte, len(label)-at)
	copy(suffix, label[at:])
	return prefix, suffix
}

// concatLabels returns a new slice holding a followed by b.
func concatLabels(a, b []byte) []byte {
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// getTreeKey copies a caller supplied key so the tree never aliases the
// caller's buffer.
func getTreeKey(key []byte) []byte {
	out := make([]byte, len(key))
	copy(out, key)
	return out
}

// hasPrefix reports whether key starts with prefix.
func hasPrefix(key []byte, prefix []byte) bool {
	if len(prefix) > len(key) {
		return false
	}
	return longestCommonPrefix(key, prefix) == len(prefix)
}

// appendPath extends path by label without sharing path's backing array
// with other branches of a traversal.
func appendPath(path, label []byte) []byte {
	return concatLabels(path, label)
}

// minimum returns the full key and node of the smallest key under n,
// where path is the key prefix leading to n (including n's label).
func minimum[T any](n *Node[T], path []byte) ([]byte, *Node[T]) {
	for n != nil {
		if n.hasValue() {
			return path, n
		}
		if n.isLeaf() {
			return nil, nil
		}
		n = n.getChild(0)
		path = appendPath(path, n.getLabel())
	}
	return nil, nil
}

// maximum returns the full key and node of the largest key under n.
func maximum[T any](n *Node[T], path []byte) ([]byte, *Node[T]) {
	for n != nil {
		if n.isLeaf() {
			if n.hasValue() {
				return path, n
			}
			return nil, nil
		}
		n = n.getChild(n.getNumChildren() - 1)
		path = appendPath(path, n.getLabel())
	}
	return nil, nil
}
