// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package suggest serves search suggestions from a radix tree that can be
// shared between goroutines. Writers take an exclusive lock, readers a
// shared one, and prefix results are kept in an LRU cache that every
// write purges.
package suggest

import (
	"fmt"
	"io"
	"slices"
	"sync"

	"fortio.org/log"
	radix "github.com/absolutelightning/go-radix-trie"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of prefixes whose suggestions are cached
// when Config.CacheSize is not set by the caller.
const DefaultCacheSize = 1024

// Config controls an Index.
type Config struct {
	// CacheSize is the number of prefixes kept in the result cache, 0 or
	// less disables caching.
	CacheSize int
	// MaxResults caps the number of suggestions returned, 0 or less means
	// no limit.
	MaxResults int
}

// DefaultConfig returns the configuration used by NewDefault.
func DefaultConfig() Config {
	return Config{CacheSize: DefaultCacheSize}
}

// Index is a radix tree guarded by a read/write lock with a cache of
// Suggest results.
type Index[T any] struct {
	mu    sync.RWMutex
	tree  *radix.Tree[string, T]
	cache *lru.Cache[string, []string]
	max   int
}

// New returns an empty Index.
func New[T any](cfg Config) (*Index[T], error) {
	idx := &Index[T]{
		tree: radix.New[string, T](),
		max:  cfg.MaxResults,
	}
	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, []string](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating suggestion cache of size %d: %w", cfg.CacheSize, err)
		}
		idx.cache = cache
	}
	return idx, nil
}

// NewDefault returns an empty Index using DefaultConfig.
func NewDefault[T any]() *Index[T] {
	idx, err := New[T](DefaultConfig())
	if err != nil {
		// DefaultCacheSize is positive so the cache can't fail to build.
		panic(err)
	}
	return idx
}

// Insert adds or replaces key, returning the previous value if any.
func (idx *Index[T]) Insert(key string, value T) (T, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	old, updated := idx.tree.Insert(key, value)
	if !updated {
		// Only a new key can change suggestion lists.
		idx.purge("insert")
	}
	return old, updated
}

// Delete removes key, returning its value if it was present.
func (idx *Index[T]) Delete(key string) (T, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	old, ok := idx.tree.Delete(key)
	if ok {
		idx.purge("delete")
	}
	return old, ok
}

// DeletePrefix removes every key starting with prefix.
func (idx *Index[T]) DeletePrefix(prefix string) int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	n := idx.tree.DeletePrefix(prefix)
	if n > 0 {
		idx.purge("delete prefix")
	}
	return n
}

// Get returns the value stored for key.
func (idx *Index[T]) Get(key string) (T, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.Get(key)
}

// LongestPrefix returns the longest stored key that prefixes query.
func (idx *Index[T]) LongestPrefix(query string) (string, T, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.LongestPrefix(query)
}

// Len returns the number of stored keys.
func (idx *Index[T]) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.Len()
}

// Labels returns a copy of every edge label currently in the tree.
func (idx *Index[T]) Labels() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	var out []string
	for l := range idx.tree.Labels() {
		out = append(out, string(l))
	}
	return out
}

// Dump writes the tree structure to w.
func (idx *Index[T]) Dump(w io.Writer) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	idx.tree.Dump(w)
}

// Suggest returns the stored keys starting with prefix in byte order,
// capped at Config.MaxResults. It returns false when nothing matches.
func (idx *Index[T]) Suggest(prefix string) ([]string, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	if idx.cache != nil {
		if keys, ok := idx.cache.Get(prefix); ok {
			log.Debugf("suggest cache hit for %q: %d keys", prefix, len(keys))
			return slices.Clone(keys), true
		}
	}
	keys, ok := idx.tree.AllKeys(prefix)
	if !ok {
		log.Debugf("no suggestions for %q", prefix)
		return nil, false
	}
	if idx.max > 0 && len(keys) > idx.max {
		keys = keys[:idx.max]
	}
	if idx.cache != nil {
		log.Debugf("suggest cache miss for %q: caching %d keys", prefix, len(keys))
		idx.cache.Add(prefix, keys)
		return slices.Clone(keys), true
	}
	return keys, true
}

// purge must be called with the write lock held.
func (idx *Index[T]) purge(reason string) {
	if idx.cache == nil || idx.cache.Len() == 0 {
		return
	}
	log.LogVf("purging %d cached suggestion lists after %s", idx.cache.Len(), reason)
	idx.cache.Purge()
}
