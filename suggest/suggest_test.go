// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package suggest

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"fortio.org/sets"
	"github.com/stretchr/testify/require"
)

var searchTerms = []string{
	"mobile",
	"mandala",
	"mousy brown hair dye",
	"moneypot",
	"mexican sombrero",
	"muscle cars",
	"mouthguard",
	"monitor",
	"mousepad",
	"muave eraser",
}

func newTestIndex(t *testing.T, cfg Config) *Index[int] {
	t.Helper()
	idx, err := New[int](cfg)
	require.NoError(t, err)
	for i, k := range searchTerms {
		_, updated := idx.Insert(k, i)
		require.False(t, updated)
	}
	return idx
}

func TestSuggest(t *testing.T) {
	idx := newTestIndex(t, DefaultConfig())
	require.Equal(t, len(searchTerms), idx.Len())

	cases := []struct {
		prefix string
		want   []string
	}{
		{"mous", []string{"mousepad", "mousy brown hair dye"}},
		{"mouse", []string{"mousepad"}},
		{"me", []string{"mexican sombrero"}},
		{"mon", []string{"moneypot", "monitor"}},
		{"x", nil},
	}
	// Twice: the second round is served from the cache
	for range 2 {
		for _, tc := range cases {
			got, ok := idx.Suggest(tc.prefix)
			require.Equal(t, tc.want != nil, ok, tc.prefix)
			require.Equal(t, tc.want, got, tc.prefix)
		}
	}
	require.Equal(t, 4, idx.cache.Len())
}

func TestSuggestMaxResults(t *testing.T) {
	idx := newTestIndex(t, Config{CacheSize: 8, MaxResults: 3})
	got, ok := idx.Suggest("m")
	require.True(t, ok)
	require.Equal(t, []string{"mandala", "mexican sombrero", "mobile"}, got)

	got, ok = idx.Suggest("mous")
	require.True(t, ok)
	require.Equal(t, []string{"mousepad", "mousy brown hair dye"}, got)
}

func TestSuggestNoCache(t *testing.T) {
	idx := newTestIndex(t, Config{})
	require.Nil(t, idx.cache)

	got, ok := idx.Suggest("mou")
	require.True(t, ok)
	require.Equal(t, []string{"mousepad", "mousy brown hair dye", "mouthguard"}, got)

	idx.Insert("mouse", 42)
	got, ok = idx.Suggest("mous")
	require.True(t, ok)
	require.Equal(t, []string{"mouse", "mousepad", "mousy brown hair dye"}, got)
}

func TestSuggestCacheInvalidation(t *testing.T) {
	idx := newTestIndex(t, DefaultConfig())

	got, ok := idx.Suggest("mous")
	require.True(t, ok)
	require.Len(t, got, 2)
	require.Equal(t, 1, idx.cache.Len())

	// Replacing a value keeps the cached lists
	old, updated := idx.Insert("mousepad", 100)
	require.True(t, updated)
	require.Equal(t, 8, old)
	require.Equal(t, 1, idx.cache.Len())

	idx.Insert("mouse", 42)
	require.Equal(t, 0, idx.cache.Len())
	got, _ = idx.Suggest("mous")
	require.Equal(t, []string{"mouse", "mousepad", "mousy brown hair dye"}, got)

	_, ok = idx.Delete("mousepad")
	require.True(t, ok)
	got, _ = idx.Suggest("mous")
	require.Equal(t, []string{"mouse", "mousy brown hair dye"}, got)

	// Failed removals leave the cache alone
	_, ok = idx.Delete("mousepad")
	require.False(t, ok)
	require.Equal(t, 1, idx.cache.Len())

	require.Equal(t, 2, idx.DeletePrefix("mous"))
	require.Equal(t, 0, idx.cache.Len())
	_, ok = idx.Suggest("mous")
	require.False(t, ok)
	require.Zero(t, idx.DeletePrefix("mous"))
}

func TestSuggestReturnsCopies(t *testing.T) {
	idx := newTestIndex(t, DefaultConfig())
	got, ok := idx.Suggest("mon")
	require.True(t, ok)
	got[0] = "clobbered"

	got, ok = idx.Suggest("mon")
	require.True(t, ok)
	require.Equal(t, []string{"moneypot", "monitor"}, got)
}

func TestIndexQueries(t *testing.T) {
	idx := newTestIndex(t, DefaultConfig())

	v, ok := idx.Get("monitor")
	require.True(t, ok)
	require.Equal(t, 7, v)

	k, v, ok := idx.LongestPrefix("mousepads for sale")
	require.True(t, ok)
	require.Equal(t, "mousepad", k)
	require.Equal(t, 8, v)

	require.Equal(t, sets.New("andala", "ave eraser", "bile", "epad", "exican sombrero", "eypot",
		"itor", "m", "n", "o", "s", "scle cars", "thguard", "u", "y brown hair dye"),
		sets.FromSlice(idx.Labels()))

	var buf bytes.Buffer
	idx.Dump(&buf)
	require.Contains(t, buf.String(), `"scle cars" * 5`)
}

func TestNewDefault(t *testing.T) {
	idx := NewDefault[string]()
	require.NotNil(t, idx.cache)
	require.Zero(t, idx.Len())
	_, ok := idx.Suggest("")
	require.False(t, ok)
}

func TestConcurrentAccess(t *testing.T) {
	idx := newTestIndex(t, Config{CacheSize: 16})

	var wg sync.WaitGroup
	for w := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				key := fmt.Sprintf("mouse %d-%d", w, i)
				idx.Insert(key, i)
				if i%2 == 0 {
					idx.Delete(key)
				}
			}
		}()
	}
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				keys, ok := idx.Suggest("mous")
				if !ok || len(keys) < 2 {
					t.Errorf("lost suggestions: %v", keys)
					return
				}
			}
		}()
	}
	wg.Wait()

	require.Equal(t, len(searchTerms)+4*100, idx.Len())
	keys, ok := idx.Suggest("mouse ")
	require.True(t, ok)
	require.Len(t, keys, 4*100)
}
