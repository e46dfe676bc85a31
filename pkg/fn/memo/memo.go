package memo

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Func1 wraps a pure single-argument function with a bounded LRU table.
// Each distinct key is computed at most once while it stays resident.
// maxTableSize must be greater than 0.
func Func1[K comparable, V any](pureFn func(K) V, maxTableSize int) func(K) V {
	table := newTable[K, V](maxTableSize)
	return func(k K) V {
		v, ok := table.Get(k)
		if !ok {
			v = pureFn(k)
			table.Add(k, v)
		}
		return v
	}
}

// Stringer1 memoizes a function keyed by a fmt.Stringer argument. The key
// is reduced to a 64-bit xxhash of its string form, so arbitrarily large
// keys stay cheap to store and compare.
func Stringer1[K fmt.Stringer, V any](pureFn func(K) V, maxTableSize int) func(K) V {
	table := newTable[uint64, V](maxTableSize)
	return func(k K) V {
		sum := xxhash.Sum64String(k.String())
		v, ok := table.Get(sum)
		if !ok {
			v = pureFn(k)
			table.Add(sum, v)
		}
		return v
	}
}

// Recursive builds a memoized fixpoint of f. The self argument handed to f
// is the memoized function itself, so the whole recursive tree shares one
// table and each distinct key is computed at most once per returned
// function. The table is unbounded and lives as long as the returned
// function does.
func Recursive[K comparable, V any](f func(self func(K) V, k K) V) func(K) V {
	table := make(map[K]V)

	var self func(K) V
	self = func(k K) V {
		if v, ok := table[k]; ok {
			return v
		}
		v := f(self, k)
		table[k] = v
		return v
	}
	return self
}

func newTable[K comparable, V any](maxTableSize int) *lru.Cache[K, V] {
	table, err := lru.New[K, V](maxTableSize)
	if err != nil {
		panic("maxTableSize should be greater than 0")
	}
	return table
}
