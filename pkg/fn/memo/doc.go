// Package memo caches results of pure functions.
//
// Func1 and Stringer1 wrap a function with a bounded LRU table; Recursive
// builds a memoized fixpoint where the whole recursive call tree shares a
// single table. The sharing matters: a cache created fresh inside each
// recursive call never holds an entry at lookup time and leaves the
// recursion exponential, so the table here is created once per memoizer
// and threaded through every self-call.
//
// Key operations:
// - Func1: memoize func(K) V over an LRU table with comparable keys
// - Stringer1: memoize with fmt.Stringer keys reduced by xxhash
// - Recursive: memoized fixpoint for self-recursive definitions
package memo
