// Package curry provides currying and partial application helpers for
// plain Go functions.
//
// Currying rewrites an n-argument function as a chain of single-argument
// functions, which makes partially applied functions ordinary values:
//
//	add := curry.Curry2(func(x, y int) int { return x + y })
//	addFive := add(5)  // func(int) int bound to x = 5
//	addFive(3)         // 8
//
// Key operations:
// - Curry2/Curry3/Curry4: curry functions of two to four arguments
// - Uncurry2/Uncurry3: invert currying
// - Partial2/Partial3: bind the first argument without full currying
// - Flip: swap the argument order of a curried function
// - Comp/Iden/Const: basic composition helpers
package curry
