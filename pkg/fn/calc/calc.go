// Package calc holds the arithmetic demonstrations built on top of the
// fn3 primitives: a curried adder, a memoized Fibonacci and an
// absence-propagating division chain.
package calc

import (
	"context"
	"fmt"

	"github.com/govalues/decimal"

	"github.com/ib-77/fn3/pkg/fn"
	"github.com/ib-77/fn3/pkg/fn/chain"
	"github.com/ib-77/fn3/pkg/fn/curry"
	"github.com/ib-77/fn3/pkg/fn/memo"
	"github.com/ib-77/fn3/pkg/fn/solo"
)

// MsgDivisionByZero is the message shown when a division chain goes absent.
const MsgDivisionByZero = "Error: Division by zero"

// Add is integer addition as a chain of single-argument functions:
// Add(5) is a reusable adder bound to 5, and Add(5)(3) == 8.
var Add = curry.Curry2(func(x, y int) int { return x + y })

var fib = memo.Recursive(func(self func(int) int, n int) int {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	return self(n-1) + self(n-2)
})

// Fibonacci returns the n-th Fibonacci number, F(0)=0, F(1)=1. The shared
// memo table turns the naive exponential recursion linear. Negative input
// clamps to 0.
func Fibonacci(n int) int {
	return fib(n)
}

// Divide returns Just(x / y) when y is nonzero, otherwise Nothing.
func Divide(x, y float64) fn.Maybe[float64] {
	if y == 0 {
		return fn.Nothing[float64]()
	}
	return fn.Just(x / y)
}

// DivideExact is Divide over exact decimals. It goes absent on a zero
// divisor and on decimal overflow.
func DivideExact(x, y decimal.Decimal) fn.Maybe[decimal.Decimal] {
	if y.IsZero() {
		return fn.Nothing[decimal.Decimal]()
	}

	q, err := x.Quo(y)
	if err != nil {
		return fn.Nothing[decimal.Decimal]()
	}
	return fn.Just(q)
}

// Calculate divides 10 by x, then 20 by that quotient. Either division by
// zero makes the whole chain absent; the second division never runs after
// the first goes absent.
func Calculate(ctx context.Context, x float64) fn.Maybe[float64] {
	first := chain.Then(chain.FromValue(ctx, x),
		func(_ context.Context, x float64) fn.Maybe[float64] {
			return Divide(10, x)
		})

	return chain.Then(first,
		func(_ context.Context, y float64) fn.Maybe[float64] {
			return Divide(20, y)
		}).Result()
}

// Describe renders a division outcome: "Result: <value>" when present,
// the fixed division-by-zero message when absent.
func Describe(ctx context.Context, m fn.Maybe[float64]) string {
	return solo.Finally(ctx, m,
		func(_ context.Context, v float64) string {
			return fmt.Sprintf("Result: %v", v)
		},
		func(_ context.Context) string {
			return MsgDivisionByZero
		})
}
