package chain

import (
	"context"

	"github.com/ib-77/fn3/pkg/fn"
	"github.com/ib-77/fn3/pkg/fn/solo"
)

// Chain wraps a fn.Maybe with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result fn.Maybe[T]
}

// Start creates a new chain from a fn.Maybe
func Start[T any](ctx context.Context, result fn.Maybe[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a present value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: fn.Just(value),
	}
}

// FromPtr creates a new chain from a nullable pointer
func FromPtr[T any](ctx context.Context, value *T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: fn.FromPtr(value),
	}
}

// Result returns the underlying fn.Maybe
func (c *Chain[T]) Result() fn.Maybe[T] {
	return c.result
}

// Then chains a function that returns fn.Maybe[U]
func Then[T, U any](c *Chain[T], onValue func(context.Context, T) fn.Maybe[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Bind[T, U](c.ctx, c.result, onValue),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnValue func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try[T, U](c.ctx, c.result, tryOnValue),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onValue func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map[T, U](c.ctx, c.result, onValue),
	}
}

// Filter turns the chain absent when the predicate rejects the value
func (c *Chain[T]) Filter(keep func(ctx context.Context, t T) bool) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.AndFilter(c.ctx, c.result, keep),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onValue func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.Tee[T](c.ctx, c.result,
			func(ctx context.Context, result fn.Maybe[T]) {
				if result.HasValue() {
					onValue(ctx, result.Value())
				}
			}),
	}
}

// Or keeps the receiver when it is present, otherwise the alternative.
// The first present chain wins.
func (c *Chain[T]) Or(alternative *Chain[T]) *Chain[T] {
	if c.result.HasValue() {
		return c
	}
	return alternative
}

// OrElse collapses the chain into the held value or the given default
func (c *Chain[T]) OrElse(def T) T {
	return c.result.OrElse(def)
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onValue func(context.Context, T) U, onAbsent func(context.Context) U) U {
	return solo.Finally[T, U](c.ctx, c.result, onValue, onAbsent)
}
