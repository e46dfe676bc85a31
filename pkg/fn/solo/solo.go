package solo

import (
	"context"

	"github.com/ib-77/fn3/pkg/fn"
)

func Succeed[T any](input T) fn.Maybe[T] {
	return fn.Just(input)
}

func Absent[T any]() fn.Maybe[T] {
	return fn.Nothing[T]()
}

func Filter[T any](ctx context.Context, input T,
	keep func(ctx context.Context, in T) bool) fn.Maybe[T] {
	return AndFilter(ctx, Succeed(input), keep)
}

func AndFilter[T any](ctx context.Context, input fn.Maybe[T],
	keep func(ctx context.Context, in T) bool) fn.Maybe[T] {

	if input.HasValue() {

		if keep(ctx, input.Value()) {
			return input
		}
		return fn.Nothing[T]()
	}
	return input
}

func Bind[In any, Out any](ctx context.Context,
	input fn.Maybe[In],
	onValue func(ctx context.Context, r In) fn.Maybe[Out]) fn.Maybe[Out] {

	if input.HasValue() {
		return onValue(ctx, input.Value())
	} else {
		return fn.NothingFrom[In, Out](input)
	}
}

func Map[In any, Out any](ctx context.Context,
	input fn.Maybe[In],
	onValue func(ctx context.Context, r In) Out) fn.Maybe[Out] {

	if input.HasValue() {
		return fn.Just(onValue(ctx, input.Value()))
	} else {
		return fn.NothingFrom[In, Out](input)
	}
}

func Tee[T any](ctx context.Context,
	input fn.Maybe[T],
	onValue func(ctx context.Context, r fn.Maybe[T])) fn.Maybe[T] {

	if input.HasValue() {
		onValue(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input fn.Maybe[T],
	condition func(ctx context.Context, r fn.Maybe[T]) bool,
	onValueAndCondition func(ctx context.Context, r fn.Maybe[T])) fn.Maybe[T] {

	if input.HasValue() {
		if condition(ctx, input) {
			onValueAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input fn.Maybe[T],
	onValue func(ctx context.Context, r T),
	onAbsent func(ctx context.Context)) fn.Maybe[T] {

	if input.HasValue() {
		onValue(ctx, input.Value())
	} else {
		onAbsent(ctx)
	}

	return input
}

func DoubleMap[In any, Out any](ctx context.Context, input fn.Maybe[In],
	onValue func(ctx context.Context, r In) Out,
	onAbsent func(ctx context.Context) Out) fn.Maybe[Out] {

	if input.HasValue() {
		return fn.Just(onValue(ctx, input.Value()))
	}

	onAbsent(ctx)

	return fn.NothingFrom[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input fn.Maybe[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) fn.Maybe[Out] {

	if input.HasValue() {

		out, err := onTryExecute(ctx, input.Value())
		if err != nil {
			return fn.Nothing[Out]()
		}

		return fn.Just(out)
	}

	return fn.NothingFrom[In, Out](input)
}

func AbsentOnError[T any](ctx context.Context, input fn.Maybe[T],
	maybeErr func(ctx context.Context, in T) error) fn.Maybe[T] {
	if input.HasValue() {
		err := maybeErr(ctx, input.Value())
		if err != nil {
			return fn.Nothing[T]()
		} else {
			return input
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input fn.Maybe[In],
	onValue func(ctx context.Context, r In) Out,
	onAbsent func(ctx context.Context) Out) Out {

	if input.HasValue() {
		return onValue(ctx, input.Value())
	} else {
		return onAbsent(ctx)
	}
}
