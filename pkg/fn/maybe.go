package fn

import (
	"time"

	"github.com/google/uuid"
)

// Maybe is a tagged optional value: either Just (holding a value of T)
// or Nothing. The zero Maybe is neither and reports IsEmpty.
type Maybe[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	hasValue  bool
	resolved  bool
}

func Just[T any](v T) Maybe[T] {
	return Maybe[T]{
		value:     v,
		hasValue:  true,
		resolved:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{
		hasValue:  false,
		resolved:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// NothingFrom propagates absence across a type-changing bind, keeping the
// id and creation time of the Maybe that first went absent.
func NothingFrom[In, Out any](from Maybe[In]) Maybe[Out] {
	return Maybe[Out]{
		hasValue:  false,
		resolved:  from.resolved,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (m Maybe[T]) Value() T {
	return m.value
}

func (m Maybe[T]) HasValue() bool {
	return m.hasValue
}

func (m Maybe[T]) IsNothing() bool {
	return m.resolved && !m.hasValue
}

// IsEmpty reports a zero Maybe: not yet resolved to Just or Nothing.
func (m Maybe[T]) IsEmpty() bool {
	return !m.resolved
}

// OrElse returns the held value, or def when absent.
func (m Maybe[T]) OrElse(def T) T {
	if m.hasValue {
		return m.value
	}
	return def
}

func (m Maybe[T]) CreatedAt() time.Time {
	return m.createdAt
}

func (m Maybe[T]) Id() uuid.UUID {
	return m.id
}
