package fn

import "time"

type ValueProvider[T any] interface {
	// Value returns the held value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithPresence defines an interface for types that may or may not hold a value
type WithPresence[T any] interface {
	ValueProvider[T]
	// HasValue returns true if a value is present
	HasValue() bool
	// IsNothing returns true if the value is absent
	IsNothing() bool
}

// WithDefault extends WithPresence with fallback support
type WithDefault[T any] interface {
	WithPresence[T]
	// OrElse returns the held value or the given default
	OrElse(def T) T
}
