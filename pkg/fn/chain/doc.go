// Package chain provides a fluent wrapper around Maybe[T]
// for building synchronous optional-value chains using solo primitives.
//
// It composes functions like Bind, Map, Try, Tee, and Finally behind a
// convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with the absent branch at each step.
//
// Key operations:
// - Start/FromValue/FromPtr: begin a chain from a Maybe[T], value or pointer
// - Then: bind to a new Maybe[U] via a function
// - ThenTry: call a function (U, error) and convert error to absence
// - Map: transform the present value (T -> U)
// - Filter: go absent when a predicate rejects the value
// - Ensure: run side effects on presence without changing the result
// - Or/OrElse: recover from absence with an alternative chain or default
// - Finally: collapse the chain into a final value via handlers
package chain
