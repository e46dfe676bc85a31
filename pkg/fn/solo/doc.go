// Package solo contains single-value, synchronous primitives that operate
// on Maybe[T]. These functions form the core building blocks for
// absence-aware pipelines: once a step goes absent, every later step is
// skipped without panics or sentinel values.
//
// Highlights:
// - Succeed/Absent: construct Maybe[T]
// - Filter/AndFilter: apply a predicate producing absence on rejection
// - Bind: move from Maybe[In] to Maybe[Out]
// - Map/DoubleMap: transform present values (with optional absence handler)
// - Try: call a function (Out, error) and convert error to absence
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via presence/absence handlers
package solo
