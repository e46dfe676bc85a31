// Package trace provides structured observation of Maybe pipelines via
// go.uber.org/zap.
//
// Observe logs the present/absent/pending state of a Maybe between two
// stages; OnPresent and OnAbsent adapt an Observer to the side-effect
// hooks of solo and chain. All output goes to the wrapped logger, never
// to stdout.
package trace
