// Package probe implements the feature probe: a fixed set of values covering
// the primitive numeric types, fixed-size arrays of one, two and three
// dimensions, floating-point edge values, and single-implementation
// interface dispatch.
//
// A FeatureProbe is built once by New and is read-only afterwards. Accessors
// return copies. All operations are synchronous and complete in constant
// time. A FeatureProbe is not safe for concurrent mutation, but it never
// mutates after construction, so concurrent reads are fine.
//
// # Operations
//
//   - Combine: widen, truncate and add with two's-complement wraparound
//   - QueryLength: dispatch through the registered LengthQuery
//   - DiagnosticDivide: a guarded division whose failure is discarded
//   - Run: the demo harness that prints fixed diagnostic text
package probe
