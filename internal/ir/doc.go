// Package ir provides the canonical value model for feature probe state.
//
// All other internal packages may import ir; ir imports nothing internal.
//
// Constraints:
//   - No float type. Floating-point state is carried as hex bit patterns
//     ("0x7ff8000000000000") so NaN payloads and signed zeros survive
//     serialization exactly.
//   - No null.
//   - JSON tags use snake_case.
//   - Ordering uses logical sequence numbers, never wall-clock time.
package ir
