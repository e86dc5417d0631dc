// Package numeric provides the fixed-width conversion and arithmetic rules
// shared by the feature probe.
//
// Go leaves out-of-range float-to-integer conversions implementation-defined,
// so every narrowing here is explicit:
//   - NaN narrows to 0
//   - values at or beyond the integer range clamp to the type's min/max
//   - everything else truncates toward zero
//
// Integer arithmetic is two's-complement with wraparound. Nothing saturates
// and nothing is checked, except division, which reports ErrDivisionByZero
// instead of panicking.
package numeric
