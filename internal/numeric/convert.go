package numeric

import (
	"math"
)

// twoPow63 is the 64-bit integer range limit as an exact float64.
const twoPow63 = 0x1p63

// Widen64 converts a 32-bit integer to 64 bits preserving its value.
func Widen64(a int32) int64 {
	return int64(a)
}

// Truncate64 narrows a 32-bit float to a 64-bit integer.
// The float32 -> float64 step is exact, so the rule is applied at 64 bits.
func Truncate64(b float32) int64 {
	return Truncate64From64(float64(b))
}

// Truncate64From64 narrows a 64-bit float to a 64-bit integer:
// NaN -> 0, >= 2^63 -> MaxInt64, <= -2^63 -> MinInt64, else toward zero.
func Truncate64From64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= twoPow63:
		return math.MaxInt64
	case f <= -twoPow63:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// WrapAdd64 adds two 64-bit integers modulo 2^64, computed on the unsigned
// bit patterns.
func WrapAdd64(a, b int64) int64 {
	return int64(uint64(a) + uint64(b))
}

// WrapMul32 multiplies two 32-bit integers modulo 2^32.
func WrapMul32(a, b int32) int32 {
	return int32(uint32(a) * uint32(b))
}

// WrapMul64 multiplies two 64-bit integers modulo 2^64.
func WrapMul64(a, b int64) int64 {
	return int64(uint64(a) * uint64(b))
}
