package probe

import (
	"math"

	"github.com/roach88/featureprobe/internal/numeric"
)

// combineOffset is added before and after the widened sum in Combine.
const combineOffset = 5

// FeatureProbe owns the fixed probe state.
type FeatureProbe struct {
	scalars ScalarBundle
	values  [5]int32
	matrix  Matrix2D
	cube    Matrix3D
	lengths LengthQuery
	divisor int32
}

// New constructs the probe. Construction cannot fail.
func New() *FeatureProbe {
	// Evaluated left to right in 32 bits, then widened.
	product := numeric.WrapMul32(numeric.WrapMul32(numeric.WrapMul32(65536, 65536), 655356), 21)

	return &FeatureProbe{
		scalars: ScalarBundle{
			LongValue:       numeric.Widen64(product),
			LongValueStatic: numeric.WrapMul64(218372183, 1238),
			Scale:           2.5,
			Enabled:         true,
			Greeting:        "Hello world!",
		},
		values: [5]int32{1, 2, 3, 4, 5},
		matrix: Matrix2D{
			{123.456, -654.321, 987654321.123456789},
			{math.MaxFloat64, math.SmallestNonzeroFloat64, MinNormalFloat64},
			{CanonicalNaN, math.Inf(1), math.Inf(-1)},
		},
		cube: Matrix3D{
			{{1, 2}, {3, 4}},
			{{5, 6}, {7, 8}},
		},
		// The only LengthQuery; callers never see its concrete type.
		lengths: lengthFunc(func(values []int32) int32 {
			return int32(len(values))
		}),
	}
}

// lengthFunc adapts a function to LengthQuery.
type lengthFunc func(values []int32) int32

func (f lengthFunc) Length(values []int32) int32 {
	return f(values)
}

// Scalars returns a copy of the scalar fields.
func (p *FeatureProbe) Scalars() ScalarBundle {
	return p.scalars
}

// Values returns a copy of the one-dimensional fixture array.
func (p *FeatureProbe) Values() []int32 {
	return append([]int32(nil), p.values[:]...)
}

// Matrix2D returns a copy of the float matrix.
func (p *FeatureProbe) Matrix2D() Matrix2D {
	return p.matrix
}

// Matrix3D returns a copy of the integer block.
func (p *FeatureProbe) Matrix3D() Matrix3D {
	return p.cube
}

// Flatten3D returns Matrix3D in row-major order: 1..8.
func (p *FeatureProbe) Flatten3D() []int32 {
	return p.cube.Flatten()
}

// Combine returns 5 + widen64(a) + truncate64(b) + 5 with 64-bit
// two's-complement wraparound.
func (p *FeatureProbe) Combine(a int32, b float32) int64 {
	result := int64(combineOffset)
	result = numeric.WrapAdd64(result, numeric.Widen64(a))
	result = numeric.WrapAdd64(result, numeric.Truncate64(b))
	return numeric.WrapAdd64(result, combineOffset)
}

// QueryLength dispatches to the registered LengthQuery.
func (p *FeatureProbe) QueryLength(values []int32) int32 {
	return p.lengths.Length(values)
}

// LengthQuery returns the registered implementation.
func (p *FeatureProbe) LengthQuery() LengthQuery {
	return p.lengths
}

// DiagnosticDivide divides the last fixture value by a zero divisor. The
// resulting ErrDivisionByZero is discarded and never leaves this method.
// It reports whether a failure was suppressed.
func (p *FeatureProbe) DiagnosticDivide() (suppressed bool) {
	if _, err := numeric.Div32(p.values[len(p.values)-1], p.divisor); err != nil {
		return numeric.IsDivisionByZero(err)
	}
	return false
}
