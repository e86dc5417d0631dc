package probe

import (
	"math"
)

// CanonicalNaN is the quiet NaN with an empty payload.
// math.NaN() sets the low payload bit, so it is not used for fixture state.
var CanonicalNaN = math.Float64frombits(0x7ff8000000000000)

// MinNormalFloat64 is the smallest positive normal float64 (2^-1022).
const MinNormalFloat64 = 0x1p-1022

// ScalarBundle holds the named scalar fields of the probe.
type ScalarBundle struct {
	// LongValue is 65536*65536*655356*21 evaluated in 32-bit arithmetic
	// and widened afterwards. The first product is 2^32, so it wraps to 0.
	LongValue int64

	// LongValueStatic is 218372183*1238 evaluated in 64-bit arithmetic.
	LongValueStatic int64

	Scale    float32
	Enabled  bool
	Greeting string
}

// Matrix2D is a rectangular 3x3 matrix of 64-bit floats.
type Matrix2D [3][3]float64

// Rows returns the matrix as freshly allocated row slices.
func (m Matrix2D) Rows() [][]float64 {
	rows := make([][]float64, len(m))
	for i := range m {
		rows[i] = append([]float64(nil), m[i][:]...)
	}
	return rows
}

// Matrix3D is a 2x2x2 block of 32-bit integers.
type Matrix3D [2][2][2]int32

// Flatten returns the elements in row-major order.
func (m Matrix3D) Flatten() []int32 {
	out := make([]int32, 0, 8)
	for _, plane := range m {
		for _, row := range plane {
			out = append(out, row[:]...)
		}
	}
	return out
}

// Nested returns the block as nested slices.
func (m Matrix3D) Nested() [][][]int32 {
	out := make([][][]int32, len(m))
	for i, plane := range m {
		out[i] = make([][]int32, len(plane))
		for j, row := range plane {
			out[i][j] = append([]int32(nil), row[:]...)
		}
	}
	return out
}

// LengthQuery reports the number of elements in a sequence.
type LengthQuery interface {
	Length(values []int32) int32
}
