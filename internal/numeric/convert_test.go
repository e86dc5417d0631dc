package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWiden64PreservesValue(t *testing.T) {
	for _, a := range []int32{0, 1, -1, math.MaxInt32, math.MinInt32} {
		assert.Equal(t, int64(a), Widen64(a))
	}
}

func TestTruncate64(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want int64
	}{
		{"zero", 0, 0},
		{"negative zero", float32(math.Copysign(0, -1)), 0},
		{"positive fraction", 1.9, 1},
		{"negative fraction", -1.9, -1},
		{"half", 0.5, 0},
		{"NaN", float32(math.NaN()), 0},
		{"+Inf", float32(math.Inf(1)), math.MaxInt64},
		{"-Inf", float32(math.Inf(-1)), math.MinInt64},
		{"max float32", math.MaxFloat32, math.MaxInt64},
		{"-max float32", -math.MaxFloat32, math.MinInt64},
		{"2^63 exactly", 0x1p63, math.MaxInt64},
		{"-2^63 exactly", -0x1p63, math.MinInt64},
		{"largest float32 below 2^63", 0x1.fffffep62, 0x7fffff8000000000},
		{"smallest subnormal", math.SmallestNonzeroFloat32, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate64(tt.in))
		})
	}
}

func TestTruncate64From64(t *testing.T) {
	assert.Equal(t, int64(0), Truncate64From64(math.NaN()))
	assert.Equal(t, int64(math.MaxInt64), Truncate64From64(math.MaxFloat64))
	assert.Equal(t, int64(math.MinInt64), Truncate64From64(-math.MaxFloat64))
	assert.Equal(t, int64(987654321), Truncate64From64(987654321.123456789))
	assert.Equal(t, int64(-654), Truncate64From64(-654.321))
}

func TestWrapAdd64(t *testing.T) {
	assert.Equal(t, int64(math.MinInt64), WrapAdd64(math.MaxInt64, 1))
	assert.Equal(t, int64(math.MaxInt64), WrapAdd64(math.MinInt64, -1))
	assert.Equal(t, int64(-2), WrapAdd64(math.MaxInt64, math.MaxInt64))
	assert.Equal(t, int64(7), WrapAdd64(3, 4))
}

func TestWrapMul(t *testing.T) {
	// 65536 * 65536 is 2^32, which is 0 modulo 2^32.
	assert.Equal(t, int32(0), WrapMul32(65536, 65536))
	assert.Equal(t, int32(math.MinInt32), WrapMul32(math.MinInt32, -1))
	assert.Equal(t, int32(-2), WrapMul32(math.MaxInt32, 2))
	assert.Equal(t, int64(270344762554), WrapMul64(218372183, 1238))
	assert.Equal(t, int64(math.MinInt64), WrapMul64(math.MinInt64, -1))
}
