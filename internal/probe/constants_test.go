package probe

import (
	"encoding/hex"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/featureprobe/internal/codec"
)

func TestScalarConstantsLayout(t *testing.T) {
	got := hex.EncodeToString(New().ScalarConstants())

	want := "050000000000000000" + // Long 0
		"050000003ef1cdb4ba" + // Long 270344762554
		"0440200000" + // Float 2.5
		"0300000001" + // Integer 1 (enabled)
		"0300000001" + "0300000002" + "0300000003" + "0300000004" + "0300000005"
	assert.Equal(t, want, got)
}

func TestScalarConstantsRoundTrip(t *testing.T) {
	p := New()

	s, values, err := DecodeScalarConstants(p.ScalarConstants())
	require.NoError(t, err)

	want := p.Scalars()
	assert.Equal(t, want.LongValue, s.LongValue)
	assert.Equal(t, want.LongValueStatic, s.LongValueStatic)
	assert.Equal(t, math.Float32bits(want.Scale), math.Float32bits(s.Scale))
	assert.Equal(t, want.Enabled, s.Enabled)
	assert.Empty(t, s.Greeting)
	assert.Equal(t, p.Values(), values)
}

func TestDecodeScalarConstantsErrors(t *testing.T) {
	data := New().ScalarConstants()

	_, _, err := DecodeScalarConstants(data[:4])
	assert.ErrorIs(t, err, codec.ErrTruncated)
	assert.Contains(t, err.Error(), "long_value")

	_, _, err = DecodeScalarConstants(data[:len(data)-1])
	assert.ErrorIs(t, err, codec.ErrTruncated)
	assert.Contains(t, err.Error(), "values[4]")

	bad := append([]byte(nil), data...)
	bad[18] = 6 // scale written with the Double tag
	_, _, err = DecodeScalarConstants(bad)
	assert.ErrorIs(t, err, codec.ErrBadTag)
	assert.Contains(t, err.Error(), "scale")
}
