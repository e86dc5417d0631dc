package numeric

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiv32(t *testing.T) {
	q, err := Div32(7, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(3), q)

	q, err = Div32(-7, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(-3), q)

	lo, neg := int32(math.MinInt32), int32(-1)
	q, err = Div32(lo, neg)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), q)
}

func TestDivisionByZero(t *testing.T) {
	q, err := Div32(42, 0)
	require.Error(t, err)
	assert.Equal(t, int32(0), q)
	assert.True(t, IsDivisionByZero(err))
	assert.True(t, errors.Is(err, ErrDivisionByZero))

	var ae *ArithmeticError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "div32", ae.Op)
	assert.Equal(t, int64(42), ae.Dividend)
	assert.Equal(t, "div32: 42 / 0: division by zero", err.Error())
}

func TestIsDivisionByZeroWrapped(t *testing.T) {
	_, err := Div32(1, 0)
	wrapped := errors.Join(errors.New("context"), err)
	assert.True(t, IsDivisionByZero(wrapped))
	assert.False(t, IsDivisionByZero(errors.New("other")))
	assert.False(t, IsDivisionByZero(nil))
}
