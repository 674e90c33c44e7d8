package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/reduce/internal/tensor"
)

func TestSqueeze(t *testing.T) {
	x := randn(t, tensor.Shape{2, 3, 4}, 1)
	set, err := Normalize(Axes(0, 2), 3)
	require.NoError(t, err)

	m, err := Mean(x, Axes(0, 2))
	require.NoError(t, err)

	s, err := Squeeze(m, set)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{3}, s.Shape())
	assert.Equal(t, m.AsFloat64(), s.AsFloat64())
}

func TestSqueeze_All(t *testing.T) {
	m, err := Mean(matrix(t), All())
	require.NoError(t, err)
	set, err := Normalize(All(), 2)
	require.NoError(t, err)

	s, err := Squeeze(m, set)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 2.5, s.At())
}

func TestSqueeze_Invalid(t *testing.T) {
	a := matrix(t)
	set, err := Normalize(Axis(0), 2)
	require.NoError(t, err)

	_, err = Squeeze(a, set)
	assert.ErrorIs(t, err, ErrInvalidAxis)

	other, err := Normalize(Axis(0), 3)
	require.NoError(t, err)
	_, err = Squeeze(a, other)
	assert.ErrorIs(t, err, ErrInvalidAxis)
}
