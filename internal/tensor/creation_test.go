package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeros(t *testing.T) {
	a, err := Zeros(Shape{2, 2}, Float64)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, a.AsFloat64())
}

func TestFull(t *testing.T) {
	a, err := Full[int16](Shape{3}, 7)
	require.NoError(t, err)
	assert.Equal(t, []int16{7, 7, 7}, Values[int16](a))
}

func TestArange(t *testing.T) {
	a, err := Arange[float64](Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5}, a.AsFloat64())
}

func TestRandn(t *testing.T) {
	a, err := Randn[float64](Shape{100, 50}, 1)
	require.NoError(t, err)

	data := a.AsFloat64()
	var sum float64
	for _, v := range data {
		sum += v
	}
	mean := sum / float64(len(data))

	var sq float64
	for _, v := range data {
		sq += (v - mean) * (v - mean)
	}
	std := math.Sqrt(sq / float64(len(data)))

	assert.InDelta(t, 0, mean, 0.1)
	assert.InDelta(t, 1, std, 0.1)
}

func TestRandn_Reproducible(t *testing.T) {
	a, err := Randn[float32](Shape{17}, 42)
	require.NoError(t, err)
	b, err := Randn[float32](Shape{17}, 42)
	require.NoError(t, err)
	assert.Equal(t, a.AsFloat32(), b.AsFloat32())
}

func TestRandInt(t *testing.T) {
	a, err := RandInt[uint8](Shape{1000}, 10, 3)
	require.NoError(t, err)
	for _, v := range Values[uint8](a) {
		assert.Less(t, v, uint8(10))
	}
}
