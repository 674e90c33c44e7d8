package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a, err := New(Shape{2, 3}, Float32)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, a.Shape())
	assert.Equal(t, []int{3, 1}, a.Strides())
	assert.Equal(t, Float32, a.DType())
	assert.Equal(t, 6, a.NumElements())
	assert.Equal(t, []float32{0, 0, 0, 0, 0, 0}, a.AsFloat32())

	_, err = New(Shape{-1}, Float32)
	assert.Error(t, err)
}

func TestFromSlice(t *testing.T) {
	a, err := FromSlice([]int32{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, Int32, a.DType())
	assert.Equal(t, 3.0, a.At(1, 0))

	_, err = FromSlice([]int32{1, 2, 3}, Shape{2, 2})
	assert.Error(t, err)
}

func TestValues_ZeroCopy(t *testing.T) {
	a, err := New(Shape{4}, Float64)
	require.NoError(t, err)

	Values[float64](a)[2] = 42
	assert.Equal(t, 42.0, a.At(2))
}

func TestValues_WrongType(t *testing.T) {
	a, err := New(Shape{4}, Float64)
	require.NoError(t, err)
	assert.Panics(t, func() { Values[float32](a) })
}

func TestValues_Empty(t *testing.T) {
	a, err := New(Shape{3, 0}, Float32)
	require.NoError(t, err)
	assert.Nil(t, Values[float32](a))
	assert.Empty(t, Float64s(a))
}

func TestPermute(t *testing.T) {
	a, err := Arange[float64](Shape{2, 3, 4})
	require.NoError(t, err)

	p, err := a.Permute(2, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 2, 3}, p.Shape())
	assert.Equal(t, []int{1, 12, 4}, p.Strides())
	assert.False(t, p.IsContiguous())

	for i := range 4 {
		for j := range 2 {
			for k := range 3 {
				assert.Equal(t, a.At(j, k, i), p.At(i, j, k))
			}
		}
	}
}

func TestPermute_Invalid(t *testing.T) {
	a, err := New(Shape{2, 3}, Float32)
	require.NoError(t, err)

	_, err = a.Permute(0)
	assert.Error(t, err)
	_, err = a.Permute(0, 2)
	assert.Error(t, err)
	_, err = a.Permute(1, 1)
	assert.Error(t, err)
}

func TestIsContiguous(t *testing.T) {
	a, err := New(Shape{3, 1, 4}, Float32)
	require.NoError(t, err)
	assert.True(t, a.IsContiguous())

	// Moving an extent-1 axis keeps the storage order.
	p, err := a.Permute(1, 0, 2)
	require.NoError(t, err)
	assert.True(t, p.IsContiguous())

	q, err := a.Permute(2, 1, 0)
	require.NoError(t, err)
	assert.False(t, q.IsContiguous())
}

func TestReshape(t *testing.T) {
	a, err := Arange[float32](Shape{2, 6})
	require.NoError(t, err)

	r, err := a.Reshape(Shape{3, 4})
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 4}, r.Shape())
	assert.Equal(t, 5.0, r.At(1, 1))

	_, err = a.Reshape(Shape{5})
	assert.Error(t, err)

	p, err := a.Permute(1, 0)
	require.NoError(t, err)
	_, err = p.Reshape(Shape{12})
	assert.Error(t, err)
}

func TestIndex_Panics(t *testing.T) {
	a, err := New(Shape{2, 2}, Float32)
	require.NoError(t, err)
	assert.Panics(t, func() { a.Index(0) })
	assert.Panics(t, func() { a.Index(0, 2) })
}

func TestFloat64s_Strided(t *testing.T) {
	a, err := FromSlice([]uint8{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	p, err := a.Permute(1, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, Float64s(p))
}

func TestFloat64s_Scalar(t *testing.T) {
	a, err := FromSlice([]int64{-7}, Shape{})
	require.NoError(t, err)
	assert.Equal(t, []float64{-7}, Float64s(a))
}

func TestStoreFloat64s(t *testing.T) {
	a, err := New(Shape{3}, Float32)
	require.NoError(t, err)
	require.NoError(t, StoreFloat64s(a, []float64{1.5, 2.5, 3.5}))
	assert.Equal(t, []float32{1.5, 2.5, 3.5}, a.AsFloat32())

	assert.Error(t, StoreFloat64s(a, []float64{1}))

	i, err := New(Shape{1}, Int32)
	require.NoError(t, err)
	assert.Error(t, StoreFloat64s(i, []float64{1}))
}
