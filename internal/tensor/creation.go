package tensor

import (
	"fmt"
	"math"
	"math/rand"
)

// Zeros creates an array of the given type filled with zeros.
//
// Example:
//
//	a, _ := tensor.Zeros(Shape{3, 4}, Float64)
func Zeros(shape Shape, dtype DataType) (*Array, error) {
	return New(shape, dtype)
}

// FromSlice creates a row-major array from a Go slice.
// The slice is copied into the array's memory.
func FromSlice[T Numeric](data []T, shape Shape) (*Array, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	a, err := New(shape, DataTypeOf[T]())
	if err != nil {
		return nil, err
	}
	copy(Values[T](a), data)
	return a, nil
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	a, _ := tensor.Full[float32](Shape{3, 3}, 3.14)
func Full[T Numeric](shape Shape, value T) (*Array, error) {
	a, err := New(shape, DataTypeOf[T]())
	if err != nil {
		return nil, err
	}
	data := Values[T](a)
	for i := range data {
		data[i] = value
	}
	return a, nil
}

// Arange creates a row-major array holding 0, 1, 2, ... in logical order.
func Arange[T Numeric](shape Shape) (*Array, error) {
	a, err := New(shape, DataTypeOf[T]())
	if err != nil {
		return nil, err
	}
	data := Values[T](a)
	for i := range data {
		data[i] = T(i)
	}
	return a, nil
}

// Randn creates an array with values from a normal distribution (mean=0, std=1).
// Uses Box-Muller transform for generating normal distribution.
// The seed makes the contents reproducible.
// Note: Uses math/rand (not crypto/rand) - appropriate for statistical purposes.
//
// Example:
//
//	a, _ := tensor.Randn[float64](Shape{64, 128}, 1)
func Randn[T Float](shape Shape, seed int64) (*Array, error) {
	a, err := New(shape, DataTypeOf[T]())
	if err != nil {
		return nil, err
	}

	//nolint:gosec // G404: math/rand is fine for test and benchmark data.
	rng := rand.New(rand.NewSource(seed))
	data := Values[T](a)
	for i := 0; i < len(data); i += 2 {
		u1 := rng.Float64()
		u2 := rng.Float64()
		if u1 < 1e-300 {
			u1 = 1e-300
		}
		r := math.Sqrt(-2 * math.Log(u1))
		data[i] = T(r * math.Cos(2*math.Pi*u2))
		if i+1 < len(data) {
			data[i+1] = T(r * math.Sin(2*math.Pi*u2))
		}
	}
	return a, nil
}

// RandInt creates an array with uniformly distributed integers in [0, n).
func RandInt[T Numeric](shape Shape, n int64, seed int64) (*Array, error) {
	a, err := New(shape, DataTypeOf[T]())
	if err != nil {
		return nil, err
	}

	//nolint:gosec // G404: math/rand is fine for test and benchmark data.
	rng := rand.New(rand.NewSource(seed))
	data := Values[T](a)
	for i := range data {
		data[i] = T(rng.Int63n(n))
	}
	return a, nil
}
