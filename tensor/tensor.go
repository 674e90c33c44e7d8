// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/reduce/internal/tensor"
)

// Type aliases for public API

// Numeric is a constraint for array element types.
type Numeric = tensor.Numeric

// Float is the subset of Numeric that can hold a quotient.
type Float = tensor.Float

// DataType represents the runtime element type of an array.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
	Bool    DataType = tensor.Bool
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = tensor.Shape

// Array is a dense strided N-dimensional array.
type Array = tensor.Array

// Promotion describes the accumulator and output types of a reduction.
type Promotion = tensor.Promotion

// New creates a zero-filled row-major array.
func New(shape Shape, dtype DataType) (*Array, error) {
	return tensor.New(shape, dtype)
}

// Zeros creates a zero-filled row-major array.
func Zeros(shape Shape, dtype DataType) (*Array, error) {
	return tensor.Zeros(shape, dtype)
}

// FromSlice creates a row-major array holding a copy of data.
//
// Example:
//
//	a, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice[T Numeric](data []T, shape Shape) (*Array, error) {
	return tensor.FromSlice(data, shape)
}

// Full creates an array filled with value.
func Full[T Numeric](shape Shape, value T) (*Array, error) {
	return tensor.Full(shape, value)
}

// Randn creates an array of standard normal samples from a seeded source.
func Randn[T Float](shape Shape, seed int64) (*Array, error) {
	return tensor.Randn[T](shape, seed)
}

// Values returns the storage of a as []T, starting at element 0.
// Panics if T does not match the array's dtype.
func Values[T Numeric](a *Array) []T {
	return tensor.Values[T](a)
}

// Float64s returns the logical elements of a in row-major order as float64.
func Float64s(a *Array) []float64 {
	return tensor.Float64s(a)
}

// Promote maps an element type to its reduction accumulator and output types.
func Promote(dt DataType) (Promotion, error) {
	return tensor.Promote(dt)
}
