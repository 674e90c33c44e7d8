// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package reduce_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/reduce/reduce"
	"github.com/born-ml/reduce/tensor"
)

func ExampleMean() {
	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	cols, _ := reduce.Mean(a, reduce.Axis(0))
	rows, _ := reduce.Mean(a, reduce.Axis(1))
	fmt.Println(cols.Shape(), tensor.Float64s(cols))
	fmt.Println(rows.Shape(), tensor.Float64s(rows))
	// Output:
	// [1, 2] [2 3]
	// [2, 1] [1.5 3.5]
}

func ExampleVariance() {
	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	v, _ := reduce.Variance(a, reduce.Axis(0))
	fmt.Println(tensor.Float64s(v))

	pop, _ := reduce.Variance(a, reduce.Axis(1), reduce.Corrected(false))
	fmt.Println(tensor.Float64s(pop))
	// Output:
	// [2 2]
	// [0.25 0.25]
}

func ExampleVariance_knownMean() {
	a, _ := tensor.FromSlice([]int32{2, 4, 4, 4, 5, 5, 7, 9}, tensor.Shape{2, 4})

	m, _ := reduce.Mean(a, reduce.Axis(1))
	v, _ := reduce.Variance(a, reduce.Axis(1), reduce.WithMean(m), reduce.Corrected(false))
	fmt.Println(tensor.Float64s(m), tensor.Float64s(v))
	// Output:
	// [3.5 6.5] [0.75 2.75]
}

func ExampleMeanAll() {
	a, _ := tensor.FromSlice([]uint8{10, 20, 30, 40}, tensor.Shape{4})
	m, _ := reduce.MeanAll(a)
	fmt.Println(m)
	// Output:
	// 25
}

func ExampleSqueeze() {
	a, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	set, _ := reduce.Normalize(reduce.Axis(0), a.Rank())

	m, _ := reduce.Mean(a, reduce.Axis(0))
	s, _ := reduce.Squeeze(m, set)
	fmt.Println(m.Shape(), s.Shape(), tensor.Float64s(s))
	// Output:
	// [1, 3] [3] [2.5 3.5 4.5]
}

func ExampleAxisError() {
	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	_, err := reduce.Mean(a, reduce.Axis(2))
	var axisErr *reduce.AxisError
	fmt.Println(errors.Is(err, reduce.ErrInvalidAxis), errors.As(err, &axisErr), axisErr.Axis)
	// Output:
	// true true 2
}
