// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package reduce computes means and variances of N-dimensional arrays over
// any subset of their axes.
//
// # Overview
//
// Reductions keep the rank of their input: every reduced axis has extent 1 in
// the result. Use Squeeze to drop those axes.
//
//	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	m, _ := reduce.Mean(a, reduce.Axis(0))     // [[2, 3]]
//	v, _ := reduce.Variance(a, reduce.Axis(1)) // [[0.5], [0.5]]
//
// Axes are zero-based. All() reduces every axis; Axes() with no arguments
// reduces none. Out-of-range and repeated axes fail with ErrInvalidAxis.
//
// # Element Types
//
// Every numeric type is accepted. Sums are carried in float64; float32 input
// produces float32 output and every other type produces float64.
//
// # Threading
//
// By default a reduction fans out across goroutines when the input has more
// than Threshold elements. WithMode forces either variant and WithParallel
// supplies the worker configuration.
//
// # Floating-Point Reproducibility
//
// Vector kernels and parallel chunks change the order in which partial sums
// are combined. Results from different modes, worker counts or CPUs agree
// within floating-point error bounds but are not bit-identical.
//
// # Degenerate Inputs
//
// A mean over zero elements is NaN, as is a corrected variance over one
// element. WithEmptyCheck turns zero-element reductions into
// ErrEmptyReduction instead.
package reduce
