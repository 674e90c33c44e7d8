// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense strided arrays the reduce package operates on.
//
// # Overview
//
// An Array is a rank-N block of numbers with a runtime DataType:
//   - Row-major storage created by New, Zeros, FromSlice and Randn
//   - Zero-copy views with reordered axes via Permute
//   - Zero-copy reshapes of contiguous arrays via Reshape
//
// # Basic Usage
//
//	import "github.com/born-ml/reduce/tensor"
//
//	func main() {
//	    a, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	    t, _ := a.Permute(1, 0) // (3, 2) view, no copy
//	    fmt.Println(tensor.Float64s(t))
//	}
//
// # Supported Data Types
//
// The Numeric constraint covers:
//   - float32, float64 (floating-point)
//   - int8, int16, int32, int64 (signed integers)
//   - uint8, uint16, uint32, uint64 (unsigned integers)
//
// Bool arrays can be created but are rejected by reductions.
//
// # Promotion
//
// Reductions accumulate in float64. Promote reports the output type: float32
// stays float32, everything else becomes float64.
package tensor
