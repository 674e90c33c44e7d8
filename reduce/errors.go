// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package reduce

import "github.com/born-ml/reduce/internal/reduce"

// Errors returned by reductions, matched with errors.Is.
var (
	ErrInvalidAxis      = reduce.ErrInvalidAxis
	ErrAxisNotFound     = reduce.ErrAxisNotFound
	ErrShapeMismatch    = reduce.ErrShapeMismatch
	ErrEmptyReduction   = reduce.ErrEmptyReduction
	ErrUnsupportedDType = reduce.ErrUnsupportedDType
)

// AxisError reports an axis that cannot be reduced over.
type AxisError = reduce.AxisError

// ShapeError reports a mean or destination array of the wrong shape.
type ShapeError = reduce.ShapeError
