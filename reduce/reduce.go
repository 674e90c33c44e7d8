// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package reduce

import (
	"log/slog"

	"github.com/born-ml/reduce/internal/parallel"
	"github.com/born-ml/reduce/internal/reduce"
	"github.com/born-ml/reduce/tensor"
)

// Dims selects the axes to reduce over.
type Dims = reduce.Dims

// AxisSet is a normalized, ascending set of reduced axes.
type AxisSet = reduce.AxisSet

// Option configures a reduction call.
type Option = reduce.Option

// Mode selects the single- or multi-threaded kernel variant.
type Mode = parallel.Mode

// Threading modes.
const (
	Auto   Mode = parallel.Auto
	Single Mode = parallel.Single
	Multi  Mode = parallel.Multi
)

// Threshold is the element count above which Auto mode fans out.
const Threshold = parallel.Threshold

// Config controls worker fan-out.
type Config = parallel.Config

// DefaultConfig returns a worker configuration sized to the machine.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// ParseMode parses "auto", "serial" or "parallel".
func ParseMode(s string) (Mode, error) {
	return parallel.ParseMode(s)
}

// All selects every axis.
func All() Dims { return reduce.All() }

// Axis selects a single axis.
func Axis(axis int) Dims { return reduce.Axis(axis) }

// Axes selects a collection of axes in any order.
func Axes(axes ...int) Dims { return reduce.Axes(axes...) }

// Normalize resolves dims against an array rank.
func Normalize(dims Dims, rank int) (AxisSet, error) {
	return reduce.Normalize(dims, rank)
}

// Mean computes the arithmetic mean of x over dims.
func Mean(x *tensor.Array, dims Dims, opts ...Option) (*tensor.Array, error) {
	return reduce.Mean(x, dims, opts...)
}

// MeanInto is Mean writing into a caller-provided output.
func MeanInto(dst, x *tensor.Array, dims Dims, opts ...Option) error {
	return reduce.MeanInto(dst, x, dims, opts...)
}

// MeanAll returns the mean of every element of x.
func MeanAll(x *tensor.Array, opts ...Option) (float64, error) {
	return reduce.MeanAll(x, opts...)
}

// Variance computes the variance of x over dims.
func Variance(x *tensor.Array, dims Dims, opts ...Option) (*tensor.Array, error) {
	return reduce.Variance(x, dims, opts...)
}

// VarianceInto is Variance writing into a caller-provided output.
func VarianceInto(dst, x *tensor.Array, dims Dims, opts ...Option) error {
	return reduce.VarianceInto(dst, x, dims, opts...)
}

// VarianceAll returns the variance of every element of x.
func VarianceAll(x *tensor.Array, opts ...Option) (float64, error) {
	return reduce.VarianceAll(x, opts...)
}

// Squeeze drops the reduced axes of a keepdims result without copying.
func Squeeze(out *tensor.Array, set AxisSet) (*tensor.Array, error) {
	return reduce.Squeeze(out, set)
}

// SIMDLevel names the instruction set the vector kernels use on this machine.
func SIMDLevel() string {
	return reduce.SIMDLevel()
}

// WithMode chooses the threading mode.
func WithMode(mode Mode) Option { return reduce.WithMode(mode) }

// WithParallel sets the worker configuration.
func WithParallel(cfg Config) Option { return reduce.WithParallel(cfg) }

// Corrected selects Bessel's correction for variance (default true).
func Corrected(corrected bool) Option { return reduce.Corrected(corrected) }

// WithMean supplies precomputed means with the keepdims output shape.
func WithMean(mean *tensor.Array) Option { return reduce.WithMean(mean) }

// WithScalarMean supplies a precomputed mean for a variance over all axes.
func WithScalarMean(mean float64) Option { return reduce.WithScalarMean(mean) }

// WithEmptyCheck reports zero-element reductions as ErrEmptyReduction.
func WithEmptyCheck() Option { return reduce.WithEmptyCheck() }

// WithLogger reports resolved plans to logger at Debug level.
func WithLogger(logger *slog.Logger) Option { return reduce.WithLogger(logger) }
