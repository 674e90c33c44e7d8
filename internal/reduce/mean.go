package reduce

import (
	"fmt"

	"github.com/born-ml/reduce/internal/tensor"
)

// Mean computes the arithmetic mean of x over dims.
//
// The result keeps the rank of x with every reduced axis set to extent 1.
// Float32 input yields float32 output; every other supported type yields
// float64. Accumulation is always in float64.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	m, _ := reduce.Mean(a, reduce.Axis(0)) // [[2, 3]]
func Mean(x *tensor.Array, dims Dims, opts ...Option) (*tensor.Array, error) {
	p, err := Resolve(KindMean, x, dims, opts...)
	if err != nil {
		return nil, fmt.Errorf("mean: %w", err)
	}
	out, err := p.alloc(x)
	if err != nil {
		return nil, fmt.Errorf("mean: %w", err)
	}
	return out, nil
}

// MeanInto is Mean writing into dst, which must be contiguous with the
// keepdims shape and promoted dtype of the result.
func MeanInto(dst, x *tensor.Array, dims Dims, opts ...Option) error {
	p, err := Resolve(KindMean, x, dims, opts...)
	if err != nil {
		return fmt.Errorf("mean: %w", err)
	}
	if err := p.checkDestination(dst); err != nil {
		return fmt.Errorf("mean: %w", err)
	}
	if err := p.into(dst, x); err != nil {
		return fmt.Errorf("mean: %w", err)
	}
	return nil
}

// MeanAll returns the mean over every element of x as a float64.
func MeanAll(x *tensor.Array, opts ...Option) (float64, error) {
	p, err := Resolve(KindMean, x, All(), opts...)
	if err != nil {
		return 0, fmt.Errorf("mean: %w", err)
	}
	res := make([]float64, 1)
	if err := p.execute(x, res); err != nil {
		return 0, fmt.Errorf("mean: %w", err)
	}
	return res[0], nil
}
