package reduce

import (
	"fmt"

	"github.com/born-ml/reduce/internal/tensor"
)

// Variance computes the variance of x over dims.
//
// Without a mean option the slot means are computed first, then squared
// deviations are accumulated in a second pass. WithMean or WithScalarMean
// skip the first pass. The sum of squared deviations is divided by
// count-1 (Corrected(true), the default) or count.
func Variance(x *tensor.Array, dims Dims, opts ...Option) (*tensor.Array, error) {
	p, err := Resolve(KindVariance, x, dims, opts...)
	if err != nil {
		return nil, fmt.Errorf("variance: %w", err)
	}
	out, err := p.alloc(x)
	if err != nil {
		return nil, fmt.Errorf("variance: %w", err)
	}
	return out, nil
}

// VarianceInto is Variance writing into dst, which must be contiguous with
// the keepdims shape and promoted dtype of the result.
func VarianceInto(dst, x *tensor.Array, dims Dims, opts ...Option) error {
	p, err := Resolve(KindVariance, x, dims, opts...)
	if err != nil {
		return fmt.Errorf("variance: %w", err)
	}
	if err := p.checkDestination(dst); err != nil {
		return fmt.Errorf("variance: %w", err)
	}
	if err := p.into(dst, x); err != nil {
		return fmt.Errorf("variance: %w", err)
	}
	return nil
}

// VarianceAll returns the variance over every element of x as a float64.
func VarianceAll(x *tensor.Array, opts ...Option) (float64, error) {
	p, err := Resolve(KindVariance, x, All(), opts...)
	if err != nil {
		return 0, fmt.Errorf("variance: %w", err)
	}
	res := make([]float64, 1)
	if err := p.execute(x, res); err != nil {
		return 0, fmt.Errorf("variance: %w", err)
	}
	return res[0], nil
}
