package reduce

import (
	"fmt"

	"github.com/born-ml/reduce/internal/tensor"
)

// Squeeze drops the reduced axes of a keepdims result, returning a view that
// shares storage with out. out must have extent 1 on every axis in set.
func Squeeze(out *tensor.Array, set AxisSet) (*tensor.Array, error) {
	if out.Rank() != set.Rank() {
		return nil, &AxisError{Axis: -1, Rank: out.Rank(), Reason: fmt.Sprintf("axis set is for rank %d", set.Rank()), Err: ErrInvalidAxis}
	}

	shape := make(tensor.Shape, 0, out.Rank()-set.Len())
	for i, dim := range out.Shape() {
		if !set.Contains(i) {
			shape = append(shape, dim)
			continue
		}
		if dim != 1 {
			return nil, &AxisError{Axis: i, Rank: out.Rank(), Reason: fmt.Sprintf("extent %d, want 1", dim), Err: ErrInvalidAxis}
		}
	}
	return out.Reshape(shape)
}
