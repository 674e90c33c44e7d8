package tensor

import "fmt"

// Promotion describes how an element type is widened for a mean or variance.
//
// Accumulator is the type partial sums are carried in; Output is the element
// type of the reduced array (the natural quotient type of the input).
type Promotion struct {
	Input       DataType
	Accumulator DataType
	Output      DataType
}

// Promote maps an element type to its accumulator and output types.
//
//	float32          -> accumulate float64, store float32
//	float64          -> accumulate float64, store float64
//	any integer type -> accumulate float64, store float64
//
// Integer inputs never accumulate in their own width, so sums cannot wrap.
// Returns an error for types outside the Numeric set.
func Promote(dt DataType) (Promotion, error) {
	switch dt {
	case Float32:
		return Promotion{Input: dt, Accumulator: Float64, Output: Float32}, nil
	case Float64, Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64:
		return Promotion{Input: dt, Accumulator: Float64, Output: Float64}, nil
	default:
		return Promotion{}, fmt.Errorf("no promotion rule for dtype %s", dt)
	}
}

// String implements fmt.Stringer.
func (p Promotion) String() string {
	return fmt.Sprintf("%s->%s(acc %s)", p.Input, p.Output, p.Accumulator)
}
