package reduce

import (
	"errors"
	"fmt"

	"github.com/born-ml/reduce/internal/tensor"
)

// Common errors.
var (
	ErrInvalidAxis      = errors.New("invalid axis")
	ErrAxisNotFound     = errors.New("axis not found")
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrEmptyReduction   = errors.New("empty reduction")
	ErrUnsupportedDType = errors.New("unsupported dtype")
)

// AxisError reports an axis entry that cannot be reduced over.
// Err is ErrInvalidAxis or ErrAxisNotFound.
type AxisError struct {
	Axis   int    // Offending axis value
	Rank   int    // Rank of the array being reduced
	Reason string // Additional details
	Err    error
}

// Error implements the error interface.
func (e *AxisError) Error() string {
	return fmt.Sprintf("%v: axis %d for rank %d: %s", e.Err, e.Axis, e.Rank, e.Reason)
}

// Unwrap returns the sentinel error.
func (e *AxisError) Unwrap() error {
	return e.Err
}

// ShapeError reports an array whose shape does not match the reduced shape.
type ShapeError struct {
	What string       // Which argument, e.g. "mean" or "destination"
	Got  tensor.Shape // Shape supplied
	Want tensor.Shape // Shape required
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: %s has shape %v, want %v", ErrShapeMismatch, e.What, e.Got, e.Want)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}
