package tensor

import (
	"fmt"
	"unsafe"
)

// Array is a dense strided N-dimensional array.
//
// Storage is a flat byte buffer interpreted according to dtype. Views created
// by Permute share storage with their parent and carry their own strides and
// element offset. Strides are counted in elements, not bytes.
type Array struct {
	data   []byte   // Shared storage
	shape  Shape    // Array dimensions
	stride []int    // Element strides per axis
	dtype  DataType // Runtime type information
	offset int      // Element offset of index (0, ..., 0)
}

// New creates a row-major Array with the given shape and type.
// Memory is zero-initialized.
func New(shape Shape, dtype DataType) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &Array{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Shape returns the array's shape.
func (a *Array) Shape() Shape {
	return a.shape
}

// Strides returns the array's element strides.
func (a *Array) Strides() []int {
	return a.stride
}

// DType returns the array's data type.
func (a *Array) DType() DataType {
	return a.dtype
}

// Offset returns the element offset of the first logical element.
func (a *Array) Offset() int {
	return a.offset
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int {
	return len(a.shape)
}

// NumElements returns the total number of logical elements.
func (a *Array) NumElements() int {
	return a.shape.NumElements()
}

// IsContiguous reports whether the logical row-major order matches storage
// order, i.e. the elements occupy [Offset, Offset+NumElements) densely.
// Extent-1 axes do not affect contiguity.
func (a *Array) IsContiguous() bool {
	expected := 1
	for i := len(a.shape) - 1; i >= 0; i-- {
		if a.shape[i] == 1 {
			continue
		}
		if a.stride[i] != expected {
			return false
		}
		expected *= a.shape[i]
	}
	return true
}

// Values returns the full storage of a as []T, starting at element 0 (not at
// Offset). Index it with Offset and Strides.
// Panics if T does not match the array's dtype.
func Values[T Numeric](a *Array) []T {
	if dt := DataTypeOf[T](); dt != a.dtype {
		panic(fmt.Sprintf("array dtype is %s, not %s", a.dtype, dt))
	}
	if len(a.data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, length derived from the buffer size.
	return unsafe.Slice((*T)(unsafe.Pointer(&a.data[0])), len(a.data)/a.dtype.Size())
}

// AsFloat64 returns the logical elements of a contiguous float64 array.
// Panics if the dtype is not Float64 or the array is not contiguous.
func (a *Array) AsFloat64() []float64 {
	return contiguous[float64](a)
}

// AsFloat32 returns the logical elements of a contiguous float32 array.
// Panics if the dtype is not Float32 or the array is not contiguous.
func (a *Array) AsFloat32() []float32 {
	return contiguous[float32](a)
}

func contiguous[T Numeric](a *Array) []T {
	if !a.IsContiguous() {
		panic("array is not contiguous")
	}
	vals := Values[T](a)
	return vals[a.offset : a.offset+a.NumElements()]
}

// Permute returns a view of a with its axes reordered: axis i of the result
// is axis axes[i] of a. No data is copied.
func (a *Array) Permute(axes ...int) (*Array, error) {
	ndim := len(a.shape)
	if len(axes) != ndim {
		return nil, fmt.Errorf("permute: axes length %d != ndim %d", len(axes), ndim)
	}

	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			return nil, fmt.Errorf("permute: invalid axis %d for %dD array", ax, ndim)
		}
		if seen[ax] {
			return nil, fmt.Errorf("permute: duplicate axis %d", ax)
		}
		seen[ax] = true
	}

	shape := make(Shape, ndim)
	stride := make([]int, ndim)
	for i, ax := range axes {
		shape[i] = a.shape[ax]
		stride[i] = a.stride[ax]
	}

	return &Array{
		data:   a.data,
		shape:  shape,
		stride: stride,
		dtype:  a.dtype,
		offset: a.offset,
	}, nil
}

// Reshape returns a view of a contiguous array with a new shape of the same
// element count.
func (a *Array) Reshape(shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	if shape.NumElements() != a.NumElements() {
		return nil, fmt.Errorf("reshape: cannot reshape %v (%d elements) to %v (%d elements)",
			a.shape, a.NumElements(), shape, shape.NumElements())
	}
	if !a.IsContiguous() {
		return nil, fmt.Errorf("reshape: array with strides %v is not contiguous", a.stride)
	}

	return &Array{
		data:   a.data,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  a.dtype,
		offset: a.offset,
	}, nil
}

// Index returns the storage element index of the logical position idx.
// Panics if idx has the wrong length or is out of range.
func (a *Array) Index(idx ...int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("index: got %d indices for %dD array", len(idx), len(a.shape)))
	}
	pos := a.offset
	for i, v := range idx {
		if v < 0 || v >= a.shape[i] {
			panic(fmt.Sprintf("index: %d out of range for axis %d with extent %d", v, i, a.shape[i]))
		}
		pos += v * a.stride[i]
	}
	return pos
}

// At returns the element at idx converted to float64.
func (a *Array) At(idx ...int) float64 {
	pos := a.Index(idx...)
	switch a.dtype {
	case Float32:
		return float64(Values[float32](a)[pos])
	case Float64:
		return Values[float64](a)[pos]
	case Int8:
		return float64(Values[int8](a)[pos])
	case Int16:
		return float64(Values[int16](a)[pos])
	case Int32:
		return float64(Values[int32](a)[pos])
	case Int64:
		return float64(Values[int64](a)[pos])
	case Uint8:
		return float64(Values[uint8](a)[pos])
	case Uint16:
		return float64(Values[uint16](a)[pos])
	case Uint32:
		return float64(Values[uint32](a)[pos])
	case Uint64:
		return float64(Values[uint64](a)[pos])
	default:
		panic(fmt.Sprintf("at: unsupported dtype %s", a.dtype))
	}
}
