package tensor

import "fmt"

// Float64s returns the logical elements of a, in row-major order, converted to
// float64. Works for any strides.
func Float64s(a *Array) []float64 {
	out := make([]float64, a.NumElements())
	switch a.dtype {
	case Float32:
		gather(Values[float32](a), a, out)
	case Float64:
		gather(Values[float64](a), a, out)
	case Int8:
		gather(Values[int8](a), a, out)
	case Int16:
		gather(Values[int16](a), a, out)
	case Int32:
		gather(Values[int32](a), a, out)
	case Int64:
		gather(Values[int64](a), a, out)
	case Uint8:
		gather(Values[uint8](a), a, out)
	case Uint16:
		gather(Values[uint16](a), a, out)
	case Uint32:
		gather(Values[uint32](a), a, out)
	case Uint64:
		gather(Values[uint64](a), a, out)
	default:
		panic(fmt.Sprintf("float64s: unsupported dtype %s", a.dtype))
	}
	return out
}

// gather walks a in logical row-major order with an odometer over its strides.
func gather[T Numeric](data []T, a *Array, out []float64) {
	n := len(out)
	if n == 0 {
		return
	}
	ndim := len(a.shape)
	if ndim == 0 {
		out[0] = float64(data[a.offset])
		return
	}

	idx := make([]int, ndim)
	pos := a.offset
	for k := 0; k < n; k++ {
		out[k] = float64(data[pos])
		for d := ndim - 1; d >= 0; d-- {
			idx[d]++
			pos += a.stride[d]
			if idx[d] < a.shape[d] {
				break
			}
			pos -= idx[d] * a.stride[d]
			idx[d] = 0
		}
	}
}

// StoreFloat64s writes vals into a contiguous floating-point array in logical
// order, narrowing to float32 when needed.
func StoreFloat64s(a *Array, vals []float64) error {
	if len(vals) != a.NumElements() {
		return fmt.Errorf("store: %d values for array of %d elements", len(vals), a.NumElements())
	}
	if !a.IsContiguous() {
		return fmt.Errorf("store: array with strides %v is not contiguous", a.stride)
	}

	switch a.dtype {
	case Float64:
		copy(a.AsFloat64(), vals)
	case Float32:
		dst := a.AsFloat32()
		for i, v := range vals {
			dst[i] = float32(v)
		}
	default:
		return fmt.Errorf("store: unsupported dtype %s", a.dtype)
	}
	return nil
}
