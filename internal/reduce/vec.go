package reduce

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/born-ml/reduce/internal/tensor"
)

// blockSize is the number of elements staged per vector call.
const blockSize = 256

// runner evaluates innermost runs for one goroutine. It owns its scratch
// buffers and must not be shared.
type runner[T tensor.Numeric] struct {
	data []T
	buf  []float64 // staging block for conversion and deviations
	neg  []float64 // -mu, valid up to negLen
	mu   float64
	sq   bool // accumulate squared deviations from mu instead of values
	// negLen is how much of neg currently holds -mu.
	negLen int
}

func newRunner[T tensor.Numeric](data []T) *runner[T] {
	return &runner[T]{
		data: data,
		buf:  make([]float64, blockSize),
		neg:  make([]float64, blockSize),
	}
}

// setMean switches the runner to squared deviations from mu.
func (r *runner[T]) setMean(mu float64) {
	r.sq = true
	if mu != r.mu {
		r.mu = mu
		r.negLen = 0
	}
}

// run accumulates n elements starting at off, stepping by stride.
func (r *runner[T]) run(off, n, stride int) float64 {
	if n <= 0 {
		return 0
	}
	if r.sq {
		return r.sqDev(off, n, stride)
	}
	return r.sum(off, n, stride)
}

func (r *runner[T]) sum(off, n, stride int) float64 {
	if f, ok := any(r.data).([]float64); ok && stride == 1 {
		return vecmath.Sum(f[off : off+n])
	}

	var acc float64
	for i := 0; i < n; i += blockSize {
		b := r.buf[:min(blockSize, n-i)]
		p := off + i*stride
		for j := range b {
			b[j] = float64(r.data[p])
			p += stride
		}
		acc += vecmath.Sum(b)
	}
	return acc
}

func (r *runner[T]) sqDev(off, n, stride int) float64 {
	var acc float64
	if f, ok := any(r.data).([]float64); ok && stride == 1 {
		for i := 0; i < n; i += blockSize {
			m := min(blockSize, n-i)
			r.fillNeg(m)
			b := r.buf[:m]
			vecmath.AddBlock(b, f[off+i:off+i+m], r.neg[:m])
			acc += vecmath.DotProduct(b, b)
		}
		return acc
	}

	for i := 0; i < n; i += blockSize {
		b := r.buf[:min(blockSize, n-i)]
		p := off + i*stride
		for j := range b {
			b[j] = float64(r.data[p]) - r.mu
			p += stride
		}
		acc += vecmath.DotProduct(b, b)
	}
	return acc
}

func (r *runner[T]) fillNeg(m int) {
	for ; r.negLen < m; r.negLen++ {
		r.neg[r.negLen] = -r.mu
	}
}

// scale multiplies every accumulator by f in place.
func scale(acc []float64, f float64) {
	vecmath.ScaleBlockInPlace(acc, f)
}

// SIMDLevel names the instruction set the vector kernels dispatch to on
// this machine.
func SIMDLevel() string {
	f := cpu.DetectFeatures()
	switch {
	case f.ForceGeneric:
		return "generic"
	case f.HasAVX2:
		return cpu.SIMDAVX2.String()
	case f.HasSSE2:
		return cpu.SIMDSSE2.String()
	case f.HasNEON:
		return cpu.SIMDNEON.String()
	default:
		return "generic"
	}
}
