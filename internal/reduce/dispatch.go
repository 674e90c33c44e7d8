package reduce

import "github.com/born-ml/reduce/internal/tensor"

// ResolveMask resolves runtime axis values into the bit mask of one fixed axis
// combination.
//
// Entries are consumed one at a time. Each is matched against the candidate
// axes not yet resolved; a match recurses with that axis fixed. An entry that
// matches no remaining candidate (out of range, or already resolved) fails
// with ErrAxisNotFound.
func ResolveMask(rank int, axes []int) (uint64, error) {
	return resolve(rank, axes, 0)
}

func resolve(rank int, pending []int, known uint64) (uint64, error) {
	if len(pending) == 0 {
		return known, nil
	}
	want := pending[0]
	for cand := 0; cand < rank; cand++ {
		bit := uint64(1) << uint(cand)
		if known&bit != 0 {
			continue
		}
		if cand == want {
			return resolve(rank, pending[1:], known|bit)
		}
	}
	return 0, &AxisError{Axis: want, Rank: rank, Reason: "no unresolved axis matches", Err: ErrAxisNotFound}
}

// slotWalker calls fn for every output slot in [lo, hi) with the input offset
// of that slot. Specialized per outer depth.
type slotWalker func(outer []Loop, base, lo, hi int, fn func(slot, off int))

// innerWalker accumulates one slot starting at base. lo and hi bound the
// outermost inner loop so the work can be split between goroutines.
// Specialized per inner depth.
type innerWalker[T tensor.Numeric] func(r *runner[T], inner []Loop, base, lo, hi int) float64

// slotWalkers is indexed by min(outer depth, 3).
var slotWalkers = [...]slotWalker{slots0, slots1, slots2, slotsN}

// innerWalkers returns the walkers for T indexed by min(inner depth, 4).
func innerWalkers[T tensor.Numeric]() [5]innerWalker[T] {
	return [5]innerWalker[T]{walk0[T], walk1[T], walk2[T], walk3[T], walkN[T]}
}

// kernels is the code path selected for one call.
type kernels[T tensor.Numeric] struct {
	slots slotWalker
	inner innerWalker[T]
}

// selectKernels picks the walkers for a nest. Done once per call, before any
// loop runs.
func selectKernels[T tensor.Numeric](n *Nest) kernels[T] {
	return kernels[T]{
		slots: slotWalkers[min(len(n.Outer), len(slotWalkers)-1)],
		inner: innerWalkers[T]()[min(len(n.Inner), 4)],
	}
}

// span returns the iteration range of the outermost inner loop.
func span(inner []Loop) int {
	if len(inner) == 0 {
		return 1
	}
	return inner[0].Extent
}

func slots0(_ []Loop, base, lo, hi int, fn func(slot, off int)) {
	for s := lo; s < hi; s++ {
		fn(s, base)
	}
}

func slots1(outer []Loop, base, lo, hi int, fn func(slot, off int)) {
	s0 := outer[0].Stride
	off := base + lo*s0
	for s := lo; s < hi; s++ {
		fn(s, off)
		off += s0
	}
}

func slots2(outer []Loop, base, lo, hi int, fn func(slot, off int)) {
	e1, s0, s1 := outer[1].Extent, outer[0].Stride, outer[1].Stride
	i, j := lo/e1, lo%e1
	for s := lo; s < hi; s++ {
		fn(s, base+i*s0+j*s1)
		j++
		if j == e1 {
			j = 0
			i++
		}
	}
}

func slotsN(outer []Loop, base, lo, hi int, fn func(slot, off int)) {
	depth := len(outer)
	idx := make([]int, depth)
	rem := lo
	off := base
	for d := depth - 1; d >= 0; d-- {
		idx[d] = rem % outer[d].Extent
		rem /= outer[d].Extent
		off += idx[d] * outer[d].Stride
	}
	for s := lo; s < hi; s++ {
		fn(s, off)
		for d := depth - 1; d >= 0; d-- {
			idx[d]++
			off += outer[d].Stride
			if idx[d] < outer[d].Extent {
				break
			}
			off -= idx[d] * outer[d].Stride
			idx[d] = 0
		}
	}
}

// walk0 handles a slot made of a single element (no reduced extent above 1).
func walk0[T tensor.Numeric](r *runner[T], _ []Loop, base, lo, hi int) float64 {
	if hi <= lo {
		return 0
	}
	return r.run(base, 1, 1)
}

func walk1[T tensor.Numeric](r *runner[T], inner []Loop, base, lo, hi int) float64 {
	s0 := inner[0].Stride
	return r.run(base+lo*s0, hi-lo, s0)
}

func walk2[T tensor.Numeric](r *runner[T], inner []Loop, base, lo, hi int) float64 {
	s0 := inner[0].Stride
	e1, s1 := inner[1].Extent, inner[1].Stride
	var acc float64
	for i := lo; i < hi; i++ {
		acc += r.run(base+i*s0, e1, s1)
	}
	return acc
}

func walk3[T tensor.Numeric](r *runner[T], inner []Loop, base, lo, hi int) float64 {
	s0 := inner[0].Stride
	e1, s1 := inner[1].Extent, inner[1].Stride
	e2, s2 := inner[2].Extent, inner[2].Stride
	var acc float64
	for i := lo; i < hi; i++ {
		off := base + i*s0
		for j := 0; j < e1; j++ {
			acc += r.run(off, e2, s2)
			off += s1
		}
	}
	return acc
}

// walkN is the generic fallback: an odometer over the middle loops.
func walkN[T tensor.Numeric](r *runner[T], inner []Loop, base, lo, hi int) float64 {
	last := inner[len(inner)-1]
	middle := inner[1 : len(inner)-1]
	for _, l := range middle {
		if l.Extent == 0 {
			return 0
		}
	}

	idx := make([]int, len(middle))
	var acc float64
	for i := lo; i < hi; i++ {
		off := base + i*inner[0].Stride
		for {
			acc += r.run(off, last.Extent, last.Stride)
			d := len(middle) - 1
			for ; d >= 0; d-- {
				idx[d]++
				off += middle[d].Stride
				if idx[d] < middle[d].Extent {
					break
				}
				off -= idx[d] * middle[d].Stride
				idx[d] = 0
			}
			if d < 0 {
				break
			}
		}
	}
	return acc
}
