package reduce

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/born-ml/reduce/internal/tensor"
)

// Loop is one level of a loop nest.
type Loop struct {
	Extent int // Iteration count
	Stride int // Input element stride per iteration
}

// Nest is the loop structure of a reduction over a fixed axis set.
//
// Outer holds the kept axes in axis order; together they enumerate output
// slots in row-major order, so the slot number is the output element index.
// Inner holds the reduced axes, largest stride first; the last inner loop is
// the run handed to the vector kernels. Extent-1 axes are dropped and
// memory-contiguous neighbours within a zone are merged.
type Nest struct {
	Outer  []Loop
	Inner  []Loop
	Offset int // Input element offset of slot 0
	Slots  int // Number of output slots
	Count  int // Elements reduced into each slot
}

// BuildNest generates the loop nest reducing an array of the given geometry
// over set.
func BuildNest(shape tensor.Shape, strides []int, offset int, set AxisSet) Nest {
	n := Nest{Offset: offset, Slots: 1, Count: 1}

	for ax, extent := range shape {
		if set.Contains(ax) {
			n.Count *= extent
			if extent != 1 {
				n.Inner = append(n.Inner, Loop{Extent: extent, Stride: strides[ax]})
			}
			continue
		}
		n.Slots *= extent
		if extent != 1 {
			n.Outer = append(n.Outer, Loop{Extent: extent, Stride: strides[ax]})
		}
	}

	// Order does not change a sum, so put the smallest stride innermost.
	slices.SortStableFunc(n.Inner, func(a, b Loop) int {
		return cmp.Compare(b.Stride, a.Stride)
	})

	n.Outer = coalesce(n.Outer)
	n.Inner = coalesce(n.Inner)
	return n
}

// coalesce merges loop i into loop i+1 when loop i steps exactly over one
// full sweep of loop i+1.
func coalesce(loops []Loop) []Loop {
	if len(loops) < 2 {
		return loops
	}
	out := []Loop{loops[len(loops)-1]}
	for i := len(loops) - 2; i >= 0; i-- {
		inner := &out[0]
		if loops[i].Stride == inner.Stride*inner.Extent && inner.Extent > 0 {
			inner.Extent *= loops[i].Extent
			continue
		}
		out = append([]Loop{loops[i]}, out...)
	}
	return out
}

// Signature identifies the specialized code path of a reduction.
type Signature struct {
	Flat  bool // Reduce-all over contiguous storage, no nest
	Outer int  // Outer loop depth
	Inner int  // Inner loop depth
	Unit  bool // Innermost run has stride 1
}

// String formats the signature, e.g. "flat" or "o2/i1u".
func (s Signature) String() string {
	if s.Flat {
		return "flat"
	}
	unit := ""
	if s.Unit {
		unit = "u"
	}
	return fmt.Sprintf("o%d/i%d%s", s.Outer, s.Inner, unit)
}

// Signature returns the signature of the nest.
func (n Nest) Signature() Signature {
	sig := Signature{Outer: len(n.Outer), Inner: len(n.Inner)}
	if len(n.Inner) > 0 {
		sig.Unit = n.Inner[len(n.Inner)-1].Stride == 1
	}
	return sig
}

// KeepDims returns shape with every axis in set replaced by 1.
func KeepDims(shape tensor.Shape, set AxisSet) tensor.Shape {
	out := shape.Clone()
	for _, ax := range set.axes {
		out[ax] = 1
	}
	return out
}
