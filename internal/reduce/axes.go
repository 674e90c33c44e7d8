package reduce

import (
	"fmt"
	"slices"
	"strings"
)

// MaxRank is the highest array rank the engine reduces over.
// Axis sets are carried as a 64-bit mask.
const MaxRank = 64

// Dims is a caller-supplied axis specification: all axes, one axis, or an
// explicit collection of axes. Axes are zero-based.
type Dims struct {
	all  bool
	axes []int
}

// All selects every axis of the array.
func All() Dims {
	return Dims{all: true}
}

// Axis selects a single axis.
func Axis(axis int) Dims {
	return Dims{axes: []int{axis}}
}

// Axes selects an explicit collection of axes, in any order.
// Axes() with no arguments reduces over nothing.
func Axes(axes ...int) Dims {
	return Dims{axes: slices.Clone(axes)}
}

// IsAll reports whether d is the all-axes sentinel.
func (d Dims) IsAll() bool {
	return d.all
}

// String implements fmt.Stringer.
func (d Dims) String() string {
	if d.all {
		return "all"
	}
	return fmt.Sprint(d.axes)
}

// AxisSet is a canonical set of reduced axes for an array of a given rank.
// Axes are ascending and unique.
type AxisSet struct {
	axes []int
	mask uint64
	rank int
}

// Axes returns the reduced axes in ascending order.
func (s AxisSet) Axes() []int {
	return slices.Clone(s.axes)
}

// Mask returns the set as a bit mask (bit i set when axis i is reduced).
func (s AxisSet) Mask() uint64 {
	return s.mask
}

// Rank returns the rank the set was normalized against.
func (s AxisSet) Rank() int {
	return s.rank
}

// Len returns the number of reduced axes.
func (s AxisSet) Len() int {
	return len(s.axes)
}

// Contains reports whether axis is reduced.
func (s AxisSet) Contains(axis int) bool {
	return axis >= 0 && axis < s.rank && s.mask&(1<<uint(axis)) != 0
}

// IsAll reports whether every axis is reduced.
func (s AxisSet) IsAll() bool {
	return len(s.axes) == s.rank
}

// String implements fmt.Stringer.
func (s AxisSet) String() string {
	parts := make([]string, len(s.axes))
	for i, ax := range s.axes {
		parts[i] = fmt.Sprint(ax)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Normalize turns d into the canonical axis set for an array of the given rank.
//
// Every entry must lie in [0, rank) and appear once; otherwise the result is
// an *AxisError wrapping ErrInvalidAxis. Repeated entries are rejected rather
// than merged so that caller bugs surface.
func Normalize(d Dims, rank int) (AxisSet, error) {
	if rank < 0 || rank > MaxRank {
		return AxisSet{}, &AxisError{Axis: -1, Rank: rank, Reason: fmt.Sprintf("rank must be in [0, %d]", MaxRank), Err: ErrInvalidAxis}
	}

	var axes []int
	if d.all {
		axes = make([]int, rank)
		for i := range axes {
			axes[i] = i
		}
	} else {
		axes = append(make([]int, 0, len(d.axes)), d.axes...)
		seen := uint64(0)
		for _, ax := range axes {
			if ax < 0 || ax >= rank {
				return AxisSet{}, &AxisError{Axis: ax, Rank: rank, Reason: fmt.Sprintf("must be in [0, %d)", rank), Err: ErrInvalidAxis}
			}
			if seen&(1<<uint(ax)) != 0 {
				return AxisSet{}, &AxisError{Axis: ax, Rank: rank, Reason: "repeated", Err: ErrInvalidAxis}
			}
			seen |= 1 << uint(ax)
		}
		slices.Sort(axes)
	}

	mask, err := ResolveMask(rank, axes)
	if err != nil {
		return AxisSet{}, err
	}
	return AxisSet{axes: axes, mask: mask, rank: rank}, nil
}
