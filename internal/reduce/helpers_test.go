package reduce

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/reduce/internal/parallel"
	"github.com/born-ml/reduce/internal/tensor"
)

// reference holds per-slot statistics computed element by element.
type reference struct {
	shape    tensor.Shape
	mean     []float64
	variance []float64
}

// naive reduces x over axes by visiting every element through At, in
// logical order, with plain scalar sums.
func naive(t *testing.T, x *tensor.Array, axes []int, corrected bool) reference {
	t.Helper()

	reduced := make([]bool, x.Rank())
	for _, ax := range axes {
		reduced[ax] = true
	}
	shape := x.Shape().Clone()
	for ax := range reduced {
		if reduced[ax] {
			shape[ax] = 1
		}
	}
	outStrides := shape.ComputeStrides()

	groups := make([][]float64, shape.NumElements())
	idx := make([]int, x.Rank())
	for range x.NumElements() {
		slot := 0
		for d, v := range idx {
			if !reduced[d] {
				slot += v * outStrides[d]
			}
		}
		groups[slot] = append(groups[slot], x.At(idx...))

		for d := len(idx) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < x.Shape()[d] {
				break
			}
			idx[d] = 0
		}
	}

	ref := reference{shape: shape}
	c := 0.0
	if corrected {
		c = 1
	}
	for _, g := range groups {
		var sum float64
		for _, v := range g {
			sum += v
		}
		mu := sum / float64(len(g))
		var sq float64
		for _, v := range g {
			sq += (v - mu) * (v - mu)
		}
		ref.mean = append(ref.mean, mu)
		if len(g) == 0 {
			ref.variance = append(ref.variance, math.NaN())
			continue
		}
		ref.variance = append(ref.variance, sq/(float64(len(g))-c))
	}
	return ref
}

// assertClose compares element-wise with a relative tolerance, treating NaN
// as equal to NaN.
func assertClose(t *testing.T, want, got []float64, tol float64, msgAndArgs ...any) {
	t.Helper()
	require.Len(t, got, len(want), msgAndArgs...)
	for i := range want {
		if math.IsNaN(want[i]) {
			require.True(t, math.IsNaN(got[i]), append([]any{"index %d: want NaN, got %v"}, i, got[i])...)
			continue
		}
		limit := tol * math.Max(1, math.Abs(want[i]))
		require.InDelta(t, want[i], got[i], limit, msgAndArgs...)
	}
}

// subsets enumerates every axis subset of a rank-n array.
func subsets(n int) [][]int {
	var out [][]int
	for m := range 1 << n {
		axes := []int{}
		for ax := range n {
			if m&(1<<ax) != 0 {
				axes = append(axes, ax)
			}
		}
		out = append(out, axes)
	}
	return out
}

// forcedParallel fans out on every call, however small.
func forcedParallel() []Option {
	return []Option{
		WithMode(parallel.Multi),
		WithParallel(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}),
	}
}

// modes lists the option sets every numeric test runs under.
func modes() map[string][]Option {
	return map[string][]Option{
		"serial":   {WithMode(parallel.Single)},
		"parallel": forcedParallel(),
	}
}

func randn(t *testing.T, shape tensor.Shape, seed int64) *tensor.Array {
	t.Helper()
	a, err := tensor.Randn[float64](shape, seed)
	require.NoError(t, err)
	return a
}

func withOpts(base []Option, extra ...Option) []Option {
	out := make([]Option, 0, len(base)+len(extra))
	out = append(out, base...)
	return append(out, extra...)
}
