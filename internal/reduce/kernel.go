package reduce

import (
	"fmt"
	"math"

	"github.com/born-ml/reduce/internal/parallel"
	"github.com/born-ml/reduce/internal/tensor"
)

// into runs p over x and stores the result in dst, which must have the
// plan's output shape and dtype.
func (p *Plan) into(dst, x *tensor.Array) error {
	var res []float64
	if dst.DType() == tensor.Float64 {
		res = dst.AsFloat64()
	} else {
		res = make([]float64, dst.NumElements())
	}

	if err := p.execute(x, res); err != nil {
		return err
	}

	if dst.DType() != tensor.Float64 {
		return tensor.StoreFloat64s(dst, res)
	}
	return nil
}

// alloc runs p over x into a freshly allocated output array.
func (p *Plan) alloc(x *tensor.Array) (*tensor.Array, error) {
	out, err := tensor.New(p.OutShape, p.Promotion.Output)
	if err != nil {
		return nil, err
	}
	if err := p.into(out, x); err != nil {
		return nil, err
	}
	return out, nil
}

// execute writes one value per output slot into res.
func (p *Plan) execute(x *tensor.Array, res []float64) error {
	switch x.DType() {
	case tensor.Float32:
		run(p, tensor.Values[float32](x), res)
	case tensor.Float64:
		run(p, tensor.Values[float64](x), res)
	case tensor.Int8:
		run(p, tensor.Values[int8](x), res)
	case tensor.Int16:
		run(p, tensor.Values[int16](x), res)
	case tensor.Int32:
		run(p, tensor.Values[int32](x), res)
	case tensor.Int64:
		run(p, tensor.Values[int64](x), res)
	case tensor.Uint8:
		run(p, tensor.Values[uint8](x), res)
	case tensor.Uint16:
		run(p, tensor.Values[uint16](x), res)
	case tensor.Uint32:
		run(p, tensor.Values[uint32](x), res)
	case tensor.Uint64:
		run(p, tensor.Values[uint64](x), res)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedDType, x.DType())
	}
	return nil
}

func run[T tensor.Numeric](p *Plan, data []T, res []float64) {
	if p.Signature.Flat {
		runFlat(p, data, res)
		return
	}
	runNest(p, data, res)
}

// denominator is the variance divisor, count minus Bessel's correction.
// It may be zero or negative; the division result propagates as is.
func (p *Plan) denominator() float64 {
	if p.Corrected {
		return float64(p.Count() - 1)
	}
	return float64(p.Count())
}

// runFlat reduces contiguous storage to a single slot without building a nest.
func runFlat[T tensor.Numeric](p *Plan, data []T, res []float64) {
	n := p.Count()
	vals := data[p.Nest.Offset : p.Nest.Offset+n]
	inv := 1 / float64(n)

	switch p.Kind {
	case KindMean:
		res[0] = flatAccumulate(vals, p.cfg, false, 0) * inv
	case KindVariance:
		mu := flatAccumulate(vals, p.cfg, false, 0) * inv
		res[0] = flatAccumulate(vals, p.cfg, true, mu)
		p.finishVariance(res)
	case KindVarianceKnownMean:
		res[0] = flatAccumulate(vals, p.cfg, true, p.means[0])
		p.finishVariance(res)
	}
}

// flatAccumulate sums vals (or their squared deviations from mu) in chunks.
// Chunk partials are combined in chunk order.
func flatAccumulate[T tensor.Numeric](vals []T, cfg parallel.Config, sq bool, mu float64) float64 {
	partial := make([]float64, parallel.NumChunks(len(vals), cfg))
	parallel.ForChunks(len(vals), func(c, lo, hi int) {
		r := newRunner(vals)
		if sq {
			r.setMean(mu)
		}
		partial[c] = r.run(lo, hi-lo, 1)
	}, cfg)

	var acc float64
	for _, v := range partial {
		acc += v
	}
	return acc
}

// runNest reduces through the loop nest selected at resolve time.
func runNest[T tensor.Numeric](p *Plan, data []T, res []float64) {
	n := &p.Nest
	if n.Slots == 0 {
		return
	}
	k := selectKernels[T](n)
	inv := 1 / float64(n.Count)

	switch p.Kind {
	case KindMean:
		accumulate(data, n, k, p.cfg, nil, res)
		scale(res, inv)
	case KindVariance:
		accumulate(data, n, k, p.cfg, nil, res)
		scale(res, inv)
		means := append([]float64(nil), res...)
		accumulate(data, n, k, p.cfg, means, res)
		p.finishVariance(res)
	case KindVarianceKnownMean:
		accumulate(data, n, k, p.cfg, p.means, res)
		p.finishVariance(res)
	}
}

// finishVariance turns squared-deviation sums into variances. A slot of zero
// elements has no variance and becomes NaN.
func (p *Plan) finishVariance(acc []float64) {
	if p.Count() == 0 {
		for i := range acc {
			acc[i] = math.NaN()
		}
		return
	}
	d := p.denominator()
	for i := range acc {
		acc[i] /= d
	}
}

// accumulate fills out with one accumulator per slot: the sum of the slot's
// elements, or with means set, the sum of squared deviations from means[slot].
//
// Parallel work is split across slots when there are enough of them,
// otherwise across the outermost reduced loop with per-chunk partials.
func accumulate[T tensor.Numeric](data []T, n *Nest, k kernels[T], cfg parallel.Config, means, out []float64) {
	span0 := span(n.Inner)
	body := func(r *runner[T], lo, hi int, dst func(slot int) *float64) func(slot, off int) {
		return func(slot, off int) {
			if means != nil {
				r.setMean(means[slot])
			}
			*dst(slot) = k.inner(r, n.Inner, off, lo, hi)
		}
	}
	direct := func(slot int) *float64 { return &out[slot] }

	switch {
	case !cfg.Enabled:
		r := newRunner(data)
		k.slots(n.Outer, n.Offset, 0, n.Slots, body(r, 0, span0, direct))

	case n.Slots >= cfg.NumWorkers || span0 < 2:
		per := ceilDiv(cfg.MinChunkSize, max(n.Count, 1))
		parallel.ForChunks(n.Slots, func(_, lo, hi int) {
			r := newRunner(data)
			k.slots(n.Outer, n.Offset, lo, hi, body(r, 0, span0, direct))
		}, cfg.WithMinChunk(per))

	default:
		rowWork := max(n.Slots*(n.Count/max(span0, 1)), 1)
		scfg := cfg.WithMinChunk(ceilDiv(cfg.MinChunkSize, rowWork))
		chunks := parallel.NumChunks(span0, scfg)
		partial := make([]float64, chunks*n.Slots)
		parallel.ForChunks(span0, func(c, lo, hi int) {
			r := newRunner(data)
			row := partial[c*n.Slots : (c+1)*n.Slots]
			k.slots(n.Outer, n.Offset, 0, n.Slots, body(r, lo, hi, func(slot int) *float64 { return &row[slot] }))
		}, scfg)

		for s := range n.Slots {
			var acc float64
			for c := range chunks {
				acc += partial[c*n.Slots+s]
			}
			out[s] = acc
		}
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
