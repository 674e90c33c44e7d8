package reduce

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/born-ml/reduce/internal/parallel"
	"github.com/born-ml/reduce/internal/tensor"
)

// Kind is the reduction operation a plan runs.
type Kind int

// Supported operations.
const (
	KindMean Kind = iota
	KindVariance
	KindVarianceKnownMean
)

// String returns the operation name.
func (k Kind) String() string {
	switch k {
	case KindMean:
		return "mean"
	case KindVariance:
		return "variance"
	case KindVarianceKnownMean:
		return "variance-known-mean"
	default:
		return "unknown"
	}
}

// Plan is a fully resolved reduction: what runs, over which axes, on which
// code path. It is derived per call and not modified after Resolve returns.
type Plan struct {
	Kind      Kind
	Axes      AxisSet
	Threaded  bool
	Signature Signature
	Promotion tensor.Promotion
	OutShape  tensor.Shape
	Nest      Nest
	Corrected bool

	cfg   parallel.Config
	means []float64 // Known means, one per slot
}

// Count returns the number of elements reduced into each output slot.
func (p *Plan) Count() int {
	return p.Nest.Count
}

// Resolve validates the arguments of a mean (kind KindMean) or variance
// (KindVariance; upgraded to KindVarianceKnownMean when a mean option is
// given) and resolves the code path. No output is allocated.
func Resolve(kind Kind, x *tensor.Array, dims Dims, opts ...Option) (*Plan, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	promo, err := tensor.Promote(x.DType())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedDType, err)
	}

	set, err := Normalize(dims, x.Rank())
	if err != nil {
		return nil, err
	}

	cfg := o.cfg.Select(o.mode, x.NumElements())
	p := &Plan{
		Kind:      kind,
		Axes:      set,
		Threaded:  cfg.Enabled,
		Promotion: promo,
		OutShape:  KeepDims(x.Shape(), set),
		Nest:      BuildNest(x.Shape(), x.Strides(), x.Offset(), set),
		Corrected: o.corrected,
		cfg:       cfg,
	}

	if set.IsAll() && x.IsContiguous() {
		p.Signature = Signature{Flat: true}
	} else {
		p.Signature = p.Nest.Signature()
	}

	if kind != KindMean {
		if err := p.bindMean(o); err != nil {
			return nil, err
		}
	}

	if o.checkEmpty && p.Count() == 0 {
		return nil, fmt.Errorf("%w: %d elements over axes %v of shape %v", ErrEmptyReduction, p.Count(), set, x.Shape())
	}

	if ctx := context.Background(); o.logger.Enabled(ctx, slog.LevelDebug) {
		o.logger.LogAttrs(ctx, slog.LevelDebug, "reduce plan resolved",
			slog.String("op", p.Kind.String()),
			slog.String("axes", set.String()),
			slog.String("signature", p.Signature.String()),
			slog.Bool("threaded", p.Threaded),
			slog.Int("elements", x.NumElements()),
			slog.String("promotion", promo.String()),
			slog.String("simd", SIMDLevel()),
		)
	}
	return p, nil
}

// bindMean validates a precomputed mean against the reduced shape.
func (p *Plan) bindMean(o options) error {
	switch {
	case o.scalarMean != nil:
		if !p.Axes.IsAll() {
			return &ShapeError{What: "scalar mean", Got: tensor.Shape{}, Want: p.OutShape}
		}
		p.Kind = KindVarianceKnownMean
		p.means = []float64{*o.scalarMean}
	case o.mean != nil:
		if !o.mean.Shape().Equal(p.OutShape) {
			return &ShapeError{What: "mean", Got: o.mean.Shape(), Want: p.OutShape}
		}
		if !o.mean.DType().IsNumeric() {
			return fmt.Errorf("%w: mean has dtype %s", ErrUnsupportedDType, o.mean.DType())
		}
		p.Kind = KindVarianceKnownMean
		p.means = tensor.Float64s(o.mean)
	}
	return nil
}

// checkDestination validates a caller-provided output array.
func (p *Plan) checkDestination(dst *tensor.Array) error {
	if !dst.Shape().Equal(p.OutShape) {
		return &ShapeError{What: "destination", Got: dst.Shape(), Want: p.OutShape}
	}
	if dst.DType() != p.Promotion.Output {
		return fmt.Errorf("%w: destination has dtype %s, want %s", ErrUnsupportedDType, dst.DType(), p.Promotion.Output)
	}
	if !dst.IsContiguous() {
		return fmt.Errorf("destination with strides %v is not contiguous", dst.Strides())
	}
	return nil
}
