package reduce

import (
	"log/slog"

	"github.com/born-ml/reduce/internal/parallel"
	"github.com/born-ml/reduce/internal/tensor"
)

type options struct {
	mode       parallel.Mode
	cfg        parallel.Config
	corrected  bool
	mean       *tensor.Array
	scalarMean *float64
	checkEmpty bool
	logger     *slog.Logger
}

func defaultOptions() options {
	return options{
		mode:      parallel.Auto,
		cfg:       parallel.DefaultConfig(),
		corrected: true,
		logger:    slog.New(slog.DiscardHandler),
	}
}

// Option configures a reduction call.
type Option func(*options)

// WithMode chooses the single- or multi-threaded kernel variant, or Auto to
// decide by element count.
func WithMode(mode parallel.Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithParallel sets the execution context (worker count, chunk size).
func WithParallel(cfg parallel.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// Corrected selects Bessel's correction for variance (default true).
func Corrected(corrected bool) Option {
	return func(o *options) {
		o.corrected = corrected
	}
}

// WithMean supplies precomputed per-slot means for variance. The array must
// have the reduced (keepdims) shape. Mean reductions ignore it.
func WithMean(mean *tensor.Array) Option {
	return func(o *options) {
		o.mean = mean
		o.scalarMean = nil
	}
}

// WithScalarMean supplies a precomputed mean for a variance over all axes.
func WithScalarMean(mean float64) Option {
	return func(o *options) {
		o.scalarMean = &mean
		o.mean = nil
	}
}

// WithEmptyCheck makes reductions over zero elements fail with
// ErrEmptyReduction instead of producing NaN.
func WithEmptyCheck() Option {
	return func(o *options) {
		o.checkEmpty = true
	}
}

// WithLogger sets the logger resolved plans are reported to at Debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
