package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/born-ml/reduce/reduce"
	"github.com/born-ml/reduce/tensor"
)

// runOptions holds the flags of the run command.
type runOptions struct {
	shape       tensor.Shape
	dims        reduce.Dims
	op          string
	mode        reduce.Mode
	uncorrected bool
	seed        int64
	f32         bool
	verbose     bool
}

func parseRun(args []string) (runOptions, error) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	shape := fs.String("shape", "64,128,32", "array shape, comma separated")
	dims := fs.String("dims", "all", `axes to reduce, comma separated, or "all"`)
	op := fs.String("op", "mean", "mean or var")
	mode := fs.String("mode", "auto", "auto, serial or parallel")
	uncorrected := fs.Bool("uncorrected", false, "divide variance by n instead of n-1")
	seed := fs.Int64("seed", 1, "random seed")
	f32 := fs.Bool("f32", false, "use a float32 array")
	verbose := fs.Bool("v", false, "log the resolved plan")
	if err := fs.Parse(args); err != nil {
		return runOptions{}, err
	}

	o := runOptions{op: *op, uncorrected: *uncorrected, seed: *seed, f32: *f32, verbose: *verbose}
	var err error
	if o.shape, err = parseInts(*shape); err != nil {
		return runOptions{}, fmt.Errorf("-shape: %w", err)
	}
	if *dims == "all" {
		o.dims = reduce.All()
	} else {
		axes, err := parseInts(*dims)
		if err != nil {
			return runOptions{}, fmt.Errorf("-dims: %w", err)
		}
		o.dims = reduce.Axes(axes...)
	}
	if o.mode, err = reduce.ParseMode(*mode); err != nil {
		return runOptions{}, fmt.Errorf("-mode: %w", err)
	}
	if o.op != "mean" && o.op != "var" {
		return runOptions{}, fmt.Errorf("-op: unknown operation %q", o.op)
	}
	return o, nil
}

func parseInts(s string) ([]int, error) {
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func run(args []string) error {
	o, err := parseRun(args)
	if err != nil {
		return err
	}

	var x *tensor.Array
	if o.f32 {
		x, err = tensor.Randn[float32](o.shape, o.seed)
	} else {
		x, err = tensor.Randn[float64](o.shape, o.seed)
	}
	if err != nil {
		return err
	}

	opts := []reduce.Option{reduce.WithMode(o.mode), reduce.Corrected(!o.uncorrected)}
	if o.verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, reduce.WithLogger(logger))
	}

	start := time.Now()
	var out *tensor.Array
	if o.op == "mean" {
		out, err = reduce.Mean(x, o.dims, opts...)
	} else {
		out, err = reduce.Variance(x, o.dims, opts...)
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	vals := tensor.Float64s(out)
	fmt.Printf("input:   %v %s (%d elements)\n", x.Shape(), x.DType(), x.NumElements())
	fmt.Printf("output:  %v %s\n", out.Shape(), out.DType())
	fmt.Printf("values:  %s\n", summarize(vals))
	fmt.Printf("elapsed: %v\n", elapsed)
	return nil
}

// summarize prints min, max and the first few values.
func summarize(vals []float64) string {
	if len(vals) == 0 {
		return "(empty)"
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	head := vals[:min(len(vals), 4)]
	more := ""
	if len(vals) > len(head) {
		more = " ..."
	}
	return fmt.Sprintf("min %.6g max %.6g first %v%s", lo, hi, head, more)
}
