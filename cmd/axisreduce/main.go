// Package main provides the axisreduce CLI.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/born-ml/reduce/reduce"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("axisreduce %s\n", version)
	case "features":
		features()
	case "run":
		if err := run(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "axisreduce: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "axisreduce: unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("axisreduce - mean and variance over array axes")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  features   Show CPU features and worker count")
	fmt.Println("  run        Reduce a random array (run -h for flags)")
}

func features() {
	f := cpu.DetectFeatures()
	fmt.Printf("Architecture: %s\n", f.Architecture)
	fmt.Printf("SIMD level:   %s\n", reduce.SIMDLevel())
	fmt.Printf("SSE2: %v  AVX: %v  AVX2: %v  AVX512: %v  NEON: %v\n",
		f.HasSSE2, f.HasAVX, f.HasAVX2, f.HasAVX512, f.HasNEON)
	fmt.Printf("Workers:      %d (GOMAXPROCS %d)\n", reduce.DefaultConfig().NumWorkers, runtime.GOMAXPROCS(0))
	fmt.Printf("Threshold:    %d elements\n", reduce.Threshold)
}
