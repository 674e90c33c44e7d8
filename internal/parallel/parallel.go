// Package parallel provides the data-parallel execution context for reductions.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// Serial returns a config that never fans out.
func Serial() Config {
	return Config{Enabled: false, NumWorkers: 1, MinChunkSize: 1}
}

// WithMinChunk returns a copy of cfg with MinChunkSize set to n (at least 1).
func (cfg Config) WithMinChunk(n int) Config {
	cfg.MinChunkSize = max(n, 1)
	return cfg
}

// chunkSize returns the per-goroutine item count for n items, or n if the work
// should run on the calling goroutine.
func (cfg Config) chunkSize(n int) int {
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < 2*max(cfg.MinChunkSize, 1) {
		return max(n, 1)
	}
	return max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
}

// NumChunks returns how many chunks ForChunks splits n items into.
// Callers use it to size per-chunk partial results.
func NumChunks(n int, cfg Config) int {
	if n <= 0 {
		return 0
	}
	size := cfg.chunkSize(n)
	return (n + size - 1) / size
}

// ForChunks splits [0, n) into NumChunks(n, cfg) contiguous ranges and calls
// f(chunk, start, end) for each, concurrently when more than one chunk exists.
// Chunk indices are dense and ordered by start, so partial results stored per
// chunk can be combined in a fixed order.
func ForChunks(n int, f func(chunk, start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	size := cfg.chunkSize(n)
	if size >= n {
		// Sequential fallback.
		f(0, 0, n)
		return
	}

	var wg sync.WaitGroup
	for chunk, start := 0, 0; start < n; chunk, start = chunk+1, start+size {
		end := min(start+size, n)
		wg.Add(1)
		go func(c, s, e int) {
			defer wg.Done()
			f(c, s, e)
		}(chunk, start, end)
	}
	wg.Wait()
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForChunks(n, func(_, start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}
