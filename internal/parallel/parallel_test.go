package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Test that small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestForChunks_CoversRangeOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	for _, n := range []int{0, 1, 7, 16, 17, 100, 1001} {
		hits := make([]int32, n)
		chunks := NumChunks(n, cfg)
		seen := make([]int32, chunks)

		ForChunks(n, func(chunk, start, end int) {
			atomic.AddInt32(&seen[chunk], 1)
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		}, cfg)

		for i, h := range hits {
			require.Equal(t, int32(1), h, "n=%d index %d", n, i)
		}
		for c, s := range seen {
			require.Equal(t, int32(1), s, "n=%d chunk %d", n, c)
		}
	}
}

func TestForChunks_OrderedChunks(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 3, MinChunkSize: 1}
	n := 10
	starts := make([]int, NumChunks(n, cfg))

	ForChunks(n, func(chunk, start, _ int) {
		starts[chunk] = start
	}, cfg)

	for c := 1; c < len(starts); c++ {
		assert.Less(t, starts[c-1], starts[c])
	}
	assert.Equal(t, 0, starts[0])
}

func TestNumChunks(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 10}

	assert.Equal(t, 0, NumChunks(0, cfg))
	assert.Equal(t, 1, NumChunks(19, cfg), "below two minimum chunks stays serial")
	assert.Equal(t, 2, NumChunks(20, cfg))
	assert.Equal(t, 4, NumChunks(400, cfg))
	assert.Equal(t, 1, NumChunks(400, Serial()))
	assert.Equal(t, 1, NumChunks(400, cfg.WithMinChunk(1000)))
}

func TestSelect(t *testing.T) {
	cfg := Config{Enabled: false, NumWorkers: 8, MinChunkSize: 64}

	tests := []struct {
		name     string
		mode     Mode
		elements int
		want     bool
	}{
		{"auto below threshold", Auto, Threshold, false},
		{"auto above threshold", Auto, Threshold + 1, true},
		{"single honored", Single, 1 << 20, false},
		{"multi honored", Multi, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cfg.Select(tt.mode, tt.elements)
			assert.Equal(t, tt.want, got.Enabled)
			assert.Equal(t, cfg.NumWorkers, got.NumWorkers)
		})
	}
}

func TestSelect_OneWorker(t *testing.T) {
	cfg := Config{NumWorkers: 1, MinChunkSize: 1}

	assert.False(t, cfg.Select(Multi, 1<<20).Enabled)
	assert.False(t, cfg.Select(Auto, 1<<20).Enabled)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{
		"":         Auto,
		"auto":     Auto,
		"single":   Single,
		"serial":   Single,
		"multi":    Multi,
		"parallel": Multi,
	} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
		if in != "" {
			_, err := ParseMode(got.String())
			require.NoError(t, err)
		}
	}

	_, err := ParseMode("gpu")
	require.Error(t, err)
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}
