package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasmramos/veld-bench/internal/jmh"
)

func result(entries ...jmh.Entry) jmh.Result {
	return jmh.Result{Entries: entries, HasBenchmarks: true}
}

func entry(name string, score float64) jmh.Entry {
	return jmh.Entry{Name: name, PrimaryMetric: jmh.Metric{Score: score}}
}

func TestAnalyzeScalability(t *testing.T) {
	tests := []struct {
		name       string
		concurrent float64
		single     float64
		wantPassed bool
	}{
		{"well above target", 400, 100, true},
		{"boundary ratio is a failure", 320, 100, false}, // 320/(100*4) = 0.80, strict >
		{"just above boundary", 321, 100, true},
		{"poor scaling", 100, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := result(
				entry("x.concurrent-lookup", tt.concurrent),
				entry("x.single-thread-lookup", tt.single),
			)
			v := analyzeScalability(res)
			require.NotNil(t, v)
			assert.Equal(t, tt.wantPassed, v.Passed)
		})
	}
}

func TestAnalyzeScalabilityMissingEntries(t *testing.T) {
	tests := []struct {
		name string
		res  jmh.Result
	}{
		{"no data at all", jmh.Result{}},
		{"concurrent only", result(entry("x.concurrent-lookup", 400))},
		{"single only", result(entry("x.single-thread-lookup", 100))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, analyzeScalability(tt.res))
		})
	}
}

func TestAnalyzeContention(t *testing.T) {
	tests := []struct {
		name       string
		latencyNs  float64
		wantPassed bool
	}{
		{"just under target", 999, true},
		{"boundary latency is a failure", 1000, false}, // strict <
		{"fast", 120, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := analyzeContention(result(entry("x.lazy-service-lookup", tt.latencyNs)))
			require.NotNil(t, v)
			assert.Equal(t, tt.wantPassed, v.Passed)
		})
	}

	t.Run("missing entry", func(t *testing.T) {
		assert.Nil(t, analyzeContention(result(entry("x.other", 1))))
	})
}

func TestAnalyzeMemory(t *testing.T) {
	t.Run("five megabytes passes", func(t *testing.T) {
		v := analyzeMemory(result(entry("x.memory-overhead", 5242880)))
		require.NotNil(t, v)
		assert.True(t, v.Passed)
		require.IsType(t, MemoryData{}, v.Data)
		assert.Equal(t, 5.0, v.Data.(MemoryData).TotalMB)
	})

	t.Run("overhead plus cache summed", func(t *testing.T) {
		v := analyzeMemory(result(
			entry("x.memory-overhead", 6*bytesPerMB),
			entry("x.threadlocal-cache", 5*bytesPerMB),
		))
		require.NotNil(t, v)
		assert.False(t, v.Passed)
		assert.Equal(t, 11.0, v.Data.(MemoryData).TotalMB)
	})

	t.Run("both entries optional", func(t *testing.T) {
		v := analyzeMemory(result())
		require.NotNil(t, v)
		assert.True(t, v.Passed)
		assert.Equal(t, 0.0, v.Data.(MemoryData).TotalMB)
	})

	t.Run("no benchmarks list means no verdict", func(t *testing.T) {
		assert.Nil(t, analyzeMemory(jmh.Result{}))
	})
}

func TestAnalyzeHashCollision(t *testing.T) {
	tests := []struct {
		name       string
		worstNs    float64
		wantPassed bool
	}{
		{"acceptable", 450, true},
		{"boundary is a failure", 500, false},
		{"degraded", 800, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := analyzeHashCollision(result(entry("x.worst-case-hash-collision", tt.worstNs)))
			require.NotNil(t, v)
			assert.Equal(t, tt.wantPassed, v.Passed)
		})
	}
}

func TestAnalyzeEfficiency(t *testing.T) {
	tests := []struct {
		name       string
		concurrent float64
		single     float64
		wantPassed bool
	}{
		{"above target", 301, 100, true},  // 0.7525
		{"boundary is a failure", 300, 100, false}, // 0.75, strict >
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := result(
				entry("x.concurrent-efficiency", tt.concurrent),
				entry("x.single-efficiency", tt.single),
			)
			v := analyzeEfficiency(res)
			require.NotNil(t, v)
			assert.Equal(t, tt.wantPassed, v.Passed)
		})
	}
}

func TestAnalyzeLoadFactor(t *testing.T) {
	tests := []struct {
		name       string
		score      float64
		wantPassed bool
	}{
		{"below target", 0.69, true},
		{"boundary is a failure", 0.70, false},
		{"overloaded", 0.95, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := analyzeLoadFactor(result(entry("x.load-factor-validation", tt.score)))
			require.NotNil(t, v)
			assert.Equal(t, tt.wantPassed, v.Passed)
		})
	}
}

func TestVerdictFieldsOrderedAndFormatted(t *testing.T) {
	v := analyzeScalability(result(
		entry("x.concurrent-lookup", 320),
		entry("x.single-thread-lookup", 100),
	))
	require.NotNil(t, v)

	require.Len(t, v.Fields, 4)
	assert.Equal(t, Field{"Concurrent Avg Ns", "320.000"}, v.Fields[0])
	assert.Equal(t, Field{"Single Avg Ns", "100.000"}, v.Fields[1])
	assert.Equal(t, Field{"Efficiency Ratio", "0.800"}, v.Fields[2])
	assert.Equal(t, Field{"Efficiency Percentage", "80.000"}, v.Fields[3])
	assert.Equal(t, "FAIL", v.Status())
	assert.Equal(t, "80.0% efficiency", v.Headline)
}

func TestCategoryTitle(t *testing.T) {
	assert.Equal(t, "Scalability", Scalability.Title())
	assert.Equal(t, "Hash Collision", HashCollision.Title())
	assert.Equal(t, "Load Factor", LoadFactor.Title())
}

func TestSetTallies(t *testing.T) {
	set := Set{
		Scalability: {Category: Scalability, Passed: true},
		Contention:  {Category: Contention, Passed: false},
		Memory:      {Category: Memory, Passed: true},
	}

	assert.Equal(t, 3, set.Total())
	assert.Equal(t, 2, set.PassedCount())
	assert.Equal(t, 1, set.Failures())
}

func TestSetTalliesEmpty(t *testing.T) {
	set := Set{}

	assert.Equal(t, 0, set.Total())
	assert.Equal(t, 0, set.PassedCount())
	assert.Equal(t, 0, set.Failures())
}
