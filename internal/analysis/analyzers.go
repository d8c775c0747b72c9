package analysis

import (
	"fmt"

	"github.com/yasmramos/veld-bench/internal/jmh"
)

// Performance targets for the Veld service-lookup subsystem. These
// are deliberately not configurable: the tool encodes one validation
// contract.
const (
	scalabilityMinRatio = 0.80
	contentionMaxNs     = 1000.0
	memoryMaxMB         = 10.0
	hashCollisionMaxNs  = 500.0
	efficiencyMinRatio  = 0.75
	loadFactorMax       = 0.70

	// scalingThreads is the thread count the concurrent benchmarks
	// run with; ratios normalize against ideal linear scaling.
	scalingThreads = 4
	// contentionThreads is the fixed thread count of the lazy-lookup
	// contention benchmark.
	contentionThreads = 8

	bytesPerMB = 1024 * 1024
)

// Typed payloads carried on Verdict.Data for the insight generator.

// RatioData holds a concurrent/single throughput comparison.
type RatioData struct {
	ConcurrentNs float64
	SingleNs     float64
	Ratio        float64
}

// ContentionData holds the lazy-lookup latency under contention.
type ContentionData struct {
	AvgNs float64
}

// MemoryData holds the memory overhead breakdown in megabytes.
type MemoryData struct {
	OverheadMB float64
	CacheMB    float64
	TotalMB    float64
}

// HashCollisionData holds the worst-case clustered lookup latency.
type HashCollisionData struct {
	WorstNs float64
}

// LoadFactorData holds the measured registry load factor.
type LoadFactorData struct {
	Current float64
}

// Analyzer derives a category verdict from loaded results. It
// returns nil when the required entries are absent.
type Analyzer func(jmh.Result) *Verdict

// Analyzers maps each category to its analyzer.
var Analyzers = map[Category]Analyzer{
	Scalability:   analyzeScalability,
	Contention:    analyzeContention,
	Memory:        analyzeMemory,
	HashCollision: analyzeHashCollision,
	Efficiency:    analyzeEfficiency,
	LoadFactor:    analyzeLoadFactor,
}

func analyzeScalability(res jmh.Result) *Verdict {
	concurrent, ok := res.Find("concurrent-lookup")
	if !ok {
		return nil
	}
	single, ok := res.Find("single-thread-lookup")
	if !ok {
		return nil
	}

	concurrentNs := concurrent.PrimaryMetric.Score
	singleNs := single.PrimaryMetric.Score
	ratio := concurrentNs / (singleNs * scalingThreads)

	return &Verdict{
		Category: Scalability,
		Passed:   ratio > scalabilityMinRatio,
		Fields: []Field{
			{"Concurrent Avg Ns", floatField(concurrentNs)},
			{"Single Avg Ns", floatField(singleNs)},
			{"Efficiency Ratio", floatField(ratio)},
			{"Efficiency Percentage", floatField(ratio * 100)},
		},
		Headline: fmt.Sprintf("%.1f%% efficiency", ratio*100),
		Data:     RatioData{ConcurrentNs: concurrentNs, SingleNs: singleNs, Ratio: ratio},
	}
}

func analyzeContention(res jmh.Result) *Verdict {
	lazy, ok := res.Find("lazy-service-lookup")
	if !ok {
		return nil
	}

	avgNs := lazy.PrimaryMetric.Score

	return &Verdict{
		Category: Contention,
		Passed:   avgNs < contentionMaxNs,
		Fields: []Field{
			{"Avg Lazy Lookup Ns", floatField(avgNs)},
			{"Threads", fmt.Sprintf("%d", contentionThreads)},
		},
		Headline: fmt.Sprintf("%.0fns", avgNs),
		Data:     ContentionData{AvgNs: avgNs},
	}
}

// analyzeMemory treats both entries as optional, defaulting to zero.
// It produces a verdict whenever the file carried a benchmarks list,
// even an empty one.
func analyzeMemory(res jmh.Result) *Verdict {
	if !res.HasBenchmarks {
		return nil
	}

	var overheadMB, cacheMB float64
	if overhead, ok := res.Find("memory-overhead"); ok {
		overheadMB = overhead.PrimaryMetric.Score / bytesPerMB
	}
	if cache, ok := res.Find("threadlocal-cache"); ok {
		cacheMB = cache.PrimaryMetric.Score / bytesPerMB
	}
	totalMB := overheadMB + cacheMB

	return &Verdict{
		Category: Memory,
		Passed:   totalMB < memoryMaxMB,
		Fields: []Field{
			{"Memory Overhead Mb", floatField(overheadMB)},
			{"Threadlocal Cache Mb", floatField(cacheMB)},
			{"Total Memory Mb", floatField(totalMB)},
		},
		Headline: fmt.Sprintf("%.1fMB", totalMB),
		Data:     MemoryData{OverheadMB: overheadMB, CacheMB: cacheMB, TotalMB: totalMB},
	}
}

func analyzeHashCollision(res jmh.Result) *Verdict {
	collision, ok := res.Find("worst-case-hash-collision")
	if !ok {
		return nil
	}

	worstNs := collision.PrimaryMetric.Score

	return &Verdict{
		Category: HashCollision,
		Passed:   worstNs < hashCollisionMaxNs,
		Fields: []Field{
			{"Worst Case Lookup Ns", floatField(worstNs)},
		},
		Headline: fmt.Sprintf("%.0fns", worstNs),
		Analysis: "Tests current O(n) array search with clustered access patterns",
		Data:     HashCollisionData{WorstNs: worstNs},
	}
}

func analyzeEfficiency(res jmh.Result) *Verdict {
	concurrent, ok := res.Find("concurrent-efficiency")
	if !ok {
		return nil
	}
	single, ok := res.Find("single-efficiency")
	if !ok {
		return nil
	}

	concurrentNs := concurrent.PrimaryMetric.Score
	singleNs := single.PrimaryMetric.Score
	ratio := concurrentNs / (singleNs * scalingThreads)

	return &Verdict{
		Category: Efficiency,
		Passed:   ratio > efficiencyMinRatio,
		Fields: []Field{
			{"Concurrent Efficiency Ns", floatField(concurrentNs)},
			{"Single Efficiency Ns", floatField(singleNs)},
			{"Efficiency Ratio", floatField(ratio)},
			{"Efficiency Percentage", floatField(ratio * 100)},
		},
		Headline: fmt.Sprintf("%.1f%% efficiency", ratio*100),
		Data:     RatioData{ConcurrentNs: concurrentNs, SingleNs: singleNs, Ratio: ratio},
	}
}

func analyzeLoadFactor(res jmh.Result) *Verdict {
	entry, ok := res.Find("load-factor-validation")
	if !ok {
		return nil
	}

	current := entry.PrimaryMetric.Score

	return &Verdict{
		Category: LoadFactor,
		Passed:   current < loadFactorMax,
		Fields: []Field{
			{"Current Load Factor", floatField(current)},
			{"Target Load Factor", floatField(loadFactorMax)},
		},
		Headline: fmt.Sprintf("%.2f", current),
		Analysis: fmt.Sprintf("Current: %.2f, Target: %.2f (Power-of-2 capacity)", current, loadFactorMax),
		Data:     LoadFactorData{Current: current},
	}
}

func floatField(v float64) string {
	return fmt.Sprintf("%.3f", v)
}
