// Package insights turns a verdict set into the strategic insight
// lines of the report: one sentence per category with data, an
// overall tally, and a tiered readiness recommendation.
package insights

import (
	"fmt"

	"github.com/yasmramos/veld-bench/internal/analysis"
)

// mostlyReadyShare is the pass share at or above which the framework
// is called "mostly ready".
const mostlyReadyShare = 0.8

// Generate produces the insight lines for a verdict set, walking
// categories in report order. Categories without data are skipped.
func Generate(set analysis.Set) []string {
	var lines []string
	for _, cat := range analysis.Categories {
		v := set[cat]
		if v == nil {
			continue
		}
		if line := categoryLine(v); line != "" {
			lines = append(lines, line)
		}
	}

	passed, total := set.PassedCount(), set.Total()
	lines = append(lines, "", fmt.Sprintf("📊 OVERALL: %d/%d tests passed", passed, total))

	// An empty run counts as all-passed: zero evaluated categories
	// means zero failures.
	switch {
	case passed == total:
		lines = append(lines, "🎉 ALL STRATEGIC TESTS PASSED - Framework ready for production!")
	case float64(passed) >= float64(total)*mostlyReadyShare:
		lines = append(lines, "✅ MOSTLY READY - Minor optimizations recommended")
	default:
		lines = append(lines, "⚠️ NEEDS OPTIMIZATION - Several critical issues found")
	}
	return lines
}

func categoryLine(v *analysis.Verdict) string {
	switch d := v.Data.(type) {
	case analysis.RatioData:
		label, target := "SCALABILITY", ">80%"
		if v.Category == analysis.Efficiency {
			label, target = "EFFICIENCY", ">75%"
		}
		if v.Passed {
			return fmt.Sprintf("✅ %s: Excellent efficiency at %.1f%%", label, d.Ratio*100)
		}
		return fmt.Sprintf("⚠️ %s: Poor efficiency at %.1f%% (target: %s)", label, d.Ratio*100, target)
	case analysis.ContentionData:
		if v.Passed {
			return fmt.Sprintf("✅ CONTENTION: Low contention latency %.0fns", d.AvgNs)
		}
		return fmt.Sprintf("⚠️ CONTENTION: High contention latency %.0fns", d.AvgNs)
	case analysis.MemoryData:
		if v.Passed {
			return fmt.Sprintf("✅ MEMORY: Low overhead %.1fMB", d.TotalMB)
		}
		return fmt.Sprintf("⚠️ MEMORY: High overhead %.1fMB", d.TotalMB)
	case analysis.HashCollisionData:
		if v.Passed {
			return fmt.Sprintf("✅ HASH COLLISION: Acceptable worst-case %.0fns", d.WorstNs)
		}
		return fmt.Sprintf("⚠️ HASH COLLISION: Poor worst-case %.0fns", d.WorstNs)
	case analysis.LoadFactorData:
		if v.Passed {
			return fmt.Sprintf("✅ LOAD FACTOR: Within target at %.2f", d.Current)
		}
		return fmt.Sprintf("⚠️ LOAD FACTOR: Above target at %.2f (target: <0.70)", d.Current)
	}
	return ""
}
