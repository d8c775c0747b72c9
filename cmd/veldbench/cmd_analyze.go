package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/yasmramos/veld-bench/internal/analysis"
	"github.com/yasmramos/veld-bench/internal/insights"
	"github.com/yasmramos/veld-bench/internal/projectconfig"
	"github.com/yasmramos/veld-bench/internal/reporting"
)

func newAnalyzeCommand() *cobra.Command {
	var (
		resultsDir string
		junitPath  string
		plain      bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze strategic benchmark results and render the report",
		Long: `Analyze loads the six strategic validation result files from the
results directory, checks each category against its performance
target, writes the Markdown analysis report next to the results, and
echoes it to the terminal.

Missing or malformed result files are skipped with a warning; the
exit status reflects only categories that produced data and failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, resultsDir, junitPath, plain)
		},
	}

	cmd.Flags().StringVar(&resultsDir, "results-dir", "", "Directory holding JMH result files (default from .veldbench.yaml, else \"results\")")
	cmd.Flags().StringVar(&junitPath, "junit", "", "Also write a JUnit XML report to this path")
	cmd.Flags().BoolVar(&plain, "plain", false, "Echo the raw Markdown instead of rendering it")

	return cmd
}

func runAnalyze(cmd *cobra.Command, resultsDir, junitPath string, plain bool) error {
	cfg, err := projectconfig.Load(".")
	if err != nil {
		return err
	}
	if resultsDir == "" {
		resultsDir = cfg.Paths.Results
	}
	if junitPath == "" {
		junitPath = cfg.Report.JUnit
	}
	if !plain && cfg.Report.Plain != nil {
		plain = *cfg.Report.Plain
	}

	w := cmd.OutOrStdout()
	set := analysis.Run(resultsDir, w)
	insightLines := insights.Generate(set)
	now := time.Now()
	report := reporting.Markdown(set, insightLines, now)

	// The report lands next to the results even when no result file
	// existed; an all-missing run still produces a 0/0 report.
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		return fmt.Errorf("creating results directory: %w", err)
	}
	reportPath := filepath.Join(resultsDir, cfg.Report.Filename)
	if err := os.WriteFile(reportPath, []byte(report), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if junitPath != "" {
		if err := reporting.WriteJUnit(set, junitPath, now); err != nil {
			return fmt.Errorf("writing JUnit report: %w", err)
		}
	}

	fmt.Fprintf(w, "\n📋 Analysis report saved to: %s\n\n", reportPath) //nolint:errcheck
	reporting.Echo(w, report, plain)
	reporting.SummaryBanner(w, set, insightLines)

	if failures := set.Failures(); failures > 0 {
		fmt.Fprintf(w, "\n❌ %d critical tests failed\n", failures) //nolint:errcheck
		return &ThresholdFailureError{Failures: failures}
	}
	fmt.Fprintf(w, "\n✅ All strategic tests passed!\n") //nolint:errcheck
	return nil
}
