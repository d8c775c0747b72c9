package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yasmramos/veld-bench/internal/analysis"
	"github.com/yasmramos/veld-bench/internal/projectconfig"
	"github.com/yasmramos/veld-bench/internal/validation"
)

func newValidateCommand() *cobra.Command {
	var resultsDir string

	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate benchmark result files against the JMH schema",
		Long: `Validate checks result JSON files against the embedded JMH result
schema, catching malformed exports before a full analysis run.

With no arguments, the six fixed result files found under the results
directory are validated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, resultsDir)
		},
	}

	cmd.Flags().StringVar(&resultsDir, "results-dir", "", "Directory holding JMH result files (default from .veldbench.yaml, else \"results\")")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string, resultsDir string) error {
	w := cmd.OutOrStdout()

	paths := args
	if len(paths) == 0 {
		cfg, err := projectconfig.Load(".")
		if err != nil {
			return err
		}
		if resultsDir == "" {
			resultsDir = cfg.Paths.Results
		}
		paths = analysis.ResultPaths(resultsDir)
	}
	if len(paths) == 0 {
		fmt.Fprintln(w, "No result files found.") //nolint:errcheck
		return nil
	}

	invalid := 0
	for _, p := range paths {
		errs, err := validation.ValidateResultFile(p)
		if err != nil {
			return err
		}
		if len(errs) == 0 {
			fmt.Fprintf(w, "✅ %s\n", p) //nolint:errcheck
			continue
		}
		invalid++
		fmt.Fprintf(w, "❌ %s (%d error(s))\n", p, len(errs)) //nolint:errcheck
		for _, e := range errs {
			fmt.Fprintf(w, "   %s\n", e) //nolint:errcheck
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d result file(s) failed schema validation", invalid)
	}
	return nil
}
