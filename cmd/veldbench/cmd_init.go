package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yasmramos/veld-bench/internal/projectconfig"
	"github.com/yasmramos/veld-bench/internal/wizard"
)

func newInitCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a benchmark analysis workspace",
		Long: `Initialize a workspace for strategic benchmark analysis.

Creates the results directory and a .veldbench.yaml config file with
the default settings.

Use --interactive to collect the settings through a guided wizard.

If no directory is specified, the current directory is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return initCommandE(cmd, args, interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Collect settings through a guided wizard")

	return cmd
}

func initCommandE(cmd *cobra.Command, args []string, interactive bool) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	settings := wizard.Settings{
		ResultsDir: projectconfig.DefaultResultsDir,
		ReportName: projectconfig.DefaultReportName,
	}
	if interactive {
		s, err := wizard.Run(settings)
		if err != nil {
			return err
		}
		settings = *s
	}

	cfgPath := filepath.Join(dir, projectconfig.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	if err := writeConfig(cfgPath, settings); err != nil {
		return err
	}

	resultsDir := filepath.Join(dir, settings.ResultsDir)
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create results directory %s: %w", resultsDir, err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "✅ Initialized benchmark analysis workspace in %s\n", dir) //nolint:errcheck
	fmt.Fprintf(w, "   Config:  %s\n", cfgPath)                               //nolint:errcheck
	fmt.Fprintf(w, "   Results: %s\n", resultsDir)                            //nolint:errcheck
	fmt.Fprintf(w, "\nDrop JMH result files into the results directory and run 'veldbench analyze'.\n") //nolint:errcheck
	return nil
}

func writeConfig(path string, settings wizard.Settings) error {
	cfg := projectconfig.Config{
		Paths: projectconfig.PathsConfig{
			Results: settings.ResultsDir,
		},
		Report: projectconfig.ReportConfig{
			Filename: settings.ReportName,
		},
	}
	if settings.Plain {
		plain := true
		cfg.Report.Plain = &plain
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	header := "# veldbench project configuration.\n# Performance thresholds are fixed by the tool and not configurable.\n"
	return os.WriteFile(path, append([]byte(header), data...), 0o644)
}
