// Package wizard provides the interactive form behind `veldbench
// init --interactive`.
package wizard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Settings holds the values collected by the init wizard.
type Settings struct {
	ResultsDir string
	ReportName string
	Plain      bool
}

// Run collects analyzer settings through an interactive huh form,
// pre-populated from defaults.
func Run(defaults Settings) (*Settings, error) {
	s := defaults

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Results directory").
				Description("Where JMH result files are read from").
				Placeholder("results").
				Value(&s.ResultsDir).
				Validate(ValidateDir),
			huh.NewInput().
				Title("Report filename").
				Description("Markdown report written into the results directory").
				Placeholder("strategic-analysis-report.md").
				Value(&s.ReportName).
				Validate(ValidateReportName),
			huh.NewConfirm().
				Title("Plain terminal output?").
				Description("Echo raw Markdown instead of styled rendering").
				Value(&s.Plain),
		),
	)

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("running wizard: %w", err)
	}

	s.ResultsDir = strings.TrimSpace(s.ResultsDir)
	s.ReportName = strings.TrimSpace(s.ReportName)
	return &s, nil
}

// ValidateDir rejects empty directory values.
func ValidateDir(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("directory is required")
	}
	return nil
}

// ValidateReportName requires a .md filename with no path separators.
func ValidateReportName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("filename is required")
	}
	if strings.ContainsAny(s, `/\`) {
		return fmt.Errorf("filename must not contain path separators")
	}
	if !strings.HasSuffix(s, ".md") {
		return fmt.Errorf("filename must end in .md")
	}
	return nil
}
