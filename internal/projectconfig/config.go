// Package projectconfig provides the Config struct and loader for
// .veldbench.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file searched for by Load.
const FileName = ".veldbench.yaml"

// Default values for project configuration. New() references them;
// no other code should duplicate them.
const (
	DefaultResultsDir = "results"
	DefaultReportName = "strategic-analysis-report.md"
)

// PathsConfig holds directory paths for benchmark results.
type PathsConfig struct {
	Results string `yaml:"results,omitempty"`
}

// ReportConfig holds report output settings. Performance thresholds
// are intentionally not configurable.
type ReportConfig struct {
	Filename string `yaml:"filename,omitempty"`
	JUnit    string `yaml:"junit,omitempty"`
	Plain    *bool  `yaml:"plain,omitempty"`
}

// Config is the top-level configuration loaded from .veldbench.yaml.
type Config struct {
	Paths  PathsConfig  `yaml:"paths,omitempty"`
	Report ReportConfig `yaml:"report,omitempty"`
}

// New returns a Config with all hard-coded defaults populated.
func New() *Config {
	return &Config{
		Paths: PathsConfig{
			Results: DefaultResultsDir,
		},
		Report: ReportConfig{
			Filename: DefaultReportName,
			Plain:    boolPtr(false),
		},
	}
}

// Load finds .veldbench.yaml by walking up from startDir (max 10
// levels), unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*Config, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .veldbench.yaml (max
// 10 levels). Returns os.ErrNotExist if no config file is found and
// propagates real I/O errors instead of silently swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *Config) {
	if src.Paths.Results != "" {
		dst.Paths.Results = src.Paths.Results
	}
	if src.Report.Filename != "" {
		dst.Report.Filename = src.Report.Filename
	}
	if src.Report.JUnit != "" {
		dst.Report.JUnit = src.Report.JUnit
	}
	if src.Report.Plain != nil {
		dst.Report.Plain = src.Report.Plain
	}
}

func boolPtr(b bool) *bool {
	return &b
}
