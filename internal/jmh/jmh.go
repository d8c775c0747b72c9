// Package jmh loads JMH-style JSON benchmark result files into a
// minimal typed form: a list of named entries with a primary score.
package jmh

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/klauspost/compress/gzip"
)

// Metric is the primary measurement attached to a benchmark entry.
type Metric struct {
	Score float64 `mapstructure:"score"`
}

// Entry is a single named measurement from a result file.
type Entry struct {
	Name          string `mapstructure:"benchmark"`
	PrimaryMetric Metric `mapstructure:"primaryMetric"`
}

// Result holds the entries parsed from one result file. The zero
// value means the file was missing or malformed.
type Result struct {
	Entries []Entry

	// HasBenchmarks records whether the document carried a
	// benchmarks list at all, distinguishing an empty list from a
	// missing or unparseable file.
	HasBenchmarks bool
}

// Find returns the first entry whose name contains substr, in file
// order. Lookup is case-sensitive; when several entries share the
// substring the earliest one wins.
func (r Result) Find(substr string) (Entry, bool) {
	for _, e := range r.Entries {
		if strings.Contains(e.Name, substr) {
			return e, true
		}
	}
	return Entry{}, false
}

// Load reads a JMH JSON result file. A missing or unparseable file
// degrades to an empty Result with a warning so the analysis can
// continue for the remaining categories.
func Load(path string) Result {
	data, err := readFile(path)
	if err != nil {
		slog.Warn("benchmark results not found", "path", path, "error", err)
		return Result{}
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Warn("invalid JSON in benchmark results", "path", path, "error", err)
		return Result{}
	}

	raw, ok := doc["benchmarks"]
	if !ok {
		slog.Debug("no benchmarks list in result file", "path", path)
		return Result{}
	}

	var entries []Entry
	if err := mapstructure.Decode(raw, &entries); err != nil {
		slog.Warn("unexpected benchmarks shape", "path", path, "error", err)
		return Result{}
	}
	return Result{Entries: entries, HasBenchmarks: true}
}

// readFile reads path, transparently gunzipping *.gz files. When a
// plain path does not exist a sibling .gz is tried, so archived CI
// results work without renaming.
func readFile(path string) ([]byte, error) {
	if strings.HasSuffix(path, ".gz") {
		return readGzip(path)
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if gz, gzErr := readGzip(path + ".gz"); gzErr == nil {
			return gz, nil
		}
	}
	return data, err
}

func readGzip(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close() //nolint:errcheck
	return io.ReadAll(zr)
}
