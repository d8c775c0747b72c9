package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResultBytesValid(t *testing.T) {
	data := []byte(`{
		"benchmarks": [
			{"benchmark": "x.concurrent-lookup", "primaryMetric": {"score": 320.5, "scoreUnit": "ops/us"}}
		]
	}`)

	errs := ValidateResultBytes(data)

	assert.Empty(t, errs)
}

func TestValidateResultBytesEmptyList(t *testing.T) {
	errs := ValidateResultBytes([]byte(`{"benchmarks": []}`))

	assert.Empty(t, errs)
}

func TestValidateResultBytesErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing benchmarks key", `{"jmhVersion": "1.37"}`},
		{"missing primaryMetric", `{"benchmarks": [{"benchmark": "x"}]}`},
		{"missing score", `{"benchmarks": [{"benchmark": "x", "primaryMetric": {"scoreUnit": "ns/op"}}]}`},
		{"wrong score type", `{"benchmarks": [{"benchmark": "x", "primaryMetric": {"score": "fast"}}]}`},
		{"empty benchmark name", `{"benchmarks": [{"benchmark": "", "primaryMetric": {"score": 1}}]}`},
		{"not JSON", `{"benchmarks": [`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateResultBytes([]byte(tt.data))
			assert.NotEmpty(t, errs)
		})
	}
}

func TestValidateResultFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"benchmarks": []}`), 0o644))

	errs, err := ValidateResultFile(path)

	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestValidateResultFileMissing(t *testing.T) {
	_, err := ValidateResultFile(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading result file")
}
