package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yasmramos/veld-bench/internal/projectconfig"
)

func TestInitCreatesWorkspace(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bench")

	out, err := runCLI(t, "init", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Initialized benchmark analysis workspace in "+dir)

	cfgPath := filepath.Join(dir, projectconfig.FileName)
	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# veldbench project configuration.")

	info, err := os.Stat(filepath.Join(dir, projectconfig.DefaultResultsDir))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInitConfigLoadsWithDefaults(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "init", dir)
	require.NoError(t, err)

	cfg, err := projectconfig.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, projectconfig.DefaultResultsDir, cfg.Paths.Results)
	assert.Equal(t, projectconfig.DefaultReportName, cfg.Report.Filename)
}

func TestInitRefusesExistingConfig(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "init", dir)
	require.NoError(t, err)

	_, err = runCLI(t, "init", dir)
	require.Error(t, err)
	assert.ErrorContains(t, err, "already exists")
}
