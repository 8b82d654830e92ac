package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvData = `jurisdiction,year,prisoner_count,state_population,violent_crime_total
Ohio,2001,1000,1000000,3000
Iowa,2001,1200,1000000,3100
Ohio,2002,1100,1000000,3050
Iowa,2002,1300,1000000,2000
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0o600))
	return path
}

func TestStatsCommand(t *testing.T) {
	out, err := execute(t, "stats", "--input", writeInput(t), "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "Records: 4 loaded, 0 rejected")
	assert.Contains(t, out, "== Statistics ==")
	assert.NotContains(t, out, "== Network ==")
}

func TestGraphCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "incarcnet.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("export:\n  render_png: false\nlog:\n  level: error\n"), 0o600))

	metricsPath := filepath.Join(dir, "m.prom")
	out, err := execute(t, "graph", "--config", cfgPath, "--input", writeInput(t),
		"--output-dir", filepath.Join(dir, "out"), "--metrics-file", metricsPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Rate-difference graph: 2 vertices")
	assert.FileExists(t, filepath.Join(dir, "out", "graph.dot"))
	assert.FileExists(t, filepath.Join(dir, "out", "clusters.dot"))

	b, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(b), "incarcnet_records_loaded_total 4")
}

func TestAnalyzeCommand_BadK(t *testing.T) {
	_, err := execute(t, "analyze", "--input", writeInput(t), "--k", "-2", "--log-level", "error")
	assert.Error(t, err)
}

func TestCompareCommand(t *testing.T) {
	out, err := execute(t, "compare", "ohio", "Iowa", "--input", writeInput(t), "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "2001")
	assert.Contains(t, out, "2002")
	assert.Contains(t, out, "t=-2.8284")

	_, err = execute(t, "compare", "Ohio", "--log-level", "error")
	assert.Error(t, err, "two jurisdictions required")

	_, err = execute(t, "compare", "Guam", "Mars", "--input", writeInput(t), "--log-level", "error")
	assert.Error(t, err)
}
