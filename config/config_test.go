package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(kv map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := kv[k]
		return v, ok
	}
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50.0, cfg.Graph.RateGapThreshold)
	assert.Equal(t, 0.7, cfg.Graph.SimilarityThreshold)
	assert.Equal(t, 500, cfg.Analysis.Tiers.Medium)
	assert.Equal(t, 1000, cfg.Analysis.Tiers.High)
	assert.Equal(t, DegreeOut, cfg.Analysis.DegreeMode)
	assert.True(t, cfg.Export.Charts)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "incarcnet.yaml")
	doc := `
input: data.csv
graph:
  rate_gap_threshold: 25
analysis:
  k: 5
  kcore_mode: peel
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := load(path, env(map[string]string{EnvK: "7", EnvOutputDir: "/tmp/out"}))
	require.NoError(t, err)

	assert.Equal(t, "data.csv", cfg.Input)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, 25.0, cfg.Graph.RateGapThreshold)
	// Untouched keys keep their defaults.
	assert.Equal(t, 0.7, cfg.Graph.SimilarityThreshold)
	assert.Equal(t, 7, cfg.Analysis.K, "env wins over file")
	assert.Equal(t, KCorePeel, cfg.Analysis.KCoreMode)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "absent.yaml"), env(nil))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = load("", env(map[string]string{EnvK: "three"}))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = load("", env(map[string]string{EnvLogLevel: "LOUD"}))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDecode(t *testing.T) {
	cfg := Default()
	require.NoError(t, Decode(strings.NewReader(""), cfg), "empty document")

	err := Decode(strings.NewReader("graph:\n  rate_gapp: 3\n"), cfg)
	assert.Error(t, err, "unknown key")

	require.NoError(t, Decode(strings.NewReader("export:\n  charts: false\n"), cfg))
	assert.False(t, cfg.Export.Charts)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no input", func(c *Config) { c.Input = "" }},
		{"zero gap", func(c *Config) { c.Graph.RateGapThreshold = 0 }},
		{"similarity one", func(c *Config) { c.Graph.SimilarityThreshold = 1 }},
		{"negative k", func(c *Config) { c.Analysis.K = -1 }},
		{"bad degree mode", func(c *Config) { c.Analysis.DegreeMode = "in" }},
		{"bad path mode", func(c *Config) { c.Analysis.PathMode = "harmonic" }},
		{"inverted tiers", func(c *Config) { c.Analysis.Tiers.High = c.Analysis.Tiers.Medium }},
		{"one comparator", func(c *Config) { c.Analysis.Compare = []string{"Ohio"} }},
		{"blank comparator", func(c *Config) { c.Analysis.Compare = []string{"Ohio", ""} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	cfg := Default()
	cfg.Analysis.Compare = nil
	assert.NoError(t, cfg.Validate(), "compare is optional")
}
