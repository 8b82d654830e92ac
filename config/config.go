// Package config loads incarcnet settings.
//
// Precedence, lowest first: Default(), an optional YAML file, INCARCNET_*
// environment variables, then whatever the CLI overrides after Load returns.
// The merged value is checked with go-playground/validator struct tags.
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/incarcnet/builder"
	"github.com/katalvlaran/incarcnet/centrality"
)

// ErrInvalid indicates a configuration that failed validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Analysis modes.
const (
	DegreeOut   = "out"
	DegreeTotal = "total"

	KCoreThreshold = "threshold"
	KCorePeel      = "peel"

	PathInclusive = "inclusive"
	PathDistinct  = "distinct"
)

// Config is the full runtime configuration.
type Config struct {
	Input       string         `yaml:"input" validate:"required"`
	OutputDir   string         `yaml:"output_dir" validate:"required"`
	Graph       GraphConfig    `yaml:"graph"`
	Analysis    AnalysisConfig `yaml:"analysis"`
	Export      ExportConfig   `yaml:"export"`
	Log         LogConfig      `yaml:"log"`
	MetricsFile string         `yaml:"metrics_file"`
}

// GraphConfig holds the edge-admission thresholds of both graph variants.
type GraphConfig struct {
	RateGapThreshold    float64 `yaml:"rate_gap_threshold" validate:"gt=0"`
	SimilarityThreshold float64 `yaml:"similarity_threshold" validate:"gte=0,lt=1"`
}

// AnalysisConfig selects the network metrics and their parameters.
type AnalysisConfig struct {
	K          int        `yaml:"k" validate:"gte=0"`
	DegreeMode string     `yaml:"degree_mode" validate:"oneof=out total"`
	KCoreMode  string     `yaml:"kcore_mode" validate:"oneof=threshold peel"`
	PathMode   string     `yaml:"path_mode" validate:"oneof=inclusive distinct"`
	Tiers      TierConfig `yaml:"tiers"`
	// Compare names the two jurisdictions of the t-test; empty disables it.
	Compare []string `yaml:"compare" validate:"omitempty,len=2,dive,required"`
}

// TierConfig bounds the centrality tiers.
type TierConfig struct {
	Medium int `yaml:"medium" validate:"gte=0"`
	High   int `yaml:"high" validate:"gtfield=Medium"`
}

// ExportConfig controls DOT export, PNG rendering and charts.
type ExportConfig struct {
	Enabled   bool   `yaml:"enabled"`
	RenderPNG bool   `yaml:"render_png"`
	DotBinary string `yaml:"dot_binary"`
	// Charts draws the statistics and centrality charts as PNG files.
	Charts bool `yaml:"charts"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input:     "crime_and_incarceration_by_state.csv",
		OutputDir: "output",
		Graph: GraphConfig{
			RateGapThreshold:    builder.RateGapThreshold,
			SimilarityThreshold: builder.SimilarityThreshold,
		},
		Analysis: AnalysisConfig{
			K:          3,
			DegreeMode: DegreeOut,
			KCoreMode:  KCoreThreshold,
			PathMode:   PathInclusive,
			Tiers: TierConfig{
				Medium: centrality.MediumThreshold,
				High:   centrality.HighThreshold,
			},
			Compare: []string{"Arizona", "Massachusetts"},
		},
		Export: ExportConfig{
			Enabled:   true,
			RenderPNG: true,
			DotBinary: "dot",
			Charts:    true,
		},
		Log: LogConfig{Level: "info"},
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validate checks every struct constraint of c.
func (c *Config) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("%w: %s fails %q (value %v)", ErrInvalid, f.Namespace(), f.Tag(), f.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}
