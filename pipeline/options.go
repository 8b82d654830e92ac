package pipeline

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/incarcnet/export"
	"github.com/katalvlaran/incarcnet/metrics"
	"github.com/katalvlaran/incarcnet/record"
)

// Stage selects parts of a run.
type Stage uint8

const (
	// StageStats runs the statistics collaborators.
	StageStats Stage = 1 << iota
	// StageGraphs builds both graphs.
	StageGraphs
	// StageAnalysis computes centrality, paths, k-filter, tiers and clusters.
	// It implies StageGraphs.
	StageAnalysis
	// StageExport writes DOT files and renders PNGs. It implies StageGraphs.
	StageExport

	// StageAll is the full analysis.
	StageAll = StageStats | StageGraphs | StageAnalysis | StageExport
)

func (s Stage) has(x Stage) bool { return s&x != 0 }

// Option customises a run.
type Option func(*runner)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics attaches a collector. Nil disables metrics.
func WithMetrics(c *metrics.Collector) Option {
	return func(r *runner) { r.metrics = c }
}

// WithSource replaces the CSV file named by Config.Input.
func WithSource(s record.Source) Option {
	return func(r *runner) { r.source = s }
}

// WithExporter replaces the FileExporter rooted at Config.OutputDir.
func WithExporter(x export.Exporter) Option {
	return func(r *runner) { r.exporter = x }
}

// WithRenderer replaces the Graphviz renderer.
func WithRenderer(rd export.Renderer) Option {
	return func(r *runner) { r.renderer = rd }
}

// WithStages restricts the run to the given stages. StageAll by default.
func WithStages(s Stage) Option {
	return func(r *runner) { r.stages = s }
}
