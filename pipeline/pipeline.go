// SPDX-License-Identifier: MIT
//
// File: pipeline.go
// Role: Run and its stages.
// Concurrency:
//   - stats and network stages run in one errgroup and write disjoint
//     Report fields; graphs are read-only once built.

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/incarcnet/builder"
	"github.com/katalvlaran/incarcnet/centrality"
	"github.com/katalvlaran/incarcnet/charts"
	"github.com/katalvlaran/incarcnet/components"
	"github.com/katalvlaran/incarcnet/config"
	"github.com/katalvlaran/incarcnet/export"
	"github.com/katalvlaran/incarcnet/kcore"
	"github.com/katalvlaran/incarcnet/metrics"
	"github.com/katalvlaran/incarcnet/paths"
	"github.com/katalvlaran/incarcnet/record"
	"github.com/katalvlaran/incarcnet/stats"
)

// ErrNoRecords indicates the source produced no valid record.
var ErrNoRecords = errors.New("pipeline: no valid records")

// Output file names, relative to the exporter root.
const (
	GraphFile    = "graph.dot"
	ClustersFile = "clusters.dot"
)

// Metric variant labels.
const (
	variantRate       = "rate_difference"
	variantSimilarity = "similarity"
)

type runner struct {
	cfg      *config.Config
	logger   *zap.Logger
	metrics  *metrics.Collector
	source   record.Source
	exporter export.Exporter
	renderer export.Renderer
	stages   Stage
}

func newRunner(cfg *config.Config, opts ...Option) *runner {
	r := &runner{
		cfg:    cfg,
		logger: zap.NewNop(),
		stages: StageAll,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.source == nil {
		r.source = record.FileSource{Path: cfg.Input}
	}
	if r.exporter == nil {
		r.exporter = export.NewFileExporter(cfg.OutputDir)
	}
	if r.renderer == nil {
		r.renderer = export.Graphviz{Binary: cfg.Export.DotBinary}
	}
	if r.stages.has(StageAnalysis) || r.stages.has(StageExport) {
		r.stages |= StageGraphs
	}

	return r
}

// Run executes the configured stages over cfg and returns the report.
// A partially filled report is returned alongside any error.
func Run(ctx context.Context, cfg *config.Config, opts ...Option) (rep *Report, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("pipeline: nil config")
	}
	r := newRunner(cfg, opts...)
	rep = &Report{RunID: uuid.NewString(), Input: cfg.Input}
	log := r.logger.With(zap.String("run_id", rep.RunID))
	defer func() { r.metrics.RunFinished(err) }()

	log.Info("run started", zap.String("input", cfg.Input))

	if err := r.load(rep, log); err != nil {
		return rep, err
	}

	g, gctx := errgroup.WithContext(ctx)
	if r.stages.has(StageStats) {
		g.Go(func() error {
			defer r.metrics.Stage("stats")()
			rep.Stats = r.statistics(rep.Records, log)
			return nil
		})
	}
	if r.stages.has(StageGraphs) {
		g.Go(func() error {
			defer r.metrics.Stage("network")()
			nr, err := r.network(gctx, rep.Records, log)
			rep.Network = nr
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("run failed", zap.Error(err))
		return rep, err
	}

	if r.stages.has(StageExport) && cfg.Export.Enabled && rep.Network != nil {
		r.export(ctx, rep, log)
	}

	log.Info("run finished",
		zap.Int("records", len(rep.Records)),
		zap.Int("export_errors", len(rep.ExportErrors)),
	)

	return rep, nil
}

func (r *runner) load(rep *Report, log *zap.Logger) error {
	defer r.metrics.Stage("load")()

	ds, err := r.source.Load()
	if err != nil {
		return fmt.Errorf("pipeline: load: %w", err)
	}
	rep.Records, rep.Rejected = ds.Records, ds.Rejected
	r.metrics.ObserveLoad(len(ds.Records), len(ds.Rejected))

	for _, rj := range ds.Rejected {
		log.Debug("row rejected",
			zap.Int("line", rj.Line),
			zap.String("jurisdiction", rj.Raw.Jurisdiction),
			zap.Error(rj.Reason),
		)
	}
	if n := len(ds.Rejected); n > 0 {
		log.Warn("rows rejected during cleaning", zap.Int("rejected", n), zap.Int("kept", len(ds.Records)))
	}
	if len(ds.Records) == 0 {
		return ErrNoRecords
	}

	return nil
}

func (r *runner) statistics(recs []record.Record, log *zap.Logger) *StatsReport {
	s := &StatsReport{Failures: make(map[string]error)}
	fail := func(name string, err error) {
		s.Failures[name] = err
		log.Warn("statistic unavailable", zap.String("statistic", name), zap.Error(err))
	}

	if fit, err := stats.Linear(recs); err != nil {
		fail("linear", err)
	} else {
		s.Linear = &fit
	}
	if fit, err := stats.Quadratic(recs); err != nil {
		fail("quadratic", err)
	} else {
		s.Quadratic = &fit
	}
	if fit, err := stats.Logarithmic(recs); err != nil {
		fail("logarithmic", err)
	} else {
		s.Logarithmic = &fit
	}

	if c := r.cfg.Analysis.Compare; len(c) == 2 {
		s.Compare = c
		s.Comparison = record.Compare(recs, c[0], c[1])
		a := record.IncarcerationRates(record.Filter(recs, c[0]))
		b := record.IncarcerationRates(record.Filter(recs, c[1]))
		if res, err := stats.TTest(a, b); err != nil {
			fail("t-test "+strings.Join(c, " vs "), err)
		} else {
			s.TTest = &res
		}
	}

	s.MeanIncarcerationRate, s.MeanCrimeRate = stats.Averages(recs)
	s.Outliers = stats.Outliers(recs)
	s.Trends = stats.NationalTrends(recs)

	return s
}

func (r *runner) network(ctx context.Context, recs []record.Record, log *zap.Logger) (*NetworkReport, error) {
	gc, ac := r.cfg.Graph, r.cfg.Analysis
	n := &NetworkReport{
		DegreeMode: ac.DegreeMode,
		PathMode:   ac.PathMode,
		K:          ac.K,
		KCoreMode:  ac.KCoreMode,
	}

	var err error
	n.RateGraph, err = builder.RateDifference(recs, builder.WithRateGapThreshold(gc.RateGapThreshold))
	if err != nil {
		return nil, fmt.Errorf("pipeline: rate-difference graph: %w", err)
	}
	r.metrics.SetGraph(variantRate, n.RateGraph.VertexCount(), n.RateGraph.EdgeCount())

	n.SimilarityGraph, err = builder.Similarity(recs, builder.WithSimilarityThreshold(gc.SimilarityThreshold))
	if err != nil {
		return nil, fmt.Errorf("pipeline: similarity graph: %w", err)
	}
	r.metrics.SetGraph(variantSimilarity, n.SimilarityGraph.VertexCount(), n.SimilarityGraph.EdgeCount())

	log.Info("graphs built",
		zap.Int("rate_vertices", n.RateGraph.VertexCount()),
		zap.Int("rate_edges", n.RateGraph.EdgeCount()),
		zap.Int("similarity_vertices", n.SimilarityGraph.VertexCount()),
		zap.Int("similarity_edges", n.SimilarityGraph.EdgeCount()),
	)
	if !r.stages.has(StageAnalysis) {
		return n, nil
	}
	if err := ctx.Err(); err != nil {
		return n, err
	}

	if ac.DegreeMode == config.DegreeTotal {
		n.Centrality = centrality.TotalDegree(n.RateGraph)
	} else {
		n.Centrality = centrality.OutDegree(n.RateGraph)
	}
	if len(n.Centrality) == 0 {
		log.Warn("centrality is empty", zap.String("graph", variantRate))
	}
	n.Tiers = centrality.Classify(n.Centrality, centrality.WithThresholds(ac.Tiers.Medium, ac.Tiers.High))

	if err := ctx.Err(); err != nil {
		return n, err
	}
	n.Paths, err = paths.Summary(n.RateGraph)
	if err != nil {
		return n, fmt.Errorf("pipeline: shortest paths: %w", err)
	}
	if ac.PathMode == config.PathDistinct {
		n.AveragePath = n.Paths.Distinct()
	} else {
		n.AveragePath = n.Paths.Inclusive()
	}

	if ac.KCoreMode == config.KCorePeel {
		n.KCore = kcore.Peel(n.RateGraph, ac.K)
	} else {
		n.KCore = kcore.FilterByMinDegree(n.RateGraph, ac.K)
	}

	if err := ctx.Err(); err != nil {
		return n, err
	}
	n.Components, err = components.Connected(n.SimilarityGraph)
	if err != nil {
		return n, fmt.Errorf("pipeline: clusters: %w", err)
	}
	n.Clusters = components.Labels(n.SimilarityGraph, n.Components)

	strong, err := components.Strong(n.RateGraph)
	if err != nil {
		return n, fmt.Errorf("pipeline: strong components: %w", err)
	}
	n.Strong = components.Labels(n.RateGraph, strong)
	n.Analyzed = true

	log.Info("network analysed",
		zap.Float64("average_path", n.AveragePath),
		zap.Int("kcore", len(n.KCore)),
		zap.Int("clusters", len(n.Clusters)),
		zap.Int("strong_components", len(n.Strong)),
	)

	return n, nil
}

func (r *runner) export(ctx context.Context, rep *Report, log *zap.Logger) {
	defer r.metrics.Stage("export")()
	n := rep.Network

	fail := func(err error) {
		rep.ExportErrors = append(rep.ExportErrors, err)
		r.metrics.ExportFailed()
		log.Warn("export failed", zap.Error(err))
	}

	write := func(name string, data []byte, err error) {
		if err != nil {
			// Encoding errors are not I/O but still must not abort the run.
			fail(fmt.Errorf("pipeline: encode %s: %w", name, err))
			return
		}
		path, err := r.exporter.Export(name, data)
		if err != nil {
			fail(err)
			return
		}
		rep.Exported = append(rep.Exported, path)
		log.Info("exported", zap.String("path", path))

		if !r.cfg.Export.RenderPNG {
			return
		}
		png := strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
		if err := r.renderer.Render(ctx, path, png); err != nil {
			fail(err)
			return
		}
		rep.Exported = append(rep.Exported, png)
	}

	data, err := export.MarshalGraph(n.RateGraph, "rates")
	write(GraphFile, data, err)

	comps := n.Components
	if comps == nil {
		// Graph-only runs skip analysis; clusters are still worth drawing.
		comps, err = components.Connected(n.SimilarityGraph)
		if err != nil {
			fail(fmt.Errorf("pipeline: clusters: %w", err))
			return
		}
	}
	data, err = export.MarshalClusters(n.SimilarityGraph, comps, "clusters")
	write(ClustersFile, data, err)

	if r.cfg.Export.Charts {
		r.charts(rep, fail, log)
	}
}

// charts draws whatever the completed stages allow: centrality needs the
// analysis stage, the rest need statistics. Series with nothing to draw
// are skipped.
func (r *runner) charts(rep *Report, fail func(error), log *zap.Logger) {
	var build []func() (charts.Chart, error)
	if n := rep.Network; n != nil && n.Analyzed {
		build = append(build, func() (charts.Chart, error) { return charts.DegreeCentrality(n.Centrality) })
	}
	if s := rep.Stats; s != nil {
		recs := rep.Records
		build = append(build,
			func() (charts.Chart, error) { return charts.AverageRates(recs) },
			func() (charts.Chart, error) { return charts.NationalAverages(s.Trends) },
		)
		if len(s.Compare) == 2 {
			a, b := s.Compare[0], s.Compare[1]
			build = append(build,
				func() (charts.Chart, error) { return charts.Trends(recs, a) },
				func() (charts.Chart, error) { return charts.Trends(recs, b) },
				func() (charts.Chart, error) { return charts.CrimeRateComparison(recs, a, b) },
			)
		}
		if s.Logarithmic != nil {
			fit := *s.Logarithmic
			build = append(build, func() (charts.Chart, error) { return charts.DiminishingReturns(recs, fit) })
		}
	}

	for _, fn := range build {
		c, err := fn()
		if errors.Is(err, charts.ErrNoData) {
			log.Debug("chart skipped", zap.Error(err))
			continue
		}
		if err != nil {
			fail(fmt.Errorf("pipeline: chart: %w", err))
			continue
		}
		data, err := c.PNG()
		if err != nil {
			fail(fmt.Errorf("pipeline: chart %s: %w", c.File, err))
			continue
		}
		path, err := r.exporter.Export(c.File, data)
		if err != nil {
			fail(err)
			continue
		}
		rep.Exported = append(rep.Exported, path)
		log.Info("chart exported", zap.String("path", path))
	}
}
