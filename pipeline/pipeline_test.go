package pipeline_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/incarcnet/config"
	"github.com/katalvlaran/incarcnet/core"
	"github.com/katalvlaran/incarcnet/export"
	"github.com/katalvlaran/incarcnet/metrics"
	"github.com/katalvlaran/incarcnet/pipeline"
	"github.com/katalvlaran/incarcnet/record"
)

type staticSource struct {
	ds  *record.Dataset
	err error
}

func (s staticSource) Load() (*record.Dataset, error) { return s.ds, s.err }

// memExporter keeps documents in memory and returns the name as the path.
type memExporter struct {
	files map[string][]byte
	fail  map[string]bool
}

func newMemExporter(fail ...string) *memExporter {
	x := &memExporter{files: map[string][]byte{}, fail: map[string]bool{}}
	for _, f := range fail {
		x.fail[f] = true
	}
	return x
}

func (x *memExporter) Export(name string, data []byte) (string, error) {
	if x.fail[name] {
		return "", &export.IOError{Op: "write", Path: name, Err: os.ErrPermission}
	}
	x.files[name] = data
	return name, nil
}

type fakeRenderer struct {
	calls [][2]string
	err   error
}

func (r *fakeRenderer) Render(_ context.Context, in, out string) error {
	r.calls = append(r.calls, [2]string{in, out})
	return r.err
}

// records: A and B within 50 of each other, C far away.
//
//	rate graph:       A→B ×3, B→A ×1, C isolated
//	similarity graph: {A01, B01, A02, B02} and {C01, C02}
func records() []record.Record {
	mk := func(j string, year int, inc, crime float64) record.Record {
		return record.Record{
			Jurisdiction: j, Year: year,
			PrisonerCount: int(inc * 10), StatePopulation: 1000000, ViolentCrimeTotal: int(crime * 10),
			IncarcerationRate: inc, CrimeRate: crime,
		}
	}
	return []record.Record{
		mk("A", 2001, 100, 300),
		mk("B", 2001, 120, 310),
		mk("C", 2001, 400, 900),
		mk("A", 2002, 110, 305),
		mk("B", 2002, 130, 200),
		mk("C", 2002, 420, 880),
	}
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Analysis.K = 1
	cfg.Analysis.Compare = []string{"A", "B"}
	return cfg
}

func source() pipeline.Option {
	return pipeline.WithSource(staticSource{ds: &record.Dataset{
		Records:  records(),
		Rejected: []record.Rejected{{Line: 9, Reason: record.ErrZeroDenominator}},
	}})
}

func TestRun_Full(t *testing.T) {
	x, rd, m := newMemExporter(), &fakeRenderer{}, metrics.New()

	rep, err := pipeline.Run(context.Background(), testConfig(),
		source(), pipeline.WithExporter(x), pipeline.WithRenderer(rd), pipeline.WithMetrics(m))
	require.NoError(t, err)
	require.NotEmpty(t, rep.RunID)

	n := rep.Network
	require.NotNil(t, n)
	assert.True(t, n.Analyzed)
	assert.Equal(t, 3, n.RateGraph.VertexCount())
	assert.Equal(t, 4, n.RateGraph.EdgeCount())
	require.Len(t, n.Centrality, 3)
	assert.Equal(t, []int{3, 1, 0}, []int{n.Centrality[0].Degree, n.Centrality[1].Degree, n.Centrality[2].Degree})
	assert.Equal(t, []string{"A", "B", "C"}, n.Tiers.Low)

	assert.InDelta(t, 30.0, n.Paths.Sum, 1e-9)
	assert.Equal(t, 5, n.Paths.ReachablePairs)
	assert.InDelta(t, 6.0, n.AveragePath, 1e-9)
	assert.Equal(t, []string{"A", "B"}, n.KCore)

	assert.Equal(t, [][]core.Handle{{0, 1, 3, 4}, {2, 5}}, n.Components)
	assert.Equal(t, [][]string{{"A", "B", "A", "B"}, {"C", "C"}}, n.Clusters)
	assert.Equal(t, [][]string{{"A", "B"}, {"C"}}, n.Strong)

	s := rep.Stats
	require.NotNil(t, s)
	assert.Empty(t, s.Failures)
	require.NotNil(t, s.TTest)
	assert.InDelta(t, 105.0, s.TTest.MeanX, 1e-9)
	assert.InDelta(t, 125.0, s.TTest.MeanY, 1e-9)
	assert.Len(t, s.Comparison, 2)
	assert.Len(t, s.Trends, 2)

	assert.Equal(t, []string{
		"graph.dot", "graph.png", "clusters.dot", "clusters.png",
		"degree_centrality.png", "rates.png", "national_averages.png",
		"a_trends_over_time.png", "b_trends_over_time.png", "a_b_crime_rates_comparison.png",
		"diminishing_returns.png",
	}, rep.Exported)
	assert.Empty(t, rep.ExportErrors)
	assert.Len(t, rd.calls, 2, "charts are PNG already and skip the renderer")
	assert.True(t, bytes.HasPrefix(x.files["degree_centrality.png"], []byte("\x89PNG")))
	assert.Contains(t, string(x.files["clusters.dot"]), "color=red")

	assert.Equal(t, 6.0, testutil.ToFloat64(m.RecordsLoaded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RecordsRejected))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.GraphEdges.WithLabelValues("rate_difference")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("ok")))
}

func TestRun_Modes(t *testing.T) {
	cfg := testConfig()
	cfg.Analysis.DegreeMode = config.DegreeTotal
	cfg.Analysis.PathMode = config.PathDistinct
	cfg.Analysis.KCoreMode = config.KCorePeel
	cfg.Analysis.K = 4
	cfg.Export.Enabled = false

	rep, err := pipeline.Run(context.Background(), cfg, source())
	require.NoError(t, err)

	n := rep.Network
	assert.Equal(t, 4, n.Centrality[0].Degree, "A: 3 out + 1 in")
	assert.InDelta(t, 15.0, n.AveragePath, 1e-9)
	assert.Equal(t, []string{"A", "B"}, n.KCore)
	assert.Empty(t, rep.Exported)
}

func TestRun_ExportFailuresAreCollected(t *testing.T) {
	x := newMemExporter(pipeline.GraphFile)
	rd := &fakeRenderer{err: &export.IOError{Op: "render", Path: "clusters.png", Err: export.ErrRendererUnavailable}}
	m := metrics.New()
	cfg := testConfig()
	cfg.Export.Charts = false

	rep, err := pipeline.Run(context.Background(), cfg,
		source(), pipeline.WithExporter(x), pipeline.WithRenderer(rd), pipeline.WithMetrics(m))
	require.NoError(t, err, "export failures never fail the run")

	require.Len(t, rep.ExportErrors, 2)
	for _, e := range rep.ExportErrors {
		assert.ErrorIs(t, e, export.ErrIO)
	}
	assert.ErrorIs(t, rep.ExportErrors[1], export.ErrRendererUnavailable)
	assert.Equal(t, []string{"clusters.dot"}, rep.Exported)
	assert.NotNil(t, rep.Network.Clusters, "analysis results survive export failure")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ExportFailures))
}

func TestRun_Charts(t *testing.T) {
	cfg := testConfig()
	cfg.Export.RenderPNG = false
	cfg.Analysis.Compare = []string{"A", "Nowhere"}
	x, m := newMemExporter("rates.png"), metrics.New()

	rep, err := pipeline.Run(context.Background(), cfg, source(),
		pipeline.WithExporter(x), pipeline.WithMetrics(m))
	require.NoError(t, err)

	// Nowhere has no records: its trends chart is skipped, the comparison
	// still draws A.
	assert.Contains(t, rep.Exported, "a_trends_over_time.png")
	assert.Contains(t, rep.Exported, "a_nowhere_crime_rates_comparison.png")
	assert.NotContains(t, rep.Exported, "nowhere_trends_over_time.png")

	require.Len(t, rep.ExportErrors, 1)
	assert.ErrorIs(t, rep.ExportErrors[0], export.ErrIO)
	assert.NotContains(t, rep.Exported, "rates.png")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ExportFailures))

	cfg.Export.Charts = false
	rep, err = pipeline.Run(context.Background(), cfg, source(), pipeline.WithExporter(newMemExporter()))
	require.NoError(t, err)
	assert.Equal(t, []string{"graph.dot", "clusters.dot"}, rep.Exported)
}

func TestRun_NoRecords(t *testing.T) {
	m := metrics.New()
	_, err := pipeline.Run(context.Background(), testConfig(),
		pipeline.WithSource(staticSource{ds: &record.Dataset{}}), pipeline.WithMetrics(m))
	assert.ErrorIs(t, err, pipeline.ErrNoRecords)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues("error")))

	boom := errors.New("disk gone")
	_, err = pipeline.Run(context.Background(), testConfig(), pipeline.WithSource(staticSource{err: boom}))
	assert.ErrorIs(t, err, boom)

	_, err = pipeline.Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestRun_Stages(t *testing.T) {
	rep, err := pipeline.Run(context.Background(), testConfig(), source(),
		pipeline.WithStages(pipeline.StageStats), pipeline.WithExporter(newMemExporter()))
	require.NoError(t, err)
	assert.NotNil(t, rep.Stats)
	assert.Nil(t, rep.Network)
	assert.Empty(t, rep.Exported)

	cfg := testConfig()
	cfg.Export.RenderPNG = false
	rep, err = pipeline.Run(context.Background(), cfg, source(),
		pipeline.WithStages(pipeline.StageExport), pipeline.WithExporter(newMemExporter()))
	require.NoError(t, err)
	assert.Nil(t, rep.Stats)
	require.NotNil(t, rep.Network)
	assert.False(t, rep.Network.Analyzed)
	assert.Equal(t, []string{"graph.dot", "clusters.dot"}, rep.Exported)
}

func TestRun_FromFiles(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	csv := "jurisdiction,year,prisoner_count,state_population,violent_crime_total\n" +
		"Ohio,2001,1000,1000000,3000\n" +
		"Iowa,2001,1200,1000000,3100\n" +
		"Utah,2001,,1000000,0\n"
	require.NoError(t, os.WriteFile(input, []byte(csv), 0o600))

	cfg := testConfig()
	cfg.Input = input
	cfg.OutputDir = filepath.Join(dir, "out")
	cfg.Analysis.Compare = nil
	cfg.Export.RenderPNG = false

	rep, err := pipeline.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Len(t, rep.Records, 2)
	assert.Len(t, rep.Rejected, 1)
	require.Empty(t, rep.ExportErrors)

	b, err := os.ReadFile(filepath.Join(cfg.OutputDir, pipeline.GraphFile))
	require.NoError(t, err)
	assert.Contains(t, string(b), "0 -> 1 [label=20];")
	assert.FileExists(t, filepath.Join(cfg.OutputDir, pipeline.ClustersFile))
}

func TestReport_WriteText(t *testing.T) {
	rep, err := pipeline.Run(context.Background(), testConfig(), source(),
		pipeline.WithExporter(newMemExporter(pipeline.ClustersFile)), pipeline.WithRenderer(&fakeRenderer{}))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf))
	out := buf.String()

	for _, want := range []string{
		"Records: 6 loaded, 1 rejected",
		"== Statistics ==",
		"T-test A vs B:",
		"Rate-difference graph: 3 vertices, 4 edges",
		"Degree centrality (out)",
		"Average shortest path (inclusive): 6.0000",
		"1-filter (threshold): 2 jurisdictions",
		"Strongly connected groups: 2 (largest 2)",
		"Clusters: 2",
		"1 (4): A, B",
		"wrote graph.dot",
		"failed: export: write clusters.dot",
	} {
		assert.Contains(t, out, want)
	}
}
