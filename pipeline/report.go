package pipeline

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/incarcnet/centrality"
	"github.com/katalvlaran/incarcnet/core"
	"github.com/katalvlaran/incarcnet/paths"
	"github.com/katalvlaran/incarcnet/record"
	"github.com/katalvlaran/incarcnet/stats"
)

// Report is everything one run produced.
type Report struct {
	RunID    string
	Input    string
	Records  []record.Record
	Rejected []record.Rejected

	// Stats is nil when the stats stage did not run.
	Stats *StatsReport
	// Network is nil when the graphs were not built.
	Network *NetworkReport

	// Exported lists written files in the order they were produced.
	Exported []string
	// ExportErrors holds every I/O failure of the export stage; each
	// matches export.ErrIO.
	ExportErrors []error
}

// StatsReport holds the statistics stage outcome. A nil fit means the fit
// failed; its error is in Failures under the fit's name.
type StatsReport struct {
	Linear      *stats.LinearFit
	Quadratic   *stats.QuadraticFit
	Logarithmic *stats.LogFit

	// Compare names the jurisdictions of TTest and Comparison.
	Compare    []string
	TTest      *stats.TTestResult
	Comparison []record.YearPair

	MeanIncarcerationRate float64
	MeanCrimeRate         float64
	Outliers              []record.Record
	Trends                []stats.YearTotal

	Failures map[string]error
}

// NetworkReport holds both graphs and the metrics derived from them.
type NetworkReport struct {
	RateGraph       *core.Graph
	SimilarityGraph *core.Graph

	DegreeMode string
	Centrality []centrality.Score
	Tiers      centrality.Tiers

	PathMode    string
	Paths       paths.Stats
	AveragePath float64

	K         int
	KCoreMode string
	KCore     []string

	Components [][]core.Handle
	Clusters   [][]string

	// Strong groups rate-graph jurisdictions that reach each other.
	Strong [][]string

	// Analyzed is false when only the graphs were built.
	Analyzed bool
}

// maxListed caps per-item sections of the text report.
const maxListed = 15

// WriteText prints a human-readable summary of r.
func (r *Report) WriteText(w io.Writer) error {
	p := &printer{w: w}

	p.printf("Run %s\n", r.RunID)
	p.printf("Records: %d loaded, %d rejected", len(r.Records), len(r.Rejected))
	if r.Input != "" {
		p.printf(" (%s)", r.Input)
	}
	p.printf("\n")

	if r.Stats != nil {
		r.Stats.write(p)
	}
	if r.Network != nil {
		r.Network.write(p)
	}
	if len(r.Exported) > 0 || len(r.ExportErrors) > 0 {
		p.printf("\n== Export ==\n")
		for _, f := range r.Exported {
			p.printf("  wrote %s\n", f)
		}
		for _, err := range r.ExportErrors {
			p.printf("  failed: %v\n", err)
		}
	}

	return p.err
}

func (s *StatsReport) write(p *printer) {
	p.printf("\n== Statistics ==\n")
	p.printf("Average incarceration rate: %.2f per 100k\n", s.MeanIncarcerationRate)
	p.printf("Average crime rate:         %.2f per 100k\n", s.MeanCrimeRate)

	if s.Linear != nil {
		p.printf("Linear:      %s\n", s.Linear)
	}
	if s.Quadratic != nil {
		p.printf("Quadratic:   %s\n", s.Quadratic)
	}
	if s.Logarithmic != nil {
		p.printf("Logarithmic: %s\n", s.Logarithmic)
	}
	if s.TTest != nil && len(s.Compare) == 2 {
		t := s.TTest
		p.printf("T-test %s vs %s: t=%.4f p=%.4g df=%.0f (means %.2f / %.2f)\n",
			s.Compare[0], s.Compare[1], t.T, t.P, t.DF, t.MeanX, t.MeanY)
	}

	p.printf("Outliers (|z| > %.0f): %d\n", stats.OutlierZ, len(s.Outliers))
	for i, o := range s.Outliers {
		if i == maxListed {
			p.printf("  ... %d more\n", len(s.Outliers)-maxListed)
			break
		}
		p.printf("  %s %d: %.2f\n", o.Jurisdiction, o.Year, o.IncarcerationRate)
	}

	if len(s.Trends) > 0 {
		p.printf("National trends:\n")
		for _, t := range s.Trends {
			p.printf("  %d prisoners=%d crimes=%d\n", t.Year, t.Prisoners, t.Crimes)
		}
	}

	names := make([]string, 0, len(s.Failures))
	for name := range s.Failures {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p.printf("%s: unavailable (%v)\n", name, s.Failures[name])
	}
}

func (n *NetworkReport) write(p *printer) {
	p.printf("\n== Network ==\n")
	p.printf("Rate-difference graph: %d vertices, %d edges\n", n.RateGraph.VertexCount(), n.RateGraph.EdgeCount())
	p.printf("Similarity graph:      %d vertices, %d edges\n", n.SimilarityGraph.VertexCount(), n.SimilarityGraph.EdgeCount())
	if !n.Analyzed {
		return
	}

	top := append([]centrality.Score(nil), n.Centrality...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Degree > top[j].Degree })
	if len(top) > maxListed {
		top = top[:maxListed]
	}
	p.printf("Degree centrality (%s), top %d:\n", n.DegreeMode, len(top))
	for _, s := range top {
		p.printf("  %-20s %d\n", s.Label, s.Degree)
	}

	p.printf("Tiers: high=%d medium=%d low=%d\n", len(n.Tiers.High), len(n.Tiers.Medium), len(n.Tiers.Low))
	if len(n.Tiers.High) > 0 {
		p.printf("  high: %s\n", strings.Join(n.Tiers.High, ", "))
	}

	p.printf("Average shortest path (%s): %.4f  [inclusive %.4f, distinct %.4f]\n",
		n.PathMode, n.AveragePath, n.Paths.Inclusive(), n.Paths.Distinct())

	p.printf("%d-filter (%s): %d jurisdictions\n", n.K, n.KCoreMode, len(n.KCore))
	if len(n.KCore) > 0 {
		p.printf("  %s\n", strings.Join(n.KCore, ", "))
	}

	largest := 0
	for _, c := range n.Strong {
		largest = max(largest, len(c))
	}
	p.printf("Strongly connected groups: %d (largest %d)\n", len(n.Strong), largest)

	p.printf("Clusters: %d\n", len(n.Clusters))
	for i, c := range n.Clusters {
		if i == maxListed {
			p.printf("  ... %d more\n", len(n.Clusters)-maxListed)
			break
		}
		p.printf("  %d (%d): %s\n", i+1, len(c), strings.Join(dedupe(c), ", "))
	}
}

// dedupe collapses repeated labels, keeping first occurrences.
func dedupe(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := labels[:0:0]
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

// printer remembers the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
