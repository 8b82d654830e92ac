// SPDX-License-Identifier: MIT
//
// File: charts.go
// Role: chart constructors over records, trends and centrality scores.

package charts

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/incarcnet/centrality"
	"github.com/katalvlaran/incarcnet/record"
	"github.com/katalvlaran/incarcnet/stats"
)

// ErrNoData indicates an empty input series.
var ErrNoData = errors.New("charts: no data")

// Default canvas sizes.
const (
	Width  = 8 * vg.Inch
	Height = 6 * vg.Inch
)

// Chart is a plot and the file name it is meant to be saved under.
type Chart struct {
	File          string
	Plot          *plot.Plot
	Width, Height vg.Length
}

// PNG encodes c as a PNG image.
func (c Chart) PNG() ([]byte, error) {
	wt, err := c.Plot.WriterTo(c.Width, c.Height, "png")
	if err != nil {
		return nil, fmt.Errorf("charts: encode %s: %w", c.File, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("charts: encode %s: %w", c.File, err)
	}

	return buf.Bytes(), nil
}

func newPlot(title, x, y string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = x
	p.Y.Label.Text = y
	p.Legend.Top = true

	return p
}

// DegreeCentrality draws one bar per score, highest first.
func DegreeCentrality(scores []centrality.Score) (Chart, error) {
	if len(scores) == 0 {
		return Chart{}, fmt.Errorf("%w: degree centrality", ErrNoData)
	}
	sorted := make([]centrality.Score, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Degree > sorted[j].Degree })

	values := make(plotter.Values, len(sorted))
	labels := make([]string, len(sorted))
	for i, s := range sorted {
		values[i] = float64(s.Degree)
		labels[i] = s.Label
	}

	p := newPlot("Degree Centrality by State", "States", "Degree Centrality")
	bars, err := plotter.NewBarChart(values, vg.Points(10))
	if err != nil {
		return Chart{}, fmt.Errorf("charts: degree centrality: %w", err)
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter

	return Chart{File: "degree_centrality.png", Plot: p, Width: 16 * vg.Inch, Height: 12 * vg.Inch}, nil
}

// AverageRates draws the mean incarceration and crime rates side by side.
func AverageRates(records []record.Record) (Chart, error) {
	if len(records) == 0 {
		return Chart{}, fmt.Errorf("%w: average rates", ErrNoData)
	}
	inc, crime := stats.Averages(records)

	p := newPlot("Average Rates", "", "Rate per 100,000")
	bars, err := plotter.NewBarChart(plotter.Values{inc, crime}, vg.Points(60))
	if err != nil {
		return Chart{}, fmt.Errorf("charts: average rates: %w", err)
	}
	bars.Color = plotutil.Color(1)
	p.Add(bars)
	p.NominalX("Incarceration Rate", "Crime Rate")

	return Chart{File: "rates.png", Plot: p, Width: Width, Height: Height}, nil
}

// NationalAverages draws the per-year mean incarceration and crime rates.
func NationalAverages(trends []stats.YearTotal) (Chart, error) {
	if len(trends) == 0 {
		return Chart{}, fmt.Errorf("%w: national averages", ErrNoData)
	}
	inc := make(plotter.XYs, len(trends))
	crime := make(plotter.XYs, len(trends))
	for i, t := range trends {
		inc[i] = plotter.XY{X: float64(t.Year), Y: t.MeanIncarcerationRate}
		crime[i] = plotter.XY{X: float64(t.Year), Y: t.MeanCrimeRate}
	}

	title := fmt.Sprintf("National Averages (%d-%d)", trends[0].Year, trends[len(trends)-1].Year)
	p := newPlot(title, "Year", "Rate")
	if err := plotutil.AddLinePoints(p, "Incarceration Rate", inc, "Crime Rate", crime); err != nil {
		return Chart{}, fmt.Errorf("charts: national averages: %w", err)
	}

	return Chart{File: "national_averages.png", Plot: p, Width: Width, Height: Height}, nil
}

// Trends draws both rates of jurisdiction by year. The first record of a
// year wins when a year repeats.
func Trends(records []record.Record, jurisdiction string) (Chart, error) {
	recs := byYear(record.Filter(records, jurisdiction))
	if len(recs) == 0 {
		return Chart{}, fmt.Errorf("%w: trends for %q", ErrNoData, jurisdiction)
	}
	inc := make(plotter.XYs, len(recs))
	crime := make(plotter.XYs, len(recs))
	for i, r := range recs {
		inc[i] = plotter.XY{X: float64(r.Year), Y: r.IncarcerationRate}
		crime[i] = plotter.XY{X: float64(r.Year), Y: r.CrimeRate}
	}

	p := newPlot("Trends Over Time: "+jurisdiction, "Year", "Rate")
	if err := plotutil.AddLinePoints(p, "Incarceration Rate", inc, "Crime Rate", crime); err != nil {
		return Chart{}, fmt.Errorf("charts: trends: %w", err)
	}

	return Chart{File: fileSlug(jurisdiction) + "_trends_over_time.png", Plot: p, Width: Width, Height: Height}, nil
}

// CrimeRateComparison draws the crime rate of a and b by year. A
// jurisdiction without records is left out; both missing is ErrNoData.
func CrimeRateComparison(records []record.Record, a, b string) (Chart, error) {
	var series []any
	for _, j := range []string{a, b} {
		recs := byYear(record.Filter(records, j))
		if len(recs) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(recs))
		for i, r := range recs {
			xys[i] = plotter.XY{X: float64(r.Year), Y: r.CrimeRate}
		}
		series = append(series, j, xys)
	}
	if len(series) == 0 {
		return Chart{}, fmt.Errorf("%w: crime rates of %q and %q", ErrNoData, a, b)
	}

	p := newPlot(fmt.Sprintf("Crime Rates: %s vs. %s", a, b), "Year", "Crime Rate")
	if err := plotutil.AddLinePoints(p, series...); err != nil {
		return Chart{}, fmt.Errorf("charts: crime rate comparison: %w", err)
	}
	file := fmt.Sprintf("%s_%s_crime_rates_comparison.png", fileSlug(a), fileSlug(b))

	return Chart{File: file, Plot: p, Width: Width, Height: Height}, nil
}

// DiminishingReturns scatters crime rate against incarceration rate and
// overlays fit over [0, max incarceration rate].
func DiminishingReturns(records []record.Record, fit stats.LogFit) (Chart, error) {
	if len(records) == 0 {
		return Chart{}, fmt.Errorf("%w: diminishing returns", ErrNoData)
	}
	pts := make(plotter.XYs, len(records))
	maxX := 0.0
	for i, r := range records {
		pts[i] = plotter.XY{X: r.IncarcerationRate, Y: r.CrimeRate}
		maxX = math.Max(maxX, r.IncarcerationRate)
	}

	p := newPlot("Diminishing Marginal Returns: Crime Rate vs Incarceration Rate",
		"Incarceration Rate", "Crime Rate")
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return Chart{}, fmt.Errorf("charts: diminishing returns: %w", err)
	}
	scatter.Color = plotutil.Color(1)

	curve := plotter.NewFunction(fit.Predict)
	curve.XMin, curve.XMax = 0, maxX
	curve.Samples = 200
	curve.Color = plotutil.Color(0)
	curve.Width = vg.Points(2)

	p.Add(scatter, curve)
	p.Legend.Add("Records", scatter)
	p.Legend.Add(fit.String(), curve)

	return Chart{File: "diminishing_returns.png", Plot: p, Width: Width, Height: Height}, nil
}

// byYear orders recs by year, keeping the first record per year.
func byYear(recs []record.Record) []record.Record {
	seen := make(map[int]bool, len(recs))
	out := make([]record.Record, 0, len(recs))
	for _, r := range recs {
		if !seen[r.Year] {
			seen[r.Year] = true
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })

	return out
}

// fileSlug lower-cases s and replaces runs of non-alphanumerics with '_'.
func fileSlug(s string) string {
	var b strings.Builder
	under := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			under = false
			continue
		}
		if !under && b.Len() > 0 {
			b.WriteByte('_')
			under = true
		}
	}

	return strings.TrimSuffix(b.String(), "_")
}
