package charts_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/incarcnet/centrality"
	"github.com/katalvlaran/incarcnet/charts"
	"github.com/katalvlaran/incarcnet/record"
	"github.com/katalvlaran/incarcnet/stats"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func records() []record.Record {
	return []record.Record{
		{Jurisdiction: "Arizona", Year: 2002, IncarcerationRate: 520, CrimeRate: 550},
		{Jurisdiction: "Arizona", Year: 2001, IncarcerationRate: 500, CrimeRate: 540},
		{Jurisdiction: "New York", Year: 2001, IncarcerationRate: 350, CrimeRate: 600},
		{Jurisdiction: "New York", Year: 2002, IncarcerationRate: 330, CrimeRate: 580},
		{Jurisdiction: "Arizona", Year: 2002, IncarcerationRate: 999, CrimeRate: 999},
	}
}

func TestCharts_EncodePNG(t *testing.T) {
	recs := records()
	fit, err := stats.Logarithmic(recs)
	require.NoError(t, err)

	build := []struct {
		name string
		file string
		fn   func() (charts.Chart, error)
	}{
		{"degree", "degree_centrality.png", func() (charts.Chart, error) {
			return charts.DegreeCentrality([]centrality.Score{{Label: "Arizona", Degree: 1}, {Label: "New York", Degree: 3}})
		}},
		{"rates", "rates.png", func() (charts.Chart, error) { return charts.AverageRates(recs) }},
		{"national", "national_averages.png", func() (charts.Chart, error) {
			return charts.NationalAverages(stats.NationalTrends(recs))
		}},
		{"trends", "new_york_trends_over_time.png", func() (charts.Chart, error) { return charts.Trends(recs, "New York") }},
		{"comparison", "arizona_new_york_crime_rates_comparison.png", func() (charts.Chart, error) {
			return charts.CrimeRateComparison(recs, "Arizona", "New York")
		}},
		{"diminishing", "diminishing_returns.png", func() (charts.Chart, error) { return charts.DiminishingReturns(recs, fit) }},
	}
	for _, tc := range build {
		t.Run(tc.name, func(t *testing.T) {
			c, err := tc.fn()
			require.NoError(t, err)
			assert.Equal(t, tc.file, c.File)

			b, err := c.PNG()
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(b, pngMagic), "not a PNG")
		})
	}
}

func TestCharts_Titles(t *testing.T) {
	c, err := charts.NationalAverages(stats.NationalTrends(records()))
	require.NoError(t, err)
	assert.Equal(t, "National Averages (2001-2002)", c.Plot.Title.Text)

	c, err = charts.CrimeRateComparison(records(), "Arizona", "Utah")
	require.NoError(t, err, "one missing jurisdiction still draws the other")
	assert.Equal(t, "Crime Rates: Arizona vs. Utah", c.Plot.Title.Text)
}

func TestCharts_NoData(t *testing.T) {
	_, err := charts.DegreeCentrality(nil)
	assert.ErrorIs(t, err, charts.ErrNoData)

	_, err = charts.AverageRates(nil)
	assert.ErrorIs(t, err, charts.ErrNoData)

	_, err = charts.NationalAverages(nil)
	assert.ErrorIs(t, err, charts.ErrNoData)

	_, err = charts.Trends(records(), "Utah")
	assert.ErrorIs(t, err, charts.ErrNoData)

	_, err = charts.CrimeRateComparison(records(), "Utah", "Ohio")
	assert.ErrorIs(t, err, charts.ErrNoData)

	_, err = charts.DiminishingReturns(nil, stats.LogFit{})
	assert.ErrorIs(t, err, charts.ErrNoData)
}
