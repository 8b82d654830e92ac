// Package charts draws the dataset and analysis results as PNG charts with
// gonum.org/v1/plot.
//
// Every constructor returns a Chart: a file name plus a ready plot. Encoding
// is separate (Chart.PNG) so callers can hand the bytes to any
// export.Exporter.
//
//	DegreeCentrality     bar chart of degree per jurisdiction
//	AverageRates         mean incarceration vs mean crime rate
//	NationalAverages     per-year national means, both rates
//	Trends               per-year rates of one jurisdiction
//	CrimeRateComparison  crime rate of two jurisdictions by year
//	DiminishingReturns   crime vs incarceration scatter with a log fit
//
// Constructors return ErrNoData when there is nothing to draw.
package charts
