package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/incarcnet/record"
)

// OutlierZ is the absolute z-score above which a record is an outlier.
const OutlierZ = 3.0

// Outliers returns the records whose incarceration rate lies more than
// OutlierZ population standard deviations from the mean, in input order.
// A sample with zero spread has no outliers.
func Outliers(records []record.Record) []record.Record {
	if len(records) == 0 {
		return nil
	}
	mean, std := stat.PopMeanStdDev(record.IncarcerationRates(records), nil)
	if std == 0 || math.IsNaN(std) {
		return nil
	}

	var out []record.Record
	for _, r := range records {
		if math.Abs(r.IncarcerationRate-mean) > OutlierZ*std {
			out = append(out, r)
		}
	}

	return out
}

// Averages returns the mean incarceration and crime rates; both are 0 for
// an empty slice.
func Averages(records []record.Record) (incarceration, crime float64) {
	if len(records) == 0 {
		return 0, 0
	}

	return stat.Mean(record.IncarcerationRates(records), nil), stat.Mean(record.CrimeRates(records), nil)
}

// YearTotal aggregates every jurisdiction for one year.
type YearTotal struct {
	Year      int
	Prisoners int
	Crimes    int
	// Reports is the number of records contributing to the year.
	Reports int
	// MeanIncarcerationRate and MeanCrimeRate are unweighted means over
	// the contributing records.
	MeanIncarcerationRate float64
	MeanCrimeRate         float64
}

// NationalTrends sums prisoners and violent crimes per year, ascending.
func NationalTrends(records []record.Record) []YearTotal {
	byYear := make(map[int]*YearTotal)
	for _, r := range records {
		t, ok := byYear[r.Year]
		if !ok {
			t = &YearTotal{Year: r.Year}
			byYear[r.Year] = t
		}
		t.Prisoners += r.PrisonerCount
		t.Crimes += r.ViolentCrimeTotal
		t.Reports++
		t.MeanIncarcerationRate += r.IncarcerationRate
		t.MeanCrimeRate += r.CrimeRate
	}

	out := make([]YearTotal, 0, len(byYear))
	for _, t := range byYear {
		t.MeanIncarcerationRate /= float64(t.Reports)
		t.MeanCrimeRate /= float64(t.Reports)
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })

	return out
}
