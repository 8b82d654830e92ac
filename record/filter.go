package record

import (
	"sort"
	"strings"
)

// Filter returns the records of jurisdiction, compared case-insensitively,
// in input order.
func Filter(records []Record, jurisdiction string) []Record {
	var out []Record
	for _, r := range records {
		if strings.EqualFold(r.Jurisdiction, jurisdiction) {
			out = append(out, r)
		}
	}

	return out
}

// Jurisdictions returns the distinct jurisdiction names in first-seen order.
func Jurisdictions(records []Record) []string {
	seen := make(map[string]bool, len(records))
	var out []string
	for _, r := range records {
		if !seen[r.Jurisdiction] {
			seen[r.Jurisdiction] = true
			out = append(out, r.Jurisdiction)
		}
	}

	return out
}

// YearPair lines up two jurisdictions' records for the same year.
// A side is nil when that jurisdiction has no record for Year.
type YearPair struct {
	Year int
	A, B *Record
}

// Compare joins the records of a and b by year, ascending. When a
// jurisdiction has several rows for one year the first is used.
func Compare(records []Record, a, b string) []YearPair {
	byYear := make(map[int]*YearPair)
	put := func(recs []Record, first bool) {
		for i := range recs {
			r := recs[i]
			p, ok := byYear[r.Year]
			if !ok {
				p = &YearPair{Year: r.Year}
				byYear[r.Year] = p
			}
			if first && p.A == nil {
				p.A = &r
			}
			if !first && p.B == nil {
				p.B = &r
			}
		}
	}
	put(Filter(records, a), true)
	put(Filter(records, b), false)

	out := make([]YearPair, 0, len(byYear))
	for _, p := range byYear {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })

	return out
}

// IncarcerationRates projects records onto their incarceration rate.
func IncarcerationRates(records []Record) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.IncarcerationRate
	}

	return out
}

// CrimeRates projects records onto their crime rate.
func CrimeRates(records []Record) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.CrimeRate
	}

	return out
}
