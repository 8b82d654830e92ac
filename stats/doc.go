// Package stats holds the descriptive and inferential statistics that sit
// beside the network analysis: regression fits of crime rate on
// incarceration rate, a pooled two-sample t-test, z-score outliers and
// per-year national totals.
//
// The heavy lifting is delegated to gonum (stat, stat/distuv, mat). Every
// fit takes records in and returns a small value type out; nothing here
// prints, plots or logs.
//
// Errors:
//
//	ErrInsufficientData – too few observations (or a zero-variance regressor) for the requested fit
//	ErrSingular         – the quadratic design matrix is rank deficient
package stats
