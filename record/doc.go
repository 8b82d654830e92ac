// Package record turns raw per-state, per-year rows into validated Records.
//
// A Record carries the raw counts plus two derived rates per 100 000
// population:
//
//	incarceration = prisoner_count      / state_population * 100000
//	crime         = violent_crime_total / state_population * 100000
//
// Rows with a missing or zero population or violent-crime total never become
// Records; Load returns them as Rejected entries with the reason attached, so
// callers can report them without aborting the run.
//
// Expected CSV header (column order free, names case-insensitive):
//
//	jurisdiction,year,prisoner_count,state_population,violent_crime_total
//
// Numeric cells may carry thousands separators ("1,234") and years may be
// quoted. Population and crime totals may be fractional and are rounded.
package record
