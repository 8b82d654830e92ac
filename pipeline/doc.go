// Package pipeline wires ingestion, statistics, graph analysis and export
// into one run and assembles the Report printed by the CLI.
//
// A run has four stages:
//
//  1. load      – records come from a record.Source; no valid record is ErrNoRecords.
//  2. stats     – regressions, t-test, outliers and trends. Individual failures
//     are kept in the report, never fatal.
//  3. network   – rate-difference and similarity graphs, centrality, paths,
//     k-filter, tiers and clusters. Runs beside stats in an errgroup.
//  4. export    – DOT files and optional PNGs. I/O failures are collected in
//     Report.ExportErrors and do not fail the run.
//
// Watch re-runs a callback whenever the input file settles after a write.
package pipeline
