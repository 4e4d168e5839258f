// Package dataprocessing aligns the eruption and streaming datasets onto a
// shared weekly grid.
//
// # Architecture
//
// The package is organized leaf-first:
//
//  1. Dates: rebuilds calendar dates from partial year/month/day fields and
//     parses the chart week column
//  2. Periods: maps a date to its Monday-to-Sunday WeekPeriod key
//  3. Aggregators: VolcanoAggregator and SpotifyAggregator filter, coerce and
//     group each dataset by week
//  4. Merger: full outer join of both weekly tables with fixed fill values
//  5. Summary: descriptive statistics over the merged table
//
// # Data Flow
//
//	eruptions.csv → ReadEruptions → VolcanoAggregator ─┐
//	                                                   ├→ Merge → Summarize
//	spotify.csv   → ReadStreams   → SpotifyAggregator ─┘
//
// # Error Handling
//
// Row-level problems (missing year, impossible dates, malformed CSV rows) are
// never returned to the caller; the row is filtered and counted in Stats.
// A non-numeric VEI is coerced to 0 and the row is kept. Whole-file problems
// are returned as ErrSourceFileUnreadable.
//
// # Determinism
//
// Every table is sorted by period and every mode uses the same tie-break
// (earliest first occurrence), so identical input always yields identical
// output.
package dataprocessing
