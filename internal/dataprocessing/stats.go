package dataprocessing

import "log/slog"

// YearWindow is an inclusive range of calendar years.
type YearWindow struct {
	Start int
	End   int
}

// DefaultYearWindow covers 2017 through 2021.
var DefaultYearWindow = YearWindow{Start: 2017, End: 2021}

// Contains reports whether year lies in the window, both ends inclusive.
func (w YearWindow) Contains(year int) bool {
	return year >= w.Start && year <= w.End
}

// Stats counts what happened to the rows of one dataset.
type Stats struct {
	Read        int
	Malformed   int
	MissingYear int
	InvalidDate int
	OutOfRange  int
	Coerced     int
	Kept        int
}

// Dropped is the number of rows filtered out for any reason.
func (s Stats) Dropped() int {
	return s.Malformed + s.MissingYear + s.InvalidDate + s.OutOfRange
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("read", s.Read),
		slog.Int("kept", s.Kept),
		slog.Int("malformed", s.Malformed),
		slog.Int("missing_year", s.MissingYear),
		slog.Int("invalid_date", s.InvalidDate),
		slog.Int("out_of_range", s.OutOfRange),
		slog.Int("coerced", s.Coerced),
	)
}

// DropReasons returns the non-zero drop counters keyed by reason.
func (s Stats) DropReasons() map[string]int {
	reasons := map[string]int{}
	for name, n := range map[string]int{
		"malformed":    s.Malformed,
		"missing_year": s.MissingYear,
		"invalid_date": s.InvalidDate,
		"out_of_range": s.OutOfRange,
	} {
		if n > 0 {
			reasons[name] = n
		}
	}
	return reasons
}
