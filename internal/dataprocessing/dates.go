package dataprocessing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	apperrors "vsdash/internal/errors"
)

const (
	// DateLayout is the canonical layout of reconstructed dates.
	DateLayout = "2006-01-02"
	// StreamWeekLayout parses the chart week column, month/day/year.
	// Single-digit month and day are accepted as well as zero-padded ones.
	StreamWeekLayout = "1/2/2006"
)

// NormalizeEruptionDate rebuilds a calendar date from partial fields.
// A missing or non-numeric year yields ErrMissingYear. Missing or
// non-numeric month and day default to 1. Impossible dates yield
// ErrInvalidDate and are never clamped.
func NormalizeEruptionDate(year, month, day string) (time.Time, error) {
	y, ok := parseWholeNumber(year)
	if !ok {
		return time.Time{}, apperrors.ErrMissingYear
	}
	return composeDate(y, defaultPart(month), defaultPart(day))
}

// ParseStreamWeek parses the chart week column.
func ParseStreamWeek(s string) (time.Time, error) {
	t, err := time.Parse(StreamWeekLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, s)
	}
	return t, nil
}

func composeDate(year, month, day int) (time.Time, error) {
	if year < 1 || year > 9999 {
		return time.Time{}, fmt.Errorf("%w: year %d", apperrors.ErrInvalidDate, year)
	}
	s := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidDate, s)
	}
	return t, nil
}

// defaultPart returns the integral value of s, or 1 when s is absent or
// not a whole number.
func defaultPart(s string) int {
	if v, ok := parseWholeNumber(s); ok {
		return v
	}
	return 1
}

// parseWholeNumber accepts integers and integral floats such as "3.0",
// which spreadsheet exports commonly produce for integer columns.
func parseWholeNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// parseFinite parses s as a finite float. NaN and infinities are rejected.
func parseFinite(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
