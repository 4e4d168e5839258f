package domain

import (
	"fmt"
	"strings"
	"time"
)

// WeekPeriodLayout is the date layout of each half of a WeekPeriod key.
const WeekPeriodLayout = "2006-01-02"

// WeekPeriod identifies a Monday-to-Sunday week as "YYYY-MM-DD/YYYY-MM-DD".
// Keys compare lexically in chronological order.
type WeekPeriod string

// String returns the key text.
func (p WeekPeriod) String() string {
	return string(p)
}

// Start returns the Monday that opens the week.
func (p WeekPeriod) Start() (time.Time, error) {
	start, _, err := p.Bounds()
	return start, err
}

// End returns the Sunday that closes the week.
func (p WeekPeriod) End() (time.Time, error) {
	_, end, err := p.Bounds()
	return end, err
}

// Bounds parses both dates of the key.
func (p WeekPeriod) Bounds() (time.Time, time.Time, error) {
	first, last, ok := strings.Cut(string(p), "/")
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("week period %q has no separator", p)
	}
	start, err := time.Parse(WeekPeriodLayout, first)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("week period %q start: %w", p, err)
	}
	end, err := time.Parse(WeekPeriodLayout, last)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("week period %q end: %w", p, err)
	}
	return start, end, nil
}
