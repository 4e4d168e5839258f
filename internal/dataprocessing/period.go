package dataprocessing

import (
	"time"

	"vsdash/pkg/contracts/domain"
)

// WeekOf returns the Monday-to-Sunday period containing t. Only the calendar
// date of t matters; clock time and location are ignored.
func WeekOf(t time.Time) domain.WeekPeriod {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 6)
	return domain.WeekPeriod(start.Format(domain.WeekPeriodLayout) + "/" + end.Format(domain.WeekPeriodLayout))
}
