package domain

// MergedWeeklyRow is one row of the outer join of both weekly tables.
type MergedWeeklyRow struct {
	Period        WeekPeriod `json:"period"`
	EruptionCount int        `json:"eruption_count"`
	AvgVEI        float64    `json:"avg_vei"`
	MaxVEI        float64    `json:"max_vei"`
	TotalStreams  int64      `json:"total_streams"`
	TrackCount    int        `json:"track_count"`
	TopGenre      string     `json:"top_genre"`
}

// HasEruptions reports whether any eruption started in the week.
func (r MergedWeeklyRow) HasEruptions() bool {
	return r.EruptionCount > 0
}

// NoGenre is reported as the most common genre of an empty table.
const NoGenre = "N/A"

// Summary holds descriptive statistics over the merged weekly table.
type Summary struct {
	TotalPeriods         int     `json:"total_periods"`
	PeriodsWithEruptions int     `json:"periods_with_eruptions"`
	TotalEruptions       int     `json:"total_eruptions"`
	MeanAvgVEI           float64 `json:"mean_avg_vei"`
	MaxVEI               float64 `json:"max_vei"`
	TotalStreams         int64   `json:"total_streams"`
	MeanWeeklyStreams    float64 `json:"mean_weekly_streams"`
	MostCommonGenre      string  `json:"most_common_genre"`
}
