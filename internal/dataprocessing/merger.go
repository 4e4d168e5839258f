package dataprocessing

import (
	"sort"

	"vsdash/pkg/contracts/domain"
)

// Merge joins the weekly tables on period. A week present on only one side
// gets zero counts and domain.UnknownGenre for the missing side. The result
// is sorted by period with exactly one row per period. If a period repeats
// on one side, its last aggregate replaces the earlier one as a whole.
func Merge(volcano []domain.WeeklyVolcanoAggregate, streams []domain.WeeklyStreamAggregate) []domain.MergedWeeklyRow {
	rows := make(map[domain.WeekPeriod]*domain.MergedWeeklyRow, len(volcano)+len(streams))

	row := func(p domain.WeekPeriod) *domain.MergedWeeklyRow {
		r, ok := rows[p]
		if !ok {
			r = &domain.MergedWeeklyRow{Period: p, TopGenre: domain.UnknownGenre}
			rows[p] = r
		}
		return r
	}

	for _, v := range volcano {
		r := row(v.Period)
		r.EruptionCount = v.EruptionCount
		r.AvgVEI = v.AvgVEI
		r.MaxVEI = v.MaxVEI
	}
	for _, s := range streams {
		r := row(s.Period)
		r.TotalStreams = s.TotalStreams
		r.TrackCount = s.TrackCount
		r.TopGenre = s.TopGenre
	}

	merged := make([]domain.MergedWeeklyRow, 0, len(rows))
	for _, r := range rows {
		merged = append(merged, *r)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Period < merged[j].Period
	})
	return merged
}
