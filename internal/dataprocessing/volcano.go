package dataprocessing

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	apperrors "vsdash/internal/errors"
	"vsdash/pkg/contracts/domain"
)

// VolcanoResult is the output of one VolcanoAggregator run.
type VolcanoResult struct {
	Cleaned []domain.CleanEruptionRecord
	Weekly  []domain.WeeklyVolcanoAggregate
	Stats   Stats
}

// VolcanoAggregator filters eruption records to a year window and groups
// them by week.
type VolcanoAggregator struct {
	logger *slog.Logger
	window YearWindow
}

// NewVolcanoAggregator creates an aggregator for the given year window.
func NewVolcanoAggregator(logger *slog.Logger, window YearWindow) *VolcanoAggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &VolcanoAggregator{
		logger: logger.With(slog.String("dataset", "volcano")),
		window: window,
	}
}

// Aggregate normalizes records and computes per-week eruption count, mean
// VEI and max VEI. Weeks without surviving records are absent from the
// result.
func (a *VolcanoAggregator) Aggregate(ctx context.Context, records []domain.RawEruptionRecord) VolcanoResult {
	result := VolcanoResult{Stats: Stats{Read: len(records)}}

	for _, raw := range records {
		clean, err := a.normalize(raw)
		if err != nil {
			a.countDrop(&result.Stats, err)
			a.logger.DebugContext(ctx, "dropping eruption row",
				slog.Int("line", raw.Line),
				slog.String("reason", err.Error()))
			continue
		}
		if _, ok := parseSeverity(raw.VEI); !ok {
			result.Stats.Coerced++
			a.logger.DebugContext(ctx, "coercing eruption severity",
				slog.Int("line", raw.Line),
				slog.String("vei", raw.VEI),
				slog.String("reason", apperrors.ErrNonNumericSeverity.Error()))
		}
		result.Cleaned = append(result.Cleaned, clean)
	}
	result.Stats.Kept = len(result.Cleaned)
	result.Weekly = groupEruptions(result.Cleaned)

	if len(result.Weekly) == 0 {
		a.logger.WarnContext(ctx, "eruption data produced no weekly periods",
			slog.String("error", apperrors.ErrEmptyAggregate.Error()),
			slog.Int("start_year", a.window.Start),
			slog.Int("end_year", a.window.End))
	}

	a.logger.InfoContext(ctx, "processed eruption records",
		slog.Int("eruptions", result.Stats.Kept),
		slog.Int("weekly_periods", len(result.Weekly)),
		slog.Any("stats", result.Stats))

	return result
}

// errOutOfRange is internal; out-of-window rows are a filter, not an error class.
var errOutOfRange = errors.New("year outside window")

func (a *VolcanoAggregator) normalize(raw domain.RawEruptionRecord) (domain.CleanEruptionRecord, error) {
	year, ok := parseWholeNumber(raw.StartYear)
	if !ok {
		return domain.CleanEruptionRecord{}, apperrors.ErrMissingYear
	}
	if !a.window.Contains(year) {
		return domain.CleanEruptionRecord{}, errOutOfRange
	}

	month, day := defaultPart(raw.StartMonth), defaultPart(raw.StartDay)
	date, err := composeDate(year, month, day)
	if err != nil {
		return domain.CleanEruptionRecord{}, err
	}

	vei, _ := parseSeverity(raw.VEI)

	return domain.CleanEruptionRecord{
		Raw:    raw,
		Year:   year,
		Month:  month,
		Day:    day,
		VEI:    vei,
		Date:   date,
		Period: WeekOf(date),
	}, nil
}

// parseSeverity coerces a VEI value. Non-numeric and negative values become 0.
func parseSeverity(s string) (float64, bool) {
	f, ok := parseFinite(s)
	if !ok || f < 0 {
		return 0, false
	}
	return f, true
}

func (a *VolcanoAggregator) countDrop(stats *Stats, err error) {
	switch {
	case errors.Is(err, apperrors.ErrMissingYear):
		stats.MissingYear++
	case errors.Is(err, apperrors.ErrInvalidDate):
		stats.InvalidDate++
	case errors.Is(err, errOutOfRange):
		stats.OutOfRange++
	}
}

type eruptionAccumulator struct {
	count int
	sum   float64
	max   float64
}

func groupEruptions(rows []domain.CleanEruptionRecord) []domain.WeeklyVolcanoAggregate {
	groups := make(map[domain.WeekPeriod]*eruptionAccumulator)
	for _, row := range rows {
		acc, ok := groups[row.Period]
		if !ok {
			acc = &eruptionAccumulator{max: row.VEI}
			groups[row.Period] = acc
		}
		acc.count++
		acc.sum += row.VEI
		if row.VEI > acc.max {
			acc.max = row.VEI
		}
	}

	weekly := make([]domain.WeeklyVolcanoAggregate, 0, len(groups))
	for period, acc := range groups {
		weekly = append(weekly, domain.WeeklyVolcanoAggregate{
			Period:        period,
			EruptionCount: acc.count,
			AvgVEI:        acc.sum / float64(acc.count),
			MaxVEI:        acc.max,
		})
	}
	sort.Slice(weekly, func(i, j int) bool {
		return weekly[i].Period < weekly[j].Period
	})
	return weekly
}
