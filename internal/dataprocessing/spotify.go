package dataprocessing

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	apperrors "vsdash/internal/errors"
	"vsdash/pkg/contracts/domain"
)

// SpotifyResult is the output of one SpotifyAggregator run.
type SpotifyResult struct {
	Cleaned []domain.CleanStreamRecord
	Weekly  []domain.WeeklyStreamAggregate
	Stats   Stats
}

// SpotifyAggregator filters chart records to a year window and groups them
// by week.
type SpotifyAggregator struct {
	logger *slog.Logger
	window YearWindow
}

// NewSpotifyAggregator creates an aggregator for the given year window.
func NewSpotifyAggregator(logger *slog.Logger, window YearWindow) *SpotifyAggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpotifyAggregator{
		logger: logger.With(slog.String("dataset", "spotify")),
		window: window,
	}
}

// Aggregate parses week dates and computes per-week total streams, distinct
// track count and the most common primary genre.
func (a *SpotifyAggregator) Aggregate(ctx context.Context, records []domain.RawStreamRecord) SpotifyResult {
	result := SpotifyResult{Stats: Stats{Read: len(records)}}

	for _, raw := range records {
		weekDate, err := ParseStreamWeek(raw.Week)
		if err != nil {
			result.Stats.InvalidDate++
			a.logger.DebugContext(ctx, "dropping chart row",
				slog.Int("line", raw.Line),
				slog.String("reason", err.Error()))
			continue
		}
		if !a.window.Contains(weekDate.Year()) {
			result.Stats.OutOfRange++
			continue
		}

		streams, ok := parseStreams(raw.Streams)
		if !ok {
			result.Stats.Coerced++
		}

		result.Cleaned = append(result.Cleaned, domain.CleanStreamRecord{
			Raw:          raw,
			WeekDate:     weekDate,
			Period:       WeekOf(weekDate),
			Streams:      streams,
			PrimaryGenre: PrimaryGenre(raw.ArtistGenres),
		})
	}
	result.Stats.Kept = len(result.Cleaned)
	result.Weekly = groupStreams(result.Cleaned)

	if len(result.Weekly) == 0 {
		a.logger.WarnContext(ctx, "chart data produced no weekly periods",
			slog.String("error", apperrors.ErrEmptyAggregate.Error()),
			slog.Int("start_year", a.window.Start),
			slog.Int("end_year", a.window.End))
	}

	a.logger.InfoContext(ctx, "processed chart entries",
		slog.Int("entries", result.Stats.Kept),
		slog.Int("weekly_periods", len(result.Weekly)),
		slog.Any("stats", result.Stats))

	return result
}

// PrimaryGenre returns the text before the first comma, trimmed. Empty
// values normalize to domain.UnknownGenre.
func PrimaryGenre(genres string) string {
	first, _, _ := strings.Cut(genres, ",")
	first = strings.TrimSpace(first)
	if first == "" {
		return domain.UnknownGenre
	}
	return first
}

// parseStreams coerces a play count. Non-numeric and negative values become 0.
func parseStreams(s string) (int64, bool) {
	f, ok := parseFinite(s)
	if !ok || f < 0 || f > math.MaxInt64 {
		return 0, false
	}
	return int64(math.Round(f)), true
}

type streamAccumulator struct {
	total  int64
	tracks map[string]struct{}
	genres *modeCounter
}

func groupStreams(rows []domain.CleanStreamRecord) []domain.WeeklyStreamAggregate {
	groups := make(map[domain.WeekPeriod]*streamAccumulator)
	for _, row := range rows {
		acc, ok := groups[row.Period]
		if !ok {
			acc = &streamAccumulator{
				tracks: make(map[string]struct{}),
				genres: newModeCounter(),
			}
			groups[row.Period] = acc
		}
		acc.total += row.Streams
		if id := strings.TrimSpace(row.Raw.TrackID); id != "" {
			acc.tracks[id] = struct{}{}
		}
		acc.genres.Add(row.PrimaryGenre)
	}

	weekly := make([]domain.WeeklyStreamAggregate, 0, len(groups))
	for period, acc := range groups {
		weekly = append(weekly, domain.WeeklyStreamAggregate{
			Period:       period,
			TotalStreams: acc.total,
			TrackCount:   len(acc.tracks),
			TopGenre:     acc.genres.Mode(domain.UnknownGenre),
		})
	}
	sort.Slice(weekly, func(i, j int) bool {
		return weekly[i].Period < weekly[j].Period
	})
	return weekly
}
