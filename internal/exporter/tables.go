package exporter

import (
	"strconv"
	"strings"

	"vsdash/internal/dataprocessing"
	"vsdash/pkg/contracts/domain"
)

// Column names appended to the cleaned source tables.
const (
	ColEruptionDate = "eruption_date"
	ColEruptionWeek = "week"
	ColWeekDate     = "week_date"
	ColWeekPeriod   = "week_period"
	ColPrimaryGenre = "primary_genre"
)

// WeeklyVolcanoHeader is the column order of the weekly eruption table.
var WeeklyVolcanoHeader = []string{"period", "eruption_count", "avg_vei", "max_vei"}

// WeeklySpotifyHeader is the column order of the weekly chart table.
var WeeklySpotifyHeader = []string{"period", "total_streams", "track_count", "top_genre"}

// CleanedVolcanoTable re-emits every source column with the normalized date
// parts and VEI substituted, followed by the reconstructed date and its week.
func CleanedVolcanoTable(sourceHeader []string, rows []domain.CleanEruptionRecord) ([]string, [][]string) {
	header := cleanHeader(sourceHeader, ColEruptionDate, ColEruptionWeek)
	cols := columnIndex(sourceHeader)

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		rec := padFields(row.Raw.Fields, len(sourceHeader))
		setColumn(rec, cols, dataprocessing.ColStartYear, strconv.Itoa(row.Year))
		setColumn(rec, cols, dataprocessing.ColStartMonth, strconv.Itoa(row.Month))
		setColumn(rec, cols, dataprocessing.ColStartDay, strconv.Itoa(row.Day))
		setColumn(rec, cols, dataprocessing.ColVEI, dataprocessing.FormatFloat(row.VEI))
		rec = append(rec, row.Date.Format(dataprocessing.DateLayout), row.Period.String())
		records = append(records, rec)
	}
	return header, records
}

// CleanedSpotifyTable re-emits every source column with streams coerced,
// followed by the parsed week date, its period and the primary genre.
func CleanedSpotifyTable(sourceHeader []string, rows []domain.CleanStreamRecord) ([]string, [][]string) {
	header := cleanHeader(sourceHeader, ColWeekDate, ColWeekPeriod, ColPrimaryGenre)
	cols := columnIndex(sourceHeader)

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		rec := padFields(row.Raw.Fields, len(sourceHeader))
		setColumn(rec, cols, dataprocessing.ColStreams, formatInt(row.Streams))
		rec = append(rec,
			row.WeekDate.Format(dataprocessing.DateLayout),
			row.Period.String(),
			row.PrimaryGenre)
		records = append(records, rec)
	}
	return header, records
}

// WeeklyVolcanoRecords renders the weekly eruption aggregate.
func WeeklyVolcanoRecords(rows []domain.WeeklyVolcanoAggregate) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Period.String(),
			strconv.Itoa(r.EruptionCount),
			dataprocessing.FormatFloat(r.AvgVEI),
			dataprocessing.FormatFloat(r.MaxVEI),
		})
	}
	return records
}

// WeeklySpotifyRecords renders the weekly chart aggregate.
func WeeklySpotifyRecords(rows []domain.WeeklyStreamAggregate) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Period.String(),
			formatInt(r.TotalStreams),
			strconv.Itoa(r.TrackCount),
			r.TopGenre,
		})
	}
	return records
}

// MergedRecords renders the merged weekly table in dataprocessing.MergedHeader order.
func MergedRecords(rows []domain.MergedWeeklyRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Period.String(),
			strconv.Itoa(r.EruptionCount),
			dataprocessing.FormatFloat(r.AvgVEI),
			dataprocessing.FormatFloat(r.MaxVEI),
			formatInt(r.TotalStreams),
			strconv.Itoa(r.TrackCount),
			r.TopGenre,
		})
	}
	return records
}

func cleanHeader(source []string, extra ...string) []string {
	header := make([]string, 0, len(source)+len(extra))
	for i, name := range source {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		header = append(header, name)
	}
	return append(header, extra...)
}

func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	return idx
}

// padFields copies fields, truncated or padded with blanks to n columns.
func padFields(fields []string, n int) []string {
	rec := make([]string, n, n+3)
	copy(rec, fields)
	return rec
}

func setColumn(rec []string, cols map[string]int, name, value string) {
	if i, ok := cols[name]; ok && i < len(rec) {
		rec[i] = value
	}
}
