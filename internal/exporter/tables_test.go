package exporter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vsdash/pkg/contracts/domain"
)

func TestCleanedVolcanoTable(t *testing.T) {
	header := []string{"\ufeffvolcano_name", "eruption_number", "Start_Year", "start_month", "start_day", "vei"}
	rows := []domain.CleanEruptionRecord{{
		Raw: domain.RawEruptionRecord{
			Fields: []string{"Etna", "22354", "2021.0", "", "", "N/A"},
		},
		Year:   2021,
		Month:  1,
		Day:    1,
		VEI:    0,
		Date:   time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		Period: "2020-12-28/2021-01-03",
	}}

	gotHeader, records := CleanedVolcanoTable(header, rows)

	assert.Equal(t, []string{
		"volcano_name", "eruption_number", "Start_Year", "start_month", "start_day", "vei",
		"eruption_date", "week",
	}, gotHeader)
	require.Len(t, records, 1)
	assert.Equal(t, []string{
		"Etna", "22354", "2021", "1", "1", "0.0", "2021-01-01", "2020-12-28/2021-01-03",
	}, records[0])
	assert.Equal(t, "2021.0", rows[0].Raw.Fields[2], "source fields are not modified")
}

func TestCleanedVolcanoTable_ShortRowIsPadded(t *testing.T) {
	header := []string{"start_year", "start_month", "vei", "notes"}
	rows := []domain.CleanEruptionRecord{{
		Raw:    domain.RawEruptionRecord{Fields: []string{"2019"}},
		Year:   2019,
		Month:  1,
		Day:    1,
		VEI:    2,
		Date:   time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
		Period: "2018-12-31/2019-01-06",
	}}

	_, records := CleanedVolcanoTable(header, rows)

	require.Len(t, records, 1)
	assert.Equal(t, []string{"2019", "1", "2.0", "", "2019-01-01", "2018-12-31/2019-01-06"}, records[0])
}

func TestCleanedSpotifyTable(t *testing.T) {
	header := []string{"title", "week", "streams", "artist_genres"}
	rows := []domain.CleanStreamRecord{{
		Raw:          domain.RawStreamRecord{Fields: []string{"Song", "1/7/2021", "abc", "pop, rock"}},
		WeekDate:     time.Date(2021, 1, 7, 0, 0, 0, 0, time.UTC),
		Period:       "2021-01-04/2021-01-10",
		Streams:      0,
		PrimaryGenre: "pop",
	}}

	gotHeader, records := CleanedSpotifyTable(header, rows)

	assert.Equal(t, []string{"title", "week", "streams", "artist_genres", "week_date", "week_period", "primary_genre"}, gotHeader)
	assert.Equal(t, [][]string{
		{"Song", "1/7/2021", "0", "pop, rock", "2021-01-07", "2021-01-04/2021-01-10", "pop"},
	}, records)
}

func TestWeeklyRecords(t *testing.T) {
	volcano := WeeklyVolcanoRecords([]domain.WeeklyVolcanoAggregate{
		{Period: "2021-03-01/2021-03-07", EruptionCount: 2, AvgVEI: 2, MaxVEI: 4},
	})
	assert.Equal(t, [][]string{{"2021-03-01/2021-03-07", "2", "2.0", "4.0"}}, volcano)

	spotify := WeeklySpotifyRecords([]domain.WeeklyStreamAggregate{
		{Period: "2021-01-04/2021-01-10", TotalStreams: 1500, TrackCount: 2, TopGenre: "Pop"},
	})
	assert.Equal(t, [][]string{{"2021-01-04/2021-01-10", "1500", "2", "Pop"}}, spotify)
}

func TestMergedRecords(t *testing.T) {
	records := MergedRecords([]domain.MergedWeeklyRow{
		{Period: "2021-01-04/2021-01-10", EruptionCount: 1, AvgVEI: 2.5, MaxVEI: 2.5, TotalStreams: 10, TrackCount: 1, TopGenre: "pop"},
		{Period: "2021-01-11/2021-01-17", TopGenre: domain.UnknownGenre},
	})
	assert.Equal(t, [][]string{
		{"2021-01-04/2021-01-10", "1", "2.5", "2.5", "10", "1", "pop"},
		{"2021-01-11/2021-01-17", "0", "0.0", "0.0", "0", "0", "unknown"},
	}, records)
}

func TestMergedRecords_Empty(t *testing.T) {
	assert.Empty(t, MergedRecords(nil))
}
