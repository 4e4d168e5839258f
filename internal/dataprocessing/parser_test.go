package dataprocessing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "vsdash/internal/errors"
	"vsdash/pkg/contracts/domain"
)

func TestReadEruptions(t *testing.T) {
	input := "\ufeffVolcano_Name,Eruption_Number,Start_Year,Start_Month,Start_Day,VEI\n" +
		"Etna,22354,2021,2,16,2\n" +
		"\"Taal, Luzon\",22400,2020,1,,4\n" +
		",,,,,\n" +
		"Short,1,2019\n"

	table, err := ReadEruptions(strings.NewReader(input), ',')
	require.NoError(t, err)

	assert.Equal(t, "\ufeffVolcano_Name", table.Header[0])
	require.Len(t, table.Records, 3)

	assert.Equal(t, domain.RawEruptionRecord{
		Line:           2,
		EruptionNumber: "22354",
		StartYear:      "2021",
		StartMonth:     "2",
		StartDay:       "16",
		VEI:            "2",
		Fields:         []string{"Etna", "22354", "2021", "2", "16", "2"},
	}, table.Records[0])

	assert.Equal(t, "Taal, Luzon", table.Records[1].Fields[0])
	assert.Equal(t, "", table.Records[1].StartDay)
	assert.Equal(t, 3, table.Records[1].Line)

	short := table.Records[2]
	assert.Equal(t, 5, short.Line)
	assert.Equal(t, "2019", short.StartYear)
	assert.Equal(t, "", short.VEI)
}

func TestReadEruptions_MissingRequiredColumn(t *testing.T) {
	_, err := ReadEruptions(strings.NewReader("year,vei\n2020,1\n"), ',')
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSourceFileUnreadable)
	assert.Contains(t, err.Error(), "start_year")
}

func TestReadSources_MissingColumns(t *testing.T) {
	tests := []struct {
		name    string
		read    func(string) error
		input   string
		missing []string
	}{
		{
			name:    "eruptions without severity or day",
			read:    readEruptionsErr,
			input:   "start_year,start_month\n2020,3\n",
			missing: []string{"start_day", "vei"},
		},
		{
			name:    "streams without play counts",
			read:    readStreamsErr,
			input:   "week;track_id;artist_genres\n01/07/2021;t1;pop\n",
			missing: []string{"streams"},
		},
		{
			name:    "streams without track ids or genres",
			read:    readStreamsErr,
			input:   "week;streams\n01/07/2021;5\n",
			missing: []string{"track_id", "artist_genres"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrSourceFileUnreadable)
			assert.Contains(t, err.Error(), strings.Join(tt.missing, ", "))
		})
	}
}

func readEruptionsErr(input string) error {
	_, err := ReadEruptions(strings.NewReader(input), ',')
	return err
}

func readStreamsErr(input string) error {
	_, err := ReadStreams(strings.NewReader(input), ';')
	return err
}

func TestReadEruptions_EmptyInput(t *testing.T) {
	_, err := ReadEruptions(strings.NewReader(""), ',')
	assert.ErrorIs(t, err, apperrors.ErrSourceFileUnreadable)
}

func TestReadStreams(t *testing.T) {
	input := "Title;Week;Streams;Track_ID;Artist_Genres\n" +
		"Song A;01/07/2021;1000;t1;pop, dance pop\n" +
		"Song B;1/7/2021;;t2;\n"

	table, err := ReadStreams(strings.NewReader(input), ';')
	require.NoError(t, err)
	require.Len(t, table.Records, 2)

	assert.Equal(t, "01/07/2021", table.Records[0].Week)
	assert.Equal(t, "1000", table.Records[0].Streams)
	assert.Equal(t, "t1", table.Records[0].TrackID)
	assert.Equal(t, "pop, dance pop", table.Records[0].ArtistGenres)
	assert.Equal(t, "", table.Records[1].Streams)
	assert.Equal(t, "", table.Records[1].ArtistGenres)
}

func TestReadStreams_WrongDelimiterMissesWeek(t *testing.T) {
	input := "title;week;streams;track_id;artist_genres\nSong;01/07/2021;5;t1;pop\n"
	_, err := ReadStreams(strings.NewReader(input), ',')
	assert.ErrorIs(t, err, apperrors.ErrSourceFileUnreadable)
}

func TestReadFiles_SourceUnreadable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.csv")

	_, err := ReadEruptionsFile(missing, ',')
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSourceFileUnreadable)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeSource, appErr.Type)
	assert.Equal(t, "volcano", appErr.Context["dataset"])

	_, err = ReadStreamsFile(missing, ';')
	assert.ErrorIs(t, err, apperrors.ErrSourceFileUnreadable)
}

func TestReadEruptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eruptions.csv")
	require.NoError(t, os.WriteFile(path, []byte("start_year,start_month,start_day,vei\n2020,,,3\n"), 0644))

	table, err := ReadEruptionsFile(path, ',')
	require.NoError(t, err)
	require.Len(t, table.Records, 1)
	assert.Equal(t, "3", table.Records[0].VEI)
}

func TestReadMerged(t *testing.T) {
	input := strings.Join(MergedHeader, ",") + "\n" +
		"2021-01-04/2021-01-10,2,1.5,2.0,100,1,rock\n" +
		"2021-01-11/2021-01-17,0,0.0,0.0,900,3,pop\n"

	rows, err := ReadMerged(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []domain.MergedWeeklyRow{
		{Period: "2021-01-04/2021-01-10", EruptionCount: 2, AvgVEI: 1.5, MaxVEI: 2, TotalStreams: 100, TrackCount: 1, TopGenre: "rock"},
		{Period: "2021-01-11/2021-01-17", TotalStreams: 900, TrackCount: 3, TopGenre: "pop"},
	}, rows)
}

func TestReadMerged_BadValue(t *testing.T) {
	input := strings.Join(MergedHeader, ",") + "\n" +
		"2021-01-04/2021-01-10,two,1.5,2.0,100,1,rock\n"

	_, err := ReadMerged(strings.NewReader(input))
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrTypeParsing, appErr.Type)
}
