package dataprocessing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	apperrors "vsdash/internal/errors"
	"vsdash/pkg/contracts/domain"
)

// Source column names, matched case-insensitively.
const (
	ColEruptionNumber = "eruption_number"
	ColStartYear      = "start_year"
	ColStartMonth     = "start_month"
	ColStartDay       = "start_day"
	ColVEI            = "vei"

	ColWeek         = "week"
	ColStreams      = "streams"
	ColTrackID      = "track_id"
	ColArtistGenres = "artist_genres"
)

// EruptionColumns are the eruption source columns that must be present.
var EruptionColumns = []string{ColStartYear, ColStartMonth, ColStartDay, ColVEI}

// StreamColumns are the chart source columns that must be present.
var StreamColumns = []string{ColWeek, ColStreams, ColTrackID, ColArtistGenres}

// MergedHeader is the column order of the merged weekly table.
var MergedHeader = []string{
	"period", "eruption_count", "avg_vei", "max_vei",
	"total_streams", "track_count", "top_genre",
}

// EruptionTable is the parsed eruption source.
type EruptionTable struct {
	Header    []string
	Records   []domain.RawEruptionRecord
	Malformed int
}

// StreamTable is the parsed chart source.
type StreamTable struct {
	Header    []string
	Records   []domain.RawStreamRecord
	Malformed int
}

// ReadEruptions parses eruption rows. Every column in EruptionColumns must be
// present in the header; eruption_number reads as blank when absent.
func ReadEruptions(r io.Reader, delimiter rune) (*EruptionTable, error) {
	table := &EruptionTable{}
	src, err := newSourceReader(r, delimiter, EruptionColumns...)
	if err != nil {
		return nil, err
	}
	table.Header = src.header

	err = src.each(func(line int, fields []string) {
		table.Records = append(table.Records, domain.RawEruptionRecord{
			Line:           line,
			EruptionNumber: src.value(fields, ColEruptionNumber),
			StartYear:      src.value(fields, ColStartYear),
			StartMonth:     src.value(fields, ColStartMonth),
			StartDay:       src.value(fields, ColStartDay),
			VEI:            src.value(fields, ColVEI),
			Fields:         fields,
		})
	})
	table.Malformed = src.malformed
	return table, err
}

// ReadStreams parses chart rows. Every column in StreamColumns must be
// present in the header.
func ReadStreams(r io.Reader, delimiter rune) (*StreamTable, error) {
	table := &StreamTable{}
	src, err := newSourceReader(r, delimiter, StreamColumns...)
	if err != nil {
		return nil, err
	}
	table.Header = src.header

	err = src.each(func(line int, fields []string) {
		table.Records = append(table.Records, domain.RawStreamRecord{
			Line:         line,
			Week:         src.value(fields, ColWeek),
			Streams:      src.value(fields, ColStreams),
			TrackID:      src.value(fields, ColTrackID),
			ArtistGenres: src.value(fields, ColArtistGenres),
			Fields:       fields,
		})
	})
	table.Malformed = src.malformed
	return table, err
}

// ReadEruptionsFile opens path and parses it with ReadEruptions.
func ReadEruptionsFile(path string, delimiter rune) (*EruptionTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewSourceError("volcano", path, err)
	}
	defer f.Close()

	table, err := ReadEruptions(f, delimiter)
	if err != nil {
		return nil, apperrors.NewSourceError("volcano", path, err)
	}
	return table, nil
}

// ReadStreamsFile opens path and parses it with ReadStreams.
func ReadStreamsFile(path string, delimiter rune) (*StreamTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewSourceError("spotify", path, err)
	}
	defer f.Close()

	table, err := ReadStreams(f, delimiter)
	if err != nil {
		return nil, apperrors.NewSourceError("spotify", path, err)
	}
	return table, nil
}

// ReadMerged parses a merged weekly table previously written by the
// pipeline. Unlike the sources, any malformed value is an error.
func ReadMerged(r io.Reader) ([]domain.MergedWeeklyRow, error) {
	src, err := newSourceReader(r, ',', MergedHeader...)
	if err != nil {
		return nil, err
	}

	var (
		rows     []domain.MergedWeeklyRow
		firstErr error
	)
	err = src.each(func(line int, fields []string) {
		if firstErr != nil {
			return
		}
		row, perr := src.mergedRow(fields)
		if perr != nil {
			firstErr = apperrors.NewParsingError(fmt.Sprintf("merged table line %d", line), perr)
			return
		}
		rows = append(rows, row)
	})
	if err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	if src.malformed > 0 {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("merged table has %d malformed rows", src.malformed), nil)
	}
	return rows, nil
}

// ReadMergedFile opens path and parses it with ReadMerged.
func ReadMergedFile(path string) ([]domain.MergedWeeklyRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewSourceError("merged", path, err)
	}
	defer f.Close()
	return ReadMerged(f)
}

type sourceReader struct {
	csv       *csv.Reader
	header    []string
	index     map[string]int
	malformed int
}

func newSourceReader(r io.Reader, delimiter rune, required ...string) (*sourceReader, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", apperrors.ErrSourceFileUnreadable)
		}
		return nil, fmt.Errorf("%w: header: %v", apperrors.ErrSourceFileUnreadable, err)
	}

	src := &sourceReader{csv: cr, header: header, index: make(map[string]int, len(header))}
	for i, name := range header {
		key := normalizeColumn(name)
		if _, dup := src.index[key]; !dup {
			src.index[key] = i
		}
	}

	var missing []string
	for _, col := range required {
		if _, ok := src.index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required column(s) %s",
			apperrors.ErrSourceFileUnreadable, strings.Join(missing, ", "))
	}
	return src, nil
}

// each calls fn for every well-formed row. Rows the CSV reader rejects are
// counted and skipped.
func (s *sourceReader) each(fn func(line int, fields []string)) error {
	for {
		record, err := s.csv.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				s.malformed++
				continue
			}
			return fmt.Errorf("%w: %v", apperrors.ErrSourceFileUnreadable, err)
		}
		if isBlankRecord(record) {
			continue
		}
		line, _ := s.csv.FieldPos(0)
		fn(line, record)
	}
}

func (s *sourceReader) value(fields []string, col string) string {
	i, ok := s.index[col]
	if !ok || i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

func (s *sourceReader) mergedRow(fields []string) (domain.MergedWeeklyRow, error) {
	var (
		row domain.MergedWeeklyRow
		err error
	)
	row.Period = domain.WeekPeriod(s.value(fields, "period"))
	if _, _, perr := row.Period.Bounds(); perr != nil {
		return row, perr
	}
	if row.EruptionCount, err = strconv.Atoi(s.value(fields, "eruption_count")); err != nil {
		return row, err
	}
	if row.AvgVEI, err = strconv.ParseFloat(s.value(fields, "avg_vei"), 64); err != nil {
		return row, err
	}
	if row.MaxVEI, err = strconv.ParseFloat(s.value(fields, "max_vei"), 64); err != nil {
		return row, err
	}
	if row.TotalStreams, err = strconv.ParseInt(s.value(fields, "total_streams"), 10, 64); err != nil {
		return row, err
	}
	if row.TrackCount, err = strconv.Atoi(s.value(fields, "track_count")); err != nil {
		return row, err
	}
	row.TopGenre = s.value(fields, "top_genre")
	return row, nil
}

func normalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
}

func isBlankRecord(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
