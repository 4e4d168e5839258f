package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"vsdash/internal/dataprocessing"
	"vsdash/pkg/contracts/domain"
)

// Workbook sheet names.
const (
	WeeklySheet  = "Weekly"
	SummarySheet = "Summary"
)

// WriteWorkbook writes the merged table and its summary to an xlsx file.
func WriteWorkbook(path string, rows []domain.MergedWeeklyRow, summary domain.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", WeeklySheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if err := writeWeeklySheet(f, rows); err != nil {
		return err
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("failed to add summary sheet: %w", err)
	}
	if err := writeSummarySheet(f, summary); err != nil {
		return err
	}

	return WriteFileAtomic(path, func(w io.Writer) error {
		_, err := f.WriteTo(w)
		return err
	})
}

func writeWeeklySheet(f *excelize.File, rows []domain.MergedWeeklyRow) error {
	header := make([]interface{}, len(dataprocessing.MergedHeader))
	for i, name := range dataprocessing.MergedHeader {
		header[i] = name
	}
	if err := f.SetSheetRow(WeeklySheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			r.Period.String(), r.EruptionCount, r.AvgVEI, r.MaxVEI,
			r.TotalStreams, r.TrackCount, r.TopGenre,
		}
		if err := f.SetSheetRow(WeeklySheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(WeeklySheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("failed to freeze header: %w", err)
	}
	return f.SetColWidth(WeeklySheet, "A", "A", 24)
}

func writeSummarySheet(f *excelize.File, s domain.Summary) error {
	pairs := [][2]interface{}{
		{"Total weeks analyzed", s.TotalPeriods},
		{"Weeks with volcano activity", s.PeriodsWithEruptions},
		{"Total eruptions", s.TotalEruptions},
		{"Average VEI", s.MeanAvgVEI},
		{"Max VEI recorded", s.MaxVEI},
		{"Total streams", s.TotalStreams},
		{"Average weekly streams", s.MeanWeeklyStreams},
		{"Most common genre", s.MostCommonGenre},
	}
	for i, p := range pairs {
		row := []interface{}{p[0], p[1]}
		if err := f.SetSheetRow(SummarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i+1, err)
		}
	}
	return f.SetColWidth(SummarySheet, "A", "A", 30)
}
