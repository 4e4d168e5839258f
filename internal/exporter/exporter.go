package exporter

import (
	"fmt"
	"log/slog"

	"vsdash/internal/config"
	"vsdash/internal/dataprocessing"
	"vsdash/pkg/contracts/domain"
)

// PipelineExporter writes every pipeline output under the resolved paths.
type PipelineExporter struct {
	paths  *config.Paths
	csv    *CSVWriter
	logger *slog.Logger
}

// NewPipelineExporter creates an exporter bound to paths.
func NewPipelineExporter(paths *config.Paths, logger *slog.Logger) *PipelineExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &PipelineExporter{
		paths:  paths,
		csv:    NewCSVWriter(paths, logger),
		logger: logger,
	}
}

// ExportCleanedVolcano writes the filtered eruption rows.
func (e *PipelineExporter) ExportCleanedVolcano(sourceHeader []string, rows []domain.CleanEruptionRecord) error {
	header, records := CleanedVolcanoTable(sourceHeader, rows)
	return e.write(config.CleanedVolcanoFile, header, records)
}

// ExportCleanedSpotify writes the filtered chart rows.
func (e *PipelineExporter) ExportCleanedSpotify(sourceHeader []string, rows []domain.CleanStreamRecord) error {
	header, records := CleanedSpotifyTable(sourceHeader, rows)
	return e.write(config.CleanedSpotifyFile, header, records)
}

// ExportWeeklyVolcano writes the weekly eruption aggregate.
func (e *PipelineExporter) ExportWeeklyVolcano(rows []domain.WeeklyVolcanoAggregate) error {
	return e.write(config.WeeklyVolcanoFile, WeeklyVolcanoHeader, WeeklyVolcanoRecords(rows))
}

// ExportWeeklySpotify writes the weekly chart aggregate.
func (e *PipelineExporter) ExportWeeklySpotify(rows []domain.WeeklyStreamAggregate) error {
	return e.write(config.WeeklySpotifyFile, WeeklySpotifyHeader, WeeklySpotifyRecords(rows))
}

// ExportMerged writes the merged weekly table.
func (e *PipelineExporter) ExportMerged(rows []domain.MergedWeeklyRow) error {
	return e.write(config.MergedFile, dataprocessing.MergedHeader, MergedRecords(rows))
}

// ExportSummary writes summary.json.
func (e *PipelineExporter) ExportSummary(doc SummaryDocument) error {
	if err := WriteSummaryJSON(e.paths.SummaryJSON, doc); err != nil {
		return fmt.Errorf("failed to write %s: %w", e.paths.SummaryJSON, err)
	}
	e.logger.Info("Exported summary", slog.String("file", e.paths.SummaryJSON))
	return nil
}

// ExportWorkbook writes the merged table and summary as a spreadsheet.
func (e *PipelineExporter) ExportWorkbook(rows []domain.MergedWeeklyRow, summary domain.Summary) error {
	if err := WriteWorkbook(e.paths.MergedWorkbook, rows, summary); err != nil {
		return fmt.Errorf("failed to write %s: %w", e.paths.MergedWorkbook, err)
	}
	e.logger.Info("Exported workbook", slog.String("file", e.paths.MergedWorkbook))
	return nil
}

// write stores a table under the output directory as name.
func (e *PipelineExporter) write(name string, header []string, records [][]string) error {
	if err := e.csv.WriteCSV(name, WriteOptions{Headers: header, Records: records}); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	e.logger.Info("Exported table",
		slog.String("file", e.csv.resolvePath(name)),
		slog.Int("rows", len(records)))
	return nil
}
