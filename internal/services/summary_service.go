package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"vsdash/internal/config"
	"vsdash/internal/dataprocessing"
	"vsdash/internal/exporter"
)

// SummaryService loads the statistics the dashboard displays.
type SummaryService struct {
	paths  *config.Paths
	window dataprocessing.YearWindow
	logger *slog.Logger
}

// NewSummaryService creates a summary service reading from paths.
func NewSummaryService(cfg config.PipelineConfig, logger *slog.Logger) *SummaryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SummaryService{
		paths:  config.NewPaths(cfg),
		window: dataprocessing.YearWindow{Start: cfg.StartYear, End: cfg.EndYear},
		logger: logger,
	}
}

// Paths returns the resolved pipeline paths.
func (s *SummaryService) Paths() *config.Paths {
	return s.paths
}

// Summary returns summary.json when present, otherwise recomputes it from
// the merged table.
func (s *SummaryService) Summary(ctx context.Context) (*exporter.SummaryDocument, error) {
	data, err := os.ReadFile(s.paths.SummaryJSON)
	if err == nil {
		var doc exporter.SummaryDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", s.paths.SummaryJSON, err)
		}
		return &doc, nil
	}
	if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", s.paths.SummaryJSON, err)
	}

	s.logger.DebugContext(ctx, "summary.json not found, recomputing from merged table",
		slog.String("merged", s.paths.MergedCSV))
	return s.FromMerged(ctx)
}

// FromMerged recomputes the summary from the merged table on disk.
func (s *SummaryService) FromMerged(ctx context.Context) (*exporter.SummaryDocument, error) {
	if !config.FileExists(s.paths.MergedCSV) {
		return nil, ErrNoMergedData
	}
	rows, err := dataprocessing.ReadMergedFile(s.paths.MergedCSV)
	if err != nil {
		return nil, err
	}
	return &exporter.SummaryDocument{
		StartYear: s.window.Start,
		EndYear:   s.window.End,
		Summary:   dataprocessing.Summarize(rows),
	}, nil
}
