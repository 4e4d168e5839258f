package services

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"vsdash/internal/config"
	"vsdash/internal/dataprocessing"
	"vsdash/internal/exporter"
	"vsdash/internal/infrastructure"
	"vsdash/internal/operations"
	"vsdash/internal/validation"
	"vsdash/pkg/contracts/domain"
)

// headSampleSize is how many merged rows are logged after a run.
const headSampleSize = 5

// PipelineResult holds everything one run produced.
type PipelineResult struct {
	RunID   string
	Volcano dataprocessing.VolcanoResult
	Spotify dataprocessing.SpotifyResult
	Merged  []domain.MergedWeeklyRow
	Summary domain.Summary
	State   *operations.RunState

	volcanoHeader []string
	spotifyHeader []string
}

// PipelineService reads both sources, aligns them by week and writes every
// output file.
type PipelineService struct {
	cfg     config.PipelineConfig
	paths   *config.Paths
	tracer  trace.Tracer
	metrics *infrastructure.PipelineMetrics
	logger  *slog.Logger
}

// NewPipelineService creates a pipeline service. providers may be nil, in
// which case no spans or metrics are recorded.
func NewPipelineService(cfg config.PipelineConfig, providers *infrastructure.OTelProviders, logger *slog.Logger) (*PipelineService, error) {
	if logger == nil {
		logger = slog.Default()
	}
	paths := config.NewPaths(cfg)

	s := &PipelineService{
		cfg:    cfg,
		paths:  paths,
		logger: logger,
	}

	if providers != nil {
		metrics, err := infrastructure.NewPipelineMetrics(providers.Meter)
		if err != nil {
			return nil, fmt.Errorf("failed to create pipeline metrics: %w", err)
		}
		s.metrics = metrics
		s.tracer = providers.Tracer
	}

	return s, nil
}

// Paths returns the resolved input and output paths.
func (s *PipelineService) Paths() *config.Paths {
	return s.paths
}

// Run executes one full pipeline pass. Source problems abort the run before
// any output is written.
func (s *PipelineService) Run(ctx context.Context) (*PipelineResult, error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	runID := infrastructure.GetTraceID(ctx)
	logger := s.logger
	// Validation and export log without a context.
	runLogger := infrastructure.LoggerWithContext(ctx, s.logger)
	validator := validation.NewSourceValidator(runLogger)
	exp := exporter.NewPipelineExporter(s.paths, runLogger)

	logger.InfoContext(ctx, "Starting data processing pipeline",
		slog.String("eruptions", s.paths.EruptionsSource),
		slog.String("streams", s.paths.StreamsSource),
		slog.String("output_dir", s.paths.OutputDir),
		slog.Int("start_year", s.cfg.StartYear),
		slog.Int("end_year", s.cfg.EndYear))

	result := &PipelineResult{RunID: runID, State: operations.NewRunState(runID)}
	runner := operations.NewRunner(s.tracer, s.metrics, logger)
	window := dataprocessing.YearWindow{Start: s.cfg.StartYear, End: s.cfg.EndYear}

	stages := []operations.Step{
		operations.NewFuncStage(operations.StageIDValidate, operations.StageNameValidate,
			func(ctx context.Context, _ *operations.RunState) error {
				return s.validate(validator)
			}),
		operations.NewFuncStage(operations.StageIDVolcano, operations.StageNameVolcano,
			func(ctx context.Context, _ *operations.RunState) error {
				return s.processVolcano(ctx, logger, window, result)
			}),
		operations.NewFuncStage(operations.StageIDSpotify, operations.StageNameSpotify,
			func(ctx context.Context, _ *operations.RunState) error {
				return s.processSpotify(ctx, logger, window, result)
			}),
		operations.NewFuncStage(operations.StageIDMerge, operations.StageNameMerge,
			func(ctx context.Context, _ *operations.RunState) error {
				result.Merged = dataprocessing.Merge(result.Volcano.Weekly, result.Spotify.Weekly)
				s.recordPeriods(ctx, "merged", len(result.Merged))
				logger.InfoContext(ctx, "Merged datasets",
					slog.Int("weekly_periods", len(result.Merged)))
				return nil
			}),
		operations.NewFuncStage(operations.StageIDSummary, operations.StageNameSummary,
			func(ctx context.Context, _ *operations.RunState) error {
				result.Summary = dataprocessing.Summarize(result.Merged)
				return nil
			}),
		operations.NewFuncStage(operations.StageIDExport, operations.StageNameExport,
			func(ctx context.Context, _ *operations.RunState) error {
				return s.export(exp, result)
			}),
	}
	for _, stage := range stages {
		if err := runner.Register(stage); err != nil {
			return nil, err
		}
	}

	if err := runner.Run(ctx, result.State); err != nil {
		return result, err
	}

	logger.InfoContext(ctx, "Data processing complete",
		slog.Int("rows", len(result.Merged)),
		slog.Int("columns", len(dataprocessing.MergedHeader)),
		slog.Any("head", head(result.Merged, headSampleSize)))

	return result, nil
}

func (s *PipelineService) validate(validator *validation.SourceValidator) error {
	if err := validator.ValidateSources(
		validation.Source{Dataset: "volcano", Path: s.paths.EruptionsSource},
		validation.Source{Dataset: "spotify", Path: s.paths.StreamsSource},
	); err != nil {
		return err
	}
	return validator.ValidateOutputDirectory(s.paths.OutputDir)
}

func (s *PipelineService) processVolcano(ctx context.Context, logger *slog.Logger, window dataprocessing.YearWindow, result *PipelineResult) error {
	logger.InfoContext(ctx, "Processing volcano eruption data", slog.String("file", s.paths.EruptionsSource))

	table, err := dataprocessing.ReadEruptionsFile(s.paths.EruptionsSource, config.Delimiter(s.cfg.EruptionsDelimiter))
	if err != nil {
		return err
	}

	result.volcanoHeader = table.Header
	result.Volcano = dataprocessing.NewVolcanoAggregator(logger, window).Aggregate(ctx, table.Records)
	result.Volcano.Stats.Malformed = table.Malformed
	result.Volcano.Stats.Read += table.Malformed

	s.recordStats(ctx, "volcano", result.Volcano.Stats)
	s.recordPeriods(ctx, "volcano", len(result.Volcano.Weekly))
	return nil
}

func (s *PipelineService) processSpotify(ctx context.Context, logger *slog.Logger, window dataprocessing.YearWindow, result *PipelineResult) error {
	logger.InfoContext(ctx, "Processing Spotify data", slog.String("file", s.paths.StreamsSource))

	table, err := dataprocessing.ReadStreamsFile(s.paths.StreamsSource, config.Delimiter(s.cfg.StreamsDelimiter))
	if err != nil {
		return err
	}

	result.spotifyHeader = table.Header
	result.Spotify = dataprocessing.NewSpotifyAggregator(logger, window).Aggregate(ctx, table.Records)
	result.Spotify.Stats.Malformed = table.Malformed
	result.Spotify.Stats.Read += table.Malformed

	s.recordStats(ctx, "spotify", result.Spotify.Stats)
	s.recordPeriods(ctx, "spotify", len(result.Spotify.Weekly))
	return nil
}

func (s *PipelineService) export(exp *exporter.PipelineExporter, result *PipelineResult) error {
	if err := exp.ExportCleanedVolcano(result.volcanoHeader, result.Volcano.Cleaned); err != nil {
		return err
	}
	if err := exp.ExportCleanedSpotify(result.spotifyHeader, result.Spotify.Cleaned); err != nil {
		return err
	}
	if err := exp.ExportWeeklyVolcano(result.Volcano.Weekly); err != nil {
		return err
	}
	if err := exp.ExportWeeklySpotify(result.Spotify.Weekly); err != nil {
		return err
	}
	if err := exp.ExportMerged(result.Merged); err != nil {
		return err
	}
	if err := exp.ExportSummary(exporter.SummaryDocument{
		StartYear: s.cfg.StartYear,
		EndYear:   s.cfg.EndYear,
		Summary:   result.Summary,
	}); err != nil {
		return err
	}
	if s.cfg.WriteWorkbook {
		return exp.ExportWorkbook(result.Merged, result.Summary)
	}
	return nil
}

func (s *PipelineService) recordStats(ctx context.Context, dataset string, stats dataprocessing.Stats) {
	if s.metrics == nil {
		return
	}
	ds := attribute.String("dataset", dataset)
	s.metrics.RowsRead.Add(ctx, int64(stats.Read), metric.WithAttributes(ds))
	s.metrics.RowsCoerced.Add(ctx, int64(stats.Coerced), metric.WithAttributes(ds))
	for reason, n := range stats.DropReasons() {
		s.metrics.RowsDropped.Add(ctx, int64(n),
			metric.WithAttributes(ds, attribute.String("reason", reason)))
	}
}

func (s *PipelineService) recordPeriods(ctx context.Context, table string, n int) {
	if s.metrics == nil {
		return
	}
	s.metrics.WeeklyPeriods.Record(ctx, int64(n),
		metric.WithAttributes(attribute.String("table", table)))
}

func head(rows []domain.MergedWeeklyRow, n int) []domain.MergedWeeklyRow {
	if len(rows) < n {
		n = len(rows)
	}
	return rows[:n]
}
