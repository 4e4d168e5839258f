package infrastructure

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PipelineMetrics holds the counters recorded by a pipeline run.
type PipelineMetrics struct {
	RowsRead      metric.Int64Counter
	RowsDropped   metric.Int64Counter
	RowsCoerced   metric.Int64Counter
	WeeklyPeriods metric.Int64Gauge
	StageDuration metric.Float64Histogram
}

// NewPipelineMetrics creates the pipeline instruments on meter.
func NewPipelineMetrics(meter metric.Meter) (*PipelineMetrics, error) {
	rowsRead, err := meter.Int64Counter(
		"pipeline_rows_read",
		metric.WithDescription("Source rows read per dataset"),
	)
	if err != nil {
		return nil, err
	}

	rowsDropped, err := meter.Int64Counter(
		"pipeline_rows_dropped",
		metric.WithDescription("Source rows dropped per dataset and reason"),
	)
	if err != nil {
		return nil, err
	}

	rowsCoerced, err := meter.Int64Counter(
		"pipeline_rows_coerced",
		metric.WithDescription("Rows kept with a field coerced to its default"),
	)
	if err != nil {
		return nil, err
	}

	weeklyPeriods, err := meter.Int64Gauge(
		"pipeline_weekly_periods",
		metric.WithDescription("Weekly periods produced per table"),
	)
	if err != nil {
		return nil, err
	}

	stageDuration, err := meter.Float64Histogram(
		"pipeline_stage_duration_seconds",
		metric.WithDescription("Pipeline stage duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &PipelineMetrics{
		RowsRead:      rowsRead,
		RowsDropped:   rowsDropped,
		RowsCoerced:   rowsCoerced,
		WeeklyPeriods: weeklyPeriods,
		StageDuration: stageDuration,
	}, nil
}

// RecordStage records how long a stage ran.
func (m *PipelineMetrics) RecordStage(ctx context.Context, stage string, start time.Time) {
	m.StageDuration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("stage", stage)))
}

// HTTPMetrics holds dashboard server instruments.
type HTTPMetrics struct {
	RequestsTotal   metric.Int64Counter
	RequestDuration metric.Float64Histogram
}

// NewHTTPMetrics creates the HTTP instruments on meter.
func NewHTTPMetrics(meter metric.Meter) (*HTTPMetrics, error) {
	requests, err := meter.Int64Counter(
		"http_requests",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"http_request_duration_seconds",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &HTTPMetrics{RequestsTotal: requests, RequestDuration: duration}, nil
}
