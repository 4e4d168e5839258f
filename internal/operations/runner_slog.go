package operations

import (
	"context"
	"log/slog"
	"time"
)

func (r *Runner) logRunStart(ctx context.Context, runID string) {
	r.logger.InfoContext(ctx, "pipeline_start",
		slog.String("run_id", runID),
		slog.Int("stages", len(r.steps)))
}

func (r *Runner) logRunComplete(ctx context.Context, runID string, duration time.Duration) {
	r.logger.InfoContext(ctx, "pipeline_complete",
		slog.String("run_id", runID),
		slog.Duration("duration", duration))
}

func (r *Runner) logRunError(ctx context.Context, runID string, err error) {
	r.logger.ErrorContext(ctx, "pipeline_error",
		slog.String("run_id", runID),
		slog.String("error", err.Error()))
}

func (r *Runner) logStageStart(ctx context.Context, runID, stageID string) {
	r.logger.InfoContext(ctx, "stage_start",
		slog.String("run_id", runID),
		slog.String("stage", stageID))
}

func (r *Runner) logStageComplete(ctx context.Context, runID, stageID string, duration time.Duration) {
	r.logger.InfoContext(ctx, "stage_complete",
		slog.String("run_id", runID),
		slog.String("stage", stageID),
		slog.Duration("duration", duration))
}

func (r *Runner) logStageError(ctx context.Context, runID, stageID string, err error) {
	r.logger.ErrorContext(ctx, "stage_error",
		slog.String("run_id", runID),
		slog.String("stage", stageID),
		slog.String("error", err.Error()))
}

func (r *Runner) logStageProgress(ctx context.Context, runID, stageID string, progress int) {
	r.logger.DebugContext(ctx, "stage_progress",
		slog.String("run_id", runID),
		slog.String("stage", stageID),
		slog.Int("progress", progress))
}
