package operations

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"vsdash/internal/infrastructure"
)

// Runner executes registered steps in order. The first failing step stops
// the run.
type Runner struct {
	steps   []Step
	tracer  trace.Tracer
	metrics *infrastructure.PipelineMetrics
	logger  *slog.Logger
}

// NewRunner creates a runner. tracer and metrics may be nil.
func NewRunner(tracer trace.Tracer, metrics *infrastructure.PipelineMetrics, logger *slog.Logger) *Runner {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(TracerName)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{tracer: tracer, metrics: metrics, logger: logger}
}

// Register appends step to the run order.
func (r *Runner) Register(step Step) error {
	for _, s := range r.steps {
		if s.ID() == step.ID() {
			return fmt.Errorf("step %q already registered", step.ID())
		}
	}
	r.steps = append(r.steps, step)
	return nil
}

// Steps returns the registered steps in run order.
func (r *Runner) Steps() []Step {
	return append([]Step(nil), r.steps...)
}

// Run executes every step against state.
func (r *Runner) Run(ctx context.Context, state *RunState) error {
	ctx, span := r.tracer.Start(ctx, "pipeline",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("run.id", state.ID)))
	defer span.End()

	state.Start()
	r.logRunStart(ctx, state.ID)

	for i, step := range r.steps {
		if err := ctx.Err(); err != nil {
			return r.fail(ctx, span, state, fmt.Errorf("run cancelled before %s: %w", step.ID(), err))
		}

		if err := r.execute(ctx, state, step); err != nil {
			return r.fail(ctx, span, state, fmt.Errorf("%s: %w", step.Name(), err))
		}
		r.logStageProgress(ctx, state.ID, step.ID(), (i+1)*100/len(r.steps))
	}

	state.Complete()
	span.SetStatus(codes.Ok, "")
	r.logRunComplete(ctx, state.ID, time.Since(state.StartTime))
	return nil
}

func (r *Runner) execute(ctx context.Context, state *RunState, step Step) error {
	stepState := state.track(step)
	ctx, span := r.tracer.Start(ctx, step.ID(),
		trace.WithAttributes(
			attribute.String("run.id", state.ID),
			attribute.String("stage.name", step.Name())))
	defer span.End()

	start := time.Now()
	stepState.Start()
	r.logStageStart(ctx, state.ID, step.ID())

	err := step.Execute(ctx, state)
	if r.metrics != nil {
		r.metrics.RecordStage(ctx, step.ID(), start)
	}
	if err != nil {
		stepState.Fail(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logStageError(ctx, state.ID, step.ID(), err)
		return err
	}

	stepState.Complete()
	r.logStageComplete(ctx, state.ID, step.ID(), stepState.Duration())
	return nil
}

func (r *Runner) fail(ctx context.Context, span trace.Span, state *RunState, err error) error {
	state.Fail(err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	r.logRunError(ctx, state.ID, err)
	return err
}
