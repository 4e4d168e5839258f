// Package operations runs the pipeline as an ordered list of stages.
//
// Each stage gets its own span, a duration sample in the
// pipeline_stage_duration_seconds histogram and start/complete/error log
// events carrying the run id. RunState records the status of the run and of
// each stage so callers can report what finished before a failure.
package operations
