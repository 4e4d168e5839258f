package testutil

import (
	"testing"

	"vsdash/internal/operations"
)

// AssertStepStatus verifies a step has the expected status
func AssertStepStatus(t testing.TB, state *operations.RunState, stepID string, expected operations.StepStatus) {
	t.Helper()
	step := state.Step(stepID)
	if step == nil {
		t.Errorf("step %s was never started", stepID)
		return
	}
	if got := step.CurrentStatus(); got != expected {
		t.Errorf("step %s status = %v, want %v", stepID, got, expected)
	}
}

// AssertStageOrder verifies steps were tracked in exactly the given order
func AssertStageOrder(t testing.TB, state *operations.RunState, expected ...string) {
	t.Helper()
	steps := state.Steps()
	if len(steps) != len(expected) {
		t.Errorf("tracked %d steps, want %d", len(steps), len(expected))
		return
	}
	for i, step := range steps {
		if step.ID != expected[i] {
			t.Errorf("step %d = %s, want %s", i, step.ID, expected[i])
		}
	}
}
