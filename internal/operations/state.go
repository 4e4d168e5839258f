package operations

import (
	"sync"
	"time"
)

// RunStatus is the overall status of a pipeline run.
type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// RunState tracks one pipeline run and the state of each of its steps.
type RunState struct {
	mu sync.RWMutex

	ID        string
	Status    RunStatus
	StartTime time.Time
	EndTime   *time.Time
	Error     error

	steps map[string]*StepState
	order []string
}

// NewRunState creates a pending run.
func NewRunState(id string) *RunState {
	return &RunState{
		ID:     id,
		Status: RunStatusPending,
		steps:  make(map[string]*StepState),
	}
}

// Start marks the run as running
func (r *RunState) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Status = RunStatusRunning
	r.StartTime = time.Now()
}

// Complete marks the run as completed
func (r *RunState) Complete() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.EndTime = &now
	r.Status = RunStatusCompleted
}

// Fail marks the run as failed
func (r *RunState) Fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.EndTime = &now
	r.Status = RunStatusFailed
	r.Error = err
}

// CurrentStatus returns the run status under the read lock.
func (r *RunState) CurrentStatus() RunStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.Status
}

// Step returns the state of the step with id, or nil.
func (r *RunState) Step(id string) *StepState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.steps[id]
}

// Steps returns step states in execution order.
func (r *RunState) Steps() []*StepState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*StepState, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.steps[id])
	}
	return out
}

func (r *RunState) track(step Step) *StepState {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.steps[step.ID()]
	if !ok {
		s = NewStepState(step.ID(), step.Name())
		r.steps[step.ID()] = s
		r.order = append(r.order, step.ID())
	}
	return s
}
