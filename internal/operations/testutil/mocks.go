package testutil

import (
	"context"
	"sync"

	"vsdash/internal/operations"
)

// MockStage is a configurable mock implementation of operations.Step
type MockStage struct {
	IDValue   string
	NameValue string

	ExecuteFunc func(ctx context.Context, state *operations.RunState) error

	mu           sync.Mutex
	executeCalls int
}

// ID returns the step ID
func (m *MockStage) ID() string {
	return m.IDValue
}

// Name returns the step name
func (m *MockStage) Name() string {
	return m.NameValue
}

// Execute records the call and runs ExecuteFunc if set
func (m *MockStage) Execute(ctx context.Context, state *operations.RunState) error {
	m.mu.Lock()
	m.executeCalls++
	m.mu.Unlock()

	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, state)
	}
	return nil
}

// ExecuteCalls returns the number of Execute calls
func (m *MockStage) ExecuteCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.executeCalls
}

// CreateSuccessfulStage returns a stage that always succeeds
func CreateSuccessfulStage(id, name string) *MockStage {
	return &MockStage{IDValue: id, NameValue: name}
}

// CreateFailingStage returns a stage that always fails with err
func CreateFailingStage(id, name string, err error) *MockStage {
	return &MockStage{
		IDValue:   id,
		NameValue: name,
		ExecuteFunc: func(context.Context, *operations.RunState) error {
			return err
		},
	}
}
