package testutil

import (
	"context"
	"sync"
)

// MockCommander is a mock implementation of promptpath.Commander for testing.
// It records every invocation and delegates to RunFunc when set.
type MockCommander struct {
	RunFunc func(ctx context.Context, dir string, name string, args ...string) error

	mu    sync.Mutex
	calls []CommanderCall
}

// CommanderCall records one Run invocation.
type CommanderCall struct {
	Dir  string
	Name string
	Args []string
}

func (m *MockCommander) Run(ctx context.Context, dir string, name string, args ...string) error {
	m.mu.Lock()
	m.calls = append(m.calls, CommanderCall{Dir: dir, Name: name, Args: args})
	m.mu.Unlock()

	if m.RunFunc != nil {
		return m.RunFunc(ctx, dir, name, args...)
	}
	return nil
}

// Calls returns a copy of the recorded invocations in order.
func (m *MockCommander) Calls() []CommanderCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]CommanderCall(nil), m.calls...)
}

// CallCount returns the number of recorded invocations.
func (m *MockCommander) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
