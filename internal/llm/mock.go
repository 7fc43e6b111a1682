package llm

import (
	"context"
	"fmt"
	"sync"
)

// MockResponse is one canned exchange for the mock provider.
type MockResponse struct {
	Text string
	Err  error
}

// MockCall records the arguments of one Generate invocation.
type MockCall struct {
	System string
	User   string
	Opts   Options
}

// MockProvider serves canned responses in FIFO order and records every
// call. It backs tests and the "mock" backend used in local development.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     []MockCall
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Enqueue appends a canned response to the queue.
func (m *MockProvider) Enqueue(text string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, MockResponse{Text: text, Err: err})
}

func (m *MockProvider) Generate(_ context.Context, system, user string, opts Options) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockCall{System: system, User: user, Opts: opts})

	if len(m.responses) == 0 {
		return "", fmt.Errorf("mock provider: no responses queued (call %d)", len(m.calls))
	}

	next := m.responses[0]
	m.responses = m.responses[1:]
	return next.Text, next.Err
}

func (m *MockProvider) Name() string { return "mock" }

// Calls returns a copy of the recorded invocations.
func (m *MockProvider) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallCount reports how many times Generate has been invoked.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
