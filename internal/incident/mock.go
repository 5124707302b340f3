package incident

import (
	"context"
	"errors"
	"sync"
)

// ErrMockNotImplemented is returned when a MockClient method lacks an override.
var ErrMockNotImplemented = errors.New("incident.MockClient: method not implemented")

// MockClient is a test double for Client.
type MockClient struct {
	ListFn   func(context.Context) ([]Incident, error)
	CreateFn func(context.Context, CreateRequest) (Incident, error)
	HealthFn func(context.Context) (Health, error)

	mu              sync.Mutex
	ListCallCount   int
	CreateCallCount int
	HealthCallCount int
	CreateCallArgs  []CreateRequest
	calls           []string
}

// NewMockClient returns a mock whose methods fail until overridden.
func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) List(ctx context.Context) ([]Incident, error) {
	m.mu.Lock()
	m.ListCallCount++
	m.calls = append(m.calls, "list")
	fn := m.ListFn
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return nil, ErrMockNotImplemented
}

func (m *MockClient) Create(ctx context.Context, req CreateRequest) (Incident, error) {
	m.mu.Lock()
	m.CreateCallCount++
	m.CreateCallArgs = append(m.CreateCallArgs, req)
	m.calls = append(m.calls, "create")
	fn := m.CreateFn
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, req)
	}
	return Incident{}, ErrMockNotImplemented
}

func (m *MockClient) Health(ctx context.Context) (Health, error) {
	m.mu.Lock()
	m.HealthCallCount++
	m.calls = append(m.calls, "health")
	fn := m.HealthFn
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx)
	}
	return Health{}, ErrMockNotImplemented
}

// Calls returns the method names invoked so far, in order.
func (m *MockClient) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Counts returns the list and create call counts under the lock.
func (m *MockClient) Counts() (list, create int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ListCallCount, m.CreateCallCount
}
