package roster

import (
	"context"
	"sync"
)

// MockSource is a mock implementation of the Source interface for testing.
// It is safe for concurrent use.
type MockSource struct {
	mu sync.Mutex

	LoadFunc    func(ctx context.Context, sourceID string) ([]Player, error)
	ReplaceFunc func(ctx context.Context, sourceID string, players []Player) error

	LoadCalls    []string
	ReplaceCalls []struct {
		SourceID string
		Players  []Player
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockSource {
	return &MockSource{}
}

func (m *MockSource) Load(ctx context.Context, sourceID string) ([]Player, error) {
	m.mu.Lock()
	m.LoadCalls = append(m.LoadCalls, sourceID)
	m.mu.Unlock()
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, sourceID)
	}
	return nil, nil
}

func (m *MockSource) Replace(ctx context.Context, sourceID string, players []Player) error {
	m.mu.Lock()
	m.ReplaceCalls = append(m.ReplaceCalls, struct {
		SourceID string
		Players  []Player
	}{sourceID, players})
	m.mu.Unlock()
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, sourceID, players)
	}
	return nil
}
