package archive

import (
	"context"
	"sync"

	"github.com/sidelinestats/scorebook/internal/statlog"
	"github.com/sidelinestats/scorebook/internal/totals"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	SaveTotalsFunc func(ctx context.Context, sourceID, label string, table totals.Table) error
	SaveLogFunc    func(ctx context.Context, sourceID, label string, events []statlog.StatEvent) error
	TotalsFunc     func(ctx context.Context, sourceID, label string) (totals.Table, error)
	EventsFunc     func(ctx context.Context, sourceID, label string) ([]statlog.StatEvent, error)

	SaveTotalsCalls []struct {
		SourceID string
		Label    string
		Table    totals.Table
	}
	SaveLogCalls []struct {
		SourceID string
		Label    string
		Events   []statlog.StatEvent
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) SaveTotals(ctx context.Context, sourceID, label string, table totals.Table) error {
	m.mu.Lock()
	m.SaveTotalsCalls = append(m.SaveTotalsCalls, struct {
		SourceID string
		Label    string
		Table    totals.Table
	}{sourceID, label, table})
	m.mu.Unlock()
	if m.SaveTotalsFunc != nil {
		return m.SaveTotalsFunc(ctx, sourceID, label, table)
	}
	return nil
}

func (m *MockStore) SaveLog(ctx context.Context, sourceID, label string, events []statlog.StatEvent) error {
	m.mu.Lock()
	m.SaveLogCalls = append(m.SaveLogCalls, struct {
		SourceID string
		Label    string
		Events   []statlog.StatEvent
	}{sourceID, label, events})
	m.mu.Unlock()
	if m.SaveLogFunc != nil {
		return m.SaveLogFunc(ctx, sourceID, label, events)
	}
	return nil
}

func (m *MockStore) Totals(ctx context.Context, sourceID, label string) (totals.Table, error) {
	if m.TotalsFunc != nil {
		return m.TotalsFunc(ctx, sourceID, label)
	}
	return totals.Table{}, nil
}

func (m *MockStore) Events(ctx context.Context, sourceID, label string) ([]statlog.StatEvent, error) {
	if m.EventsFunc != nil {
		return m.EventsFunc(ctx, sourceID, label)
	}
	return nil, nil
}
