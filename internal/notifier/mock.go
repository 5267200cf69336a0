package notifier

import (
	"sync"

	"github.com/sidelinestats/scorebook/internal/statlog"
	"github.com/sidelinestats/scorebook/internal/totals"
)

var _ Notifier = (*Mock)(nil)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	SendGameStartedFunc   func(game statlog.Game, playerCount int, dryRun bool) error
	SendTotalsSummaryFunc func(game statlog.Game, table totals.Table, eventCount int, dryRun bool) error

	SendGameStartedCalls []struct {
		Game        statlog.Game
		PlayerCount int
	}
	SendTotalsSummaryCalls []struct {
		Game       statlog.Game
		Table      totals.Table
		EventCount int
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendGameStarted(game statlog.Game, playerCount int, dryRun bool) error {
	m.mu.Lock()
	m.SendGameStartedCalls = append(m.SendGameStartedCalls, struct {
		Game        statlog.Game
		PlayerCount int
	}{game, playerCount})
	m.mu.Unlock()
	if m.SendGameStartedFunc != nil {
		return m.SendGameStartedFunc(game, playerCount, dryRun)
	}
	return nil
}

func (m *Mock) SendTotalsSummary(game statlog.Game, table totals.Table, eventCount int, dryRun bool) error {
	m.mu.Lock()
	m.SendTotalsSummaryCalls = append(m.SendTotalsSummaryCalls, struct {
		Game       statlog.Game
		Table      totals.Table
		EventCount int
	}{game, table, eventCount})
	m.mu.Unlock()
	if m.SendTotalsSummaryFunc != nil {
		return m.SendTotalsSummaryFunc(game, table, eventCount, dryRun)
	}
	return nil
}
