package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	GamesStartedCount     int
	SubmissionsCount      int
	EventsCommittedCount  int
	AggregationRunsCount  int
	AggregationDurations  []float64
	ExportsBuiltCount     int
	SlackNotifSentCount   int
	SlackNotifFailedCount int
	StartupTimes          []float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncGamesStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GamesStartedCount++
}

func (m *Mock) IncSubmissions() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SubmissionsCount++
}

func (m *Mock) AddEventsCommitted(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EventsCommittedCount += count
}

func (m *Mock) IncAggregationRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AggregationRunsCount++
}

func (m *Mock) ObserveAggregationDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AggregationDurations = append(m.AggregationDurations, duration)
}

func (m *Mock) IncExportsBuilt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ExportsBuiltCount++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifSentCount++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlackNotifFailedCount++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTimes = append(m.StartupTimes, duration)
}
