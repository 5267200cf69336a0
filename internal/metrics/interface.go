package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncGamesStarted()
	IncSubmissions()
	AddEventsCommitted(count int)
	IncAggregationRuns()
	ObserveAggregationDuration(duration float64)
	IncExportsBuilt()
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
