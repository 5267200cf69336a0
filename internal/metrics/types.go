package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	GamesStarted        prometheus.Counter
	Submissions         prometheus.Counter
	EventsCommitted     prometheus.Counter
	AggregationRuns     prometheus.Counter
	AggregationDuration prometheus.Histogram
	ExportsBuilt        prometheus.Counter
	SlackNotifSent      prometheus.Counter
	SlackNotifFailed    prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}
