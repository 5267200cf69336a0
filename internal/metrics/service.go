package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		GamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scorebook_games_started_total",
			Help: "The total number of games started.",
		}),
		Submissions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scorebook_submissions_total",
			Help: "The total number of stat submissions received.",
		}),
		EventsCommitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scorebook_events_committed_total",
			Help: "The total number of events committed to the log, derived events included.",
		}),
		AggregationRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scorebook_aggregation_runs_total",
			Help: "The total number of totals recomputations.",
		}),
		AggregationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scorebook_aggregation_duration_seconds",
			Help:    "The duration of individual totals recomputations.",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ExportsBuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scorebook_exports_built_total",
			Help: "The total number of MaxPreps export files generated.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scorebook_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "scorebook_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "scorebook_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.GamesStarted,
		s.Submissions,
		s.EventsCommitted,
		s.AggregationRuns,
		s.AggregationDuration,
		s.ExportsBuilt,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncGamesStarted() {
	s.GamesStarted.Inc()
}

func (s *Service) IncSubmissions() {
	s.Submissions.Inc()
}

func (s *Service) AddEventsCommitted(count int) {
	s.EventsCommitted.Add(float64(count))
}

func (s *Service) IncAggregationRuns() {
	s.AggregationRuns.Inc()
}

func (s *Service) ObserveAggregationDuration(duration float64) {
	s.AggregationDuration.Observe(duration)
}

func (s *Service) IncExportsBuilt() {
	s.ExportsBuilt.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
