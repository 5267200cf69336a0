package http

import (
	"net/http"

	"github.com/sidelinestats/scorebook/internal/archive"
	"github.com/sidelinestats/scorebook/internal/config"
	"github.com/sidelinestats/scorebook/internal/metrics"
	"github.com/sidelinestats/scorebook/internal/notifier"
	"github.com/sidelinestats/scorebook/internal/roster"
	"github.com/sidelinestats/scorebook/internal/sports"
	"github.com/sidelinestats/scorebook/internal/statlog"
)

func NewServer(archiveStore archive.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, rosterSource roster.Source, registry *sports.Registry, session *statlog.Session, notifier notifier.Notifier) *Server {
	server := &Server{
		Archive:        archiveStore,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Roster:         rosterSource,
		Sports:         registry,
		Session:        session,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /sports", Chain(s.ListSportsHandler(), paramsMiddleware))
	s.Router.Handle("POST /game", Chain(s.StartGameHandler(), paramsMiddleware))
	s.Router.Handle("GET /game", Chain(s.GameHandler(), paramsMiddleware))
	s.Router.Handle("GET /roster", Chain(s.RosterHandler(), paramsMiddleware))
	s.Router.Handle("POST /roster/import", Chain(s.ImportRosterHandler(), paramsMiddleware))
	s.Router.Handle("GET /capture", Chain(s.CaptureHandler(), paramsMiddleware))
	s.Router.Handle("POST /log", Chain(s.SubmitStatHandler(), paramsMiddleware))
	s.Router.Handle("GET /log", Chain(s.ListEventsHandler(), paramsMiddleware))
	s.Router.Handle("GET /totals", Chain(s.TotalsHandler(), paramsMiddleware))
	s.Router.Handle("POST /save", Chain(s.SaveGameHandler(), paramsMiddleware))
	s.Router.Handle("GET /export/maxpreps", Chain(s.ExportMaxPrepsHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
