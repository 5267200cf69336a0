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

type Server struct {
	Archive        archive.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Roster         roster.Source
	Sports         *sports.Registry
	Session        *statlog.Session
	Notifier       notifier.Notifier
	Router         *http.ServeMux
}
