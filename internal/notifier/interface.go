package notifier

import (
	"github.com/sidelinestats/scorebook/internal/statlog"
	"github.com/sidelinestats/scorebook/internal/totals"
)

// Notifier defines a high-level interface for announcing business events.
// This decouples the rest of the application from the specific
// notification provider (e.g., Slack).
type Notifier interface {
	// When a new game is created and its roster loaded.
	SendGameStarted(game statlog.Game, playerCount int, dryRun bool) error
	// When a game's totals and log are saved.
	SendTotalsSummary(game statlog.Game, table totals.Table, eventCount int, dryRun bool) error
}
