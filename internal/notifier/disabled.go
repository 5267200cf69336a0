package notifier

import (
	"github.com/charmbracelet/log"
	"github.com/sidelinestats/scorebook/internal/statlog"
	"github.com/sidelinestats/scorebook/internal/totals"
)

var _ Notifier = Disabled{}

// Disabled is a no-op Notifier used when no Slack credentials are
// configured. Announcements are logged at debug level and dropped.
type Disabled struct{}

func (Disabled) SendGameStarted(game statlog.Game, playerCount int, dryRun bool) error {
	log.Debug("Notifications disabled, dropping game started announcement", "game", game.Label())
	return nil
}

func (Disabled) SendTotalsSummary(game statlog.Game, table totals.Table, eventCount int, dryRun bool) error {
	log.Debug("Notifications disabled, dropping totals summary", "game", game.Label())
	return nil
}
