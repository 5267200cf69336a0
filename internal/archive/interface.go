package archive

import (
	"context"

	"github.com/sidelinestats/scorebook/internal/statlog"
	"github.com/sidelinestats/scorebook/internal/totals"
)

// Store persists game artifacts keyed by the game's external storage
// identity, so the key is stable across sessions. Saving under an existing
// label replaces the prior artifact wholesale; nothing is ever appended in
// place.
type Store interface {
	SaveTotals(ctx context.Context, sourceID, label string, table totals.Table) error
	SaveLog(ctx context.Context, sourceID, label string, events []statlog.StatEvent) error
	Totals(ctx context.Context, sourceID, label string) (totals.Table, error)
	Events(ctx context.Context, sourceID, label string) ([]statlog.StatEvent, error)
}
