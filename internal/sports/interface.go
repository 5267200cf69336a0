package sports

import (
	"github.com/sidelinestats/scorebook/internal/roster"
	"github.com/sidelinestats/scorebook/internal/statlog"
	"github.com/sidelinestats/scorebook/internal/totals"
)

// Sport is the pluggable rule set for one sport. Adding a sport means
// adding one implementation and registering it; nothing else changes.
type Sport interface {
	// Name returns the sport label stamped on every event.
	Name() string

	// Sides returns the zone labels used to partition stat entry,
	// e.g. ["Offense", "Defense"] or ["All"].
	Sides() []string

	// Capture describes what a stat entry form must collect for this
	// sport given the current roster. Pure description; it commits
	// nothing.
	Capture(players []roster.Player) CaptureSpec

	// Derive expands one submission into the committed events it
	// produces (0 to 3). Deterministic for a given submission and
	// roster. A paired player that cannot be resolved drops the paired
	// event silently; the primary event still commits.
	Derive(sub Submission, players []roster.Player) []statlog.StatEvent

	// Aggregate recomputes per-player totals from the full event log.
	// Events for other sports are ignored; an empty or mismatched log
	// yields an empty table, never an error.
	Aggregate(events []statlog.StatEvent) totals.Table
}
