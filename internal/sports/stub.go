package sports

import (
	"github.com/sidelinestats/scorebook/internal/roster"
	"github.com/sidelinestats/scorebook/internal/statlog"
	"github.com/sidelinestats/scorebook/internal/totals"
)

// stub is a registered but unimplemented sport. It captures nothing,
// derives nothing and aggregates any log to an empty table, so the rest
// of the system treats it uniformly.
type stub struct {
	name string
}

// Baseball returns the baseball placeholder plugin.
func Baseball() Sport { return stub{name: "Baseball"} }

// Basketball returns the basketball placeholder plugin.
func Basketball() Sport { return stub{name: "Basketball"} }

func (s stub) Name() string { return s.name }

func (s stub) Sides() []string { return []string{"All"} }

func (s stub) Capture(players []roster.Player) CaptureSpec {
	return CaptureSpec{Sport: s.name, Sides: s.Sides()}
}

func (s stub) Derive(sub Submission, players []roster.Player) []statlog.StatEvent {
	return nil
}

func (s stub) Aggregate(events []statlog.StatEvent) totals.Table {
	return totals.Table{}
}
