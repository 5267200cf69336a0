package sports

import (
	"github.com/sidelinestats/scorebook/internal/statlog"
	"github.com/sidelinestats/scorebook/internal/totals"
)

// playerGroup is one player's slice of the filtered event log. Identity
// fields are taken from the first occurrence; divergence across a player's
// events is tolerated silently.
type playerGroup struct {
	first  statlog.StatEvent
	events []statlog.StatEvent
}

// groupBySport filters events down to one sport and groups them by player
// key, preserving first-appearance order. Rows are sorted later.
func groupBySport(sport string, events []statlog.StatEvent) []*playerGroup {
	var order []string
	byKey := make(map[string]*playerGroup)
	for _, e := range events {
		if e.Sport != sport {
			continue
		}
		g, ok := byKey[e.PlayerKey]
		if !ok {
			g = &playerGroup{first: e}
			byKey[e.PlayerKey] = g
			order = append(order, e.PlayerKey)
		}
		g.events = append(g.events, e)
	}
	groups := make([]*playerGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, byKey[key])
	}
	return groups
}

// identityRow seeds a totals row with the player's identity fields.
func (g *playerGroup) identityRow() totals.Row {
	return totals.Row{
		"player_key": g.first.PlayerKey,
		"first_name": g.first.FirstName,
		"last_name":  g.first.LastName,
		"number":     g.first.Number,
		"positions":  g.first.Positions,
	}
}

// count tallies events of one stat type.
func (g *playerGroup) count(statType string) int {
	return g.countWhere(statType, nil)
}

// countWhere tallies events of one stat type passing pred.
func (g *playerGroup) countWhere(statType string, pred func(statlog.StatEvent) bool) int {
	n := 0
	for _, e := range g.events {
		if e.StatType != statType {
			continue
		}
		if pred != nil && !pred(e) {
			continue
		}
		n++
	}
	return n
}

// sum adds a numeric attribute over events of one stat type, coercing
// missing or non-numeric values to 0.
func (g *playerGroup) sum(statType string, attr func(statlog.StatEvent) any) float64 {
	return g.sumWhere(statType, nil, attr)
}

func (g *playerGroup) sumWhere(statType string, pred func(statlog.StatEvent) bool, attr func(statlog.StatEvent) any) float64 {
	total := 0.0
	for _, e := range g.events {
		if e.StatType != statType {
			continue
		}
		if pred != nil && !pred(e) {
			continue
		}
		total += totals.Num(attr(e))
	}
	return total
}

func outcomeIs(want string) func(statlog.StatEvent) bool {
	return func(e statlog.StatEvent) bool {
		return e.Outcome != nil && *e.Outcome == want
	}
}

func touchdownSet(e statlog.StatEvent) bool {
	return e.Touchdown != nil && *e.Touchdown == 1
}

// pct is the guarded ratio: round(100*numer/denom, 1), defined as exactly
// 0 when the denominator is 0.
func pct(numer, denom float64) float64 {
	if denom == 0 {
		return 0
	}
	return totals.Round1(100 * numer / denom)
}
