package sports

import (
	"github.com/charmbracelet/log"
	"github.com/sidelinestats/scorebook/internal/roster"
	"github.com/sidelinestats/scorebook/internal/statlog"
	"github.com/sidelinestats/scorebook/internal/totals"
)

type lacrosse struct{}

// Lacrosse returns the lacrosse rule plugin.
func Lacrosse() Sport { return lacrosse{} }

func (lacrosse) Name() string { return "Lacrosse" }

func (lacrosse) Sides() []string { return []string{"All"} }

var lacrosseStats = []string{
	"Goal", "Assist", "Shot", "Ground Ball", "Faceoff",
	"Takeaway", "Interception", "Turnover", "Penalty",
	"Save", "Goal Allowed", "Goalie Minutes",
}

func (l lacrosse) Capture(players []roster.Player) CaptureSpec {
	return CaptureSpec{
		Sport: l.Name(),
		Sides: l.Sides(),
		StatTypes: map[string][]string{
			"All": lacrosseStats,
		},
		Fields: map[string][]FieldSpec{
			"Goal": {
				{Name: "assist_key", Kind: FieldPlayer, ExcludeActor: true, Optional: true},
			},
			"Shot": {
				{Name: "on_target", Kind: FieldFlag},
			},
			"Faceoff": {
				{Name: "faceoff_result", Kind: FieldSelect, Options: []string{"Win", "Loss"}},
			},
			"Penalty": {
				{Name: "penalty_minutes", Kind: FieldNumber},
			},
			"Goalie Minutes": {
				{Name: "minutes", Kind: FieldNumber},
			},
		},
		PlayerOptions: roster.Keys(players),
	}
}

// Derive commits the primary event. A Goal always expands into a Goal and
// an on-target Shot for the scorer, plus an Assist for the named assisting
// player when one is given. The assist picker excludes the scorer.
func (l lacrosse) Derive(sub Submission, players []roster.Player) []statlog.StatEvent {
	p, ok := roster.Find(players, sub.PlayerKey)
	if !ok {
		log.Warn("Submission player not in roster", "sport", l.Name(), "playerKey", sub.PlayerKey)
		return nil
	}

	ts := sub.At.Format(statlog.TimeFormat)
	var events []statlog.StatEvent

	switch sub.StatType {
	case "Goal":
		goal := statlog.NewEvent(ts, l.Name(), p, "All", "Goal", sub.Notes)
		goal.Goal = intPtr(1)
		shot := statlog.NewEvent(ts, l.Name(), p, "All", "Shot", sub.Notes)
		shot.OnTarget = intPtr(1)
		events = append(events, goal, shot)

		if sub.AssistKey != "" && sub.AssistKey != "None" && sub.AssistKey != p.Key {
			if assister, ok := roster.Find(players, sub.AssistKey); ok {
				events = append(events, statlog.NewEvent(ts, l.Name(), assister, "All", "Assist", sub.Notes))
			} else {
				log.Debug("Dropping paired assist, player not resolvable", "assistKey", sub.AssistKey)
			}
		}

	case "Shot":
		ev := statlog.NewEvent(ts, l.Name(), p, "All", "Shot", sub.Notes)
		if sub.OnTarget != nil {
			ev.OnTarget = intPtr(boolToInt(*sub.OnTarget))
		} else {
			ev.OnTarget = intPtr(0)
		}
		events = append(events, ev)

	case "Faceoff":
		ev := statlog.NewEvent(ts, l.Name(), p, "All", "Faceoff", sub.Notes)
		ev.Outcome = strPtr(sub.FaceoffResult)
		events = append(events, ev)

	case "Penalty":
		ev := statlog.NewEvent(ts, l.Name(), p, "All", "Penalty", sub.Notes)
		ev.PenaltyMinutes = sub.PenaltyMinutes
		events = append(events, ev)

	case "Goalie Minutes":
		ev := statlog.NewEvent(ts, l.Name(), p, "All", "Goalie Minutes", sub.Notes)
		ev.Minutes = sub.Minutes
		events = append(events, ev)

	case "Assist", "Ground Ball", "Takeaway", "Interception", "Turnover", "Save", "Goal Allowed":
		events = append(events, statlog.NewEvent(ts, l.Name(), p, "All", sub.StatType, sub.Notes))
	}

	return events
}

var lacrosseColumns = []string{
	"Goals", "Shots", "Shots on Goal", "Assists", "Points",
	"Ground Balls",
	"Faceoffs Attempted", "Faceoffs Won", "Faceoff %",
	"Takeaways", "Interceptions", "Caused Turnovers", "Turnovers",
	"Penalties", "Penalty Minutes",
	"Saves", "Goals Allowed", "Minutes", "Shots on Goal Faced", "Save %", "GAA",
	"Shooting %", "SOG Rate %",
}

func (l lacrosse) Aggregate(events []statlog.StatEvent) totals.Table {
	groups := groupBySport(l.Name(), events)
	if len(groups) == 0 {
		return totals.Table{}
	}

	rows := make([]totals.Row, 0, len(groups))
	for _, g := range groups {
		row := g.identityRow()

		goals := g.count("Goal")
		shots := g.count("Shot")
		sog := int(g.sum("Shot", func(e statlog.StatEvent) any { return e.OnTarget }))
		assists := g.count("Assist")
		row["Goals"] = goals
		row["Shots"] = shots
		row["Shots on Goal"] = sog
		row["Assists"] = assists
		row["Points"] = goals + assists

		row["Ground Balls"] = g.count("Ground Ball")

		faceoffs := g.count("Faceoff")
		faceoffsWon := g.countWhere("Faceoff", outcomeIs("Win"))
		row["Faceoffs Attempted"] = faceoffs
		row["Faceoffs Won"] = faceoffsWon
		row["Faceoff %"] = pct(float64(faceoffsWon), float64(faceoffs))

		takeaways := g.count("Takeaway")
		interceptions := g.count("Interception")
		row["Takeaways"] = takeaways
		row["Interceptions"] = interceptions
		row["Caused Turnovers"] = takeaways + interceptions
		row["Turnovers"] = g.count("Turnover")

		row["Penalties"] = g.count("Penalty")
		row["Penalty Minutes"] = g.sum("Penalty", func(e statlog.StatEvent) any { return e.PenaltyMinutes })

		saves := g.count("Save")
		goalsAllowed := g.count("Goal Allowed")
		minutes := g.sum("Goalie Minutes", func(e statlog.StatEvent) any { return e.Minutes })
		sogFaced := saves + goalsAllowed
		row["Saves"] = saves
		row["Goals Allowed"] = goalsAllowed
		row["Minutes"] = minutes
		row["Shots on Goal Faced"] = sogFaced
		row["Save %"] = pct(float64(saves), float64(sogFaced))
		// Goals-against average normalized to a 48-minute game.
		if minutes > 0 {
			row["GAA"] = totals.Round2(float64(goalsAllowed) * 48 / minutes)
		} else {
			row["GAA"] = 0.0
		}

		row["Shooting %"] = pct(float64(goals), float64(sog))
		row["SOG Rate %"] = pct(float64(sog), float64(shots))

		rows = append(rows, row)
	}
	totals.SortRows(rows)

	return totals.Table{
		Columns: append(append([]string{}, totals.IdentityColumns...), lacrosseColumns...),
		Rows:    rows,
	}
}
