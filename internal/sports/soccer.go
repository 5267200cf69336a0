package sports

import (
	"github.com/charmbracelet/log"
	"github.com/sidelinestats/scorebook/internal/roster"
	"github.com/sidelinestats/scorebook/internal/statlog"
	"github.com/sidelinestats/scorebook/internal/totals"
)

type soccer struct{}

// Soccer returns the soccer rule plugin. Soccer has no offense/defense
// split; every entry is logged under the single "All" zone.
func Soccer() Sport { return soccer{} }

func (soccer) Name() string { return "Soccer" }

func (soccer) Sides() []string { return []string{"All"} }

var soccerStats = []string{"Shot", "Pass", "Tackle", "Interception", "Save", "Foul"}

func (s soccer) Capture(players []roster.Player) CaptureSpec {
	return CaptureSpec{
		Sport: s.Name(),
		Sides: s.Sides(),
		StatTypes: map[string][]string{
			"All": soccerStats,
		},
		Fields: map[string][]FieldSpec{
			"Shot": {
				{Name: "on_target", Kind: FieldFlag},
				{Name: "goal", Kind: FieldFlag},
			},
			"Pass": {
				{Name: "outcome", Kind: FieldSelect, Options: []string{"Complete", "Incomplete"}},
				{Name: "receiver", Kind: FieldPlayer, ExcludeActor: true},
				{Name: "resulted_goal", Kind: FieldFlag},
			},
			"Foul": {
				{Name: "card", Kind: FieldSelect, Options: []string{"None", "Yellow", "Red"}},
			},
			// Save, Tackle, Interception: no extra fields
		},
		PlayerOptions: roster.Keys(players),
	}
}

// Derive commits the primary event. A completed pass flagged as directly
// producing a goal additionally credits an Assist to the passer and a
// Shot (on target, goal) to the recipient. The recipient list excludes
// the passer.
func (s soccer) Derive(sub Submission, players []roster.Player) []statlog.StatEvent {
	p, ok := roster.Find(players, sub.PlayerKey)
	if !ok {
		log.Warn("Submission player not in roster", "sport", s.Name(), "playerKey", sub.PlayerKey)
		return nil
	}

	ts := sub.At.Format(statlog.TimeFormat)
	var events []statlog.StatEvent

	switch sub.StatType {
	case "Shot":
		ev := statlog.NewEvent(ts, s.Name(), p, "All", "Shot", sub.Notes)
		if sub.OnTarget != nil {
			ev.OnTarget = intPtr(boolToInt(*sub.OnTarget))
		}
		ev.Goal = intPtr(boolToInt(sub.Goal))
		events = append(events, ev)

	case "Pass":
		ev := statlog.NewEvent(ts, s.Name(), p, "All", "Pass", sub.Notes)
		ev.Outcome = strPtr(sub.Outcome)
		events = append(events, ev)

		if sub.Outcome == "Complete" && sub.Receiver != "" && sub.Receiver != p.Key && sub.ResultedGoal {
			events = append(events, statlog.NewEvent(ts, s.Name(), p, "All", "Assist", sub.Notes))

			rcv, ok := roster.Find(players, sub.Receiver)
			if ok {
				shot := statlog.NewEvent(ts, s.Name(), rcv, "All", "Shot", sub.Notes)
				shot.OnTarget = intPtr(1)
				shot.Goal = intPtr(1)
				events = append(events, shot)
			} else {
				log.Debug("Dropping paired shot, recipient not resolvable", "receiver", sub.Receiver)
			}
		}

	case "Tackle", "Interception", "Save":
		events = append(events, statlog.NewEvent(ts, s.Name(), p, "All", sub.StatType, sub.Notes))

	case "Foul":
		ev := statlog.NewEvent(ts, s.Name(), p, "All", "Foul", sub.Notes)
		card := sub.Card
		if card == "" {
			card = "None"
		}
		ev.Card = strPtr(card)
		events = append(events, ev)
	}

	return events
}

var soccerColumns = []string{
	"Shots", "Shots on Target", "Goals",
	"Passes Attempted", "Passes Completed",
	"Assists",
	"Tackles", "Interceptions",
	"Saves",
	"Fouls", "Yellow Cards", "Red Cards",
	"Pass Completion %",
}

func (s soccer) Aggregate(events []statlog.StatEvent) totals.Table {
	groups := groupBySport(s.Name(), events)
	if len(groups) == 0 {
		return totals.Table{}
	}

	rows := make([]totals.Row, 0, len(groups))
	for _, g := range groups {
		row := g.identityRow()

		row["Shots"] = g.count("Shot")
		row["Shots on Target"] = int(g.sum("Shot", func(e statlog.StatEvent) any { return e.OnTarget }))
		row["Goals"] = int(g.sum("Shot", func(e statlog.StatEvent) any { return e.Goal }))

		row["Passes Attempted"] = g.count("Pass")
		row["Passes Completed"] = g.countWhere("Pass", outcomeIs("Complete"))

		row["Assists"] = g.count("Assist")

		row["Tackles"] = g.count("Tackle")
		row["Interceptions"] = g.count("Interception")
		row["Saves"] = g.count("Save")

		row["Fouls"] = g.count("Foul")
		row["Yellow Cards"] = g.countWhere("Foul", cardIs("Yellow"))
		row["Red Cards"] = g.countWhere("Foul", cardIs("Red"))

		row["Pass Completion %"] = pct(float64(row["Passes Completed"].(int)), float64(row["Passes Attempted"].(int)))

		rows = append(rows, row)
	}
	totals.SortRows(rows)

	return totals.Table{
		Columns: append(append([]string{}, totals.IdentityColumns...), soccerColumns...),
		Rows:    rows,
	}
}

func cardIs(want string) func(statlog.StatEvent) bool {
	return func(e statlog.StatEvent) bool {
		return e.Card != nil && *e.Card == want
	}
}
