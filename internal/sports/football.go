package sports

import (
	"github.com/charmbracelet/log"
	"github.com/sidelinestats/scorebook/internal/roster"
	"github.com/sidelinestats/scorebook/internal/statlog"
	"github.com/sidelinestats/scorebook/internal/totals"
)

type football struct{}

// Football returns the football rule plugin.
func Football() Sport { return football{} }

func (football) Name() string { return "Football" }

func (football) Sides() []string { return []string{"Offense", "Defense"} }

var footballOffenseStats = []string{"Reception", "Run", "Fumble", "Pass", "Field Goal", "Punt"}
var footballDefenseStats = []string{"Forced Fumble", "Sack", "Interception", "Tackle", "Return"}

func (f football) Capture(players []roster.Player) CaptureSpec {
	return CaptureSpec{
		Sport: f.Name(),
		Sides: f.Sides(),
		StatTypes: map[string][]string{
			"Offense": footballOffenseStats,
			"Defense": footballDefenseStats,
		},
		Fields: map[string][]FieldSpec{
			"Reception": {
				{Name: "yards", Kind: FieldNumber},
				{Name: "touchdown", Kind: FieldFlag},
			},
			"Run": {
				{Name: "yards", Kind: FieldNumber},
				{Name: "touchdown", Kind: FieldFlag},
			},
			"Punt": {
				{Name: "yards", Kind: FieldNumber},
			},
			"Pass": {
				{Name: "outcome", Kind: FieldSelect, Options: []string{"Complete", "Incomplete"}},
				{Name: "yards", Kind: FieldNumber},
				{Name: "receiver", Kind: FieldPlayer, ExcludeActor: true},
				{Name: "pair_reception", Kind: FieldFlag},
				{Name: "touchdown", Kind: FieldFlag},
			},
			"Field Goal": {
				{Name: "outcome", Kind: FieldSelect, Options: []string{"Made", "Miss"}},
				{Name: "yards", Kind: FieldNumber},
			},
			"Return": {
				{Name: "yards", Kind: FieldNumber},
				{Name: "touchdown", Kind: FieldFlag},
			},
			"Interception": {
				{Name: "touchdown", Kind: FieldFlag},
			},
			// Fumble, Forced Fumble, Sack, Tackle: no extra fields
		},
		PlayerOptions: roster.Keys(players),
	}
}

// Derive commits the primary event and, for a completed pass with pairing
// enabled, a Reception for the receiver carrying the same yards and
// touchdown flag. The receiver list excludes the passer.
func (f football) Derive(sub Submission, players []roster.Player) []statlog.StatEvent {
	p, ok := roster.Find(players, sub.PlayerKey)
	if !ok {
		log.Warn("Submission player not in roster", "sport", f.Name(), "playerKey", sub.PlayerKey)
		return nil
	}

	ts := sub.At.Format(statlog.TimeFormat)
	ev := statlog.NewEvent(ts, f.Name(), p, sub.Side, sub.StatType, sub.Notes)

	switch sub.StatType {
	case "Reception", "Run":
		ev.Yards = sub.Yards
		ev.Touchdown = intPtr(boolToInt(sub.Touchdown))
	case "Punt":
		ev.Yards = sub.Yards
	case "Pass":
		ev.Outcome = strPtr(sub.Outcome)
		if sub.Outcome == "Complete" {
			ev.Yards = sub.Yards
			ev.Touchdown = intPtr(boolToInt(sub.Touchdown))
		}
	case "Field Goal":
		// Attempt distance is recorded whether made or missed.
		ev.Outcome = strPtr(sub.Outcome)
		ev.Yards = sub.Yards
	case "Return":
		ev.Yards = sub.Yards
		ev.Touchdown = intPtr(boolToInt(sub.Touchdown))
	case "Interception":
		ev.Touchdown = intPtr(boolToInt(sub.Touchdown))
		// Fumble, Forced Fumble, Sack, Tackle carry no yards or touchdown.
	}

	events := []statlog.StatEvent{ev}

	if sub.Side == "Offense" && sub.StatType == "Pass" && sub.Outcome == "Complete" && sub.PairReception {
		rcv, ok := roster.Find(players, sub.Receiver)
		if ok && rcv.Key != p.Key {
			paired := statlog.NewEvent(ts, f.Name(), rcv, "Offense", "Reception", sub.Notes)
			paired.Yards = sub.Yards
			paired.Touchdown = intPtr(boolToInt(sub.Touchdown))
			events = append(events, paired)
		} else {
			// Best-effort secondary event: the pass still commits.
			log.Debug("Dropping paired reception, receiver not resolvable", "receiver", sub.Receiver)
		}
	}

	return events
}

var footballColumns = []string{
	"Receptions", "Receiving Yards", "Receiving TDs",
	"Rush Attempts", "Rushing Yards", "Rushing TDs",
	"Punts", "Punt Yards", "Fumbles",
	"Pass Attempts", "Pass Completions", "Pass Yards", "Passing TDs",
	"FG Attempts", "FG Made", "FG Attempt Yards (Total)",
	"Forced Fumbles", "Sacks", "Interceptions", "Tackles",
	"Return Yards", "Defensive TDs",
	"Touchdowns (Total)",
}

func (f football) Aggregate(events []statlog.StatEvent) totals.Table {
	groups := groupBySport(f.Name(), events)
	if len(groups) == 0 {
		return totals.Table{}
	}

	yards := func(e statlog.StatEvent) any { return e.Yards }

	rows := make([]totals.Row, 0, len(groups))
	for _, g := range groups {
		row := g.identityRow()

		// Offense
		row["Receptions"] = g.count("Reception")
		row["Receiving Yards"] = int(g.sum("Reception", yards))
		row["Receiving TDs"] = g.countWhere("Reception", touchdownSet)

		row["Rush Attempts"] = g.count("Run")
		row["Rushing Yards"] = int(g.sum("Run", yards))
		row["Rushing TDs"] = g.countWhere("Run", touchdownSet)

		row["Punts"] = g.count("Punt")
		row["Punt Yards"] = int(g.sum("Punt", yards))
		row["Fumbles"] = g.count("Fumble")

		// Passing
		row["Pass Attempts"] = g.count("Pass")
		row["Pass Completions"] = g.countWhere("Pass", outcomeIs("Complete"))
		row["Pass Yards"] = int(g.sumWhere("Pass", outcomeIs("Complete"), yards))
		row["Passing TDs"] = g.countWhere("Pass", func(e statlog.StatEvent) bool {
			return outcomeIs("Complete")(e) && touchdownSet(e)
		})

		// Field goals: attempt distance counts toward the total made or missed.
		row["FG Attempts"] = g.count("Field Goal")
		row["FG Made"] = g.countWhere("Field Goal", outcomeIs("Made"))
		row["FG Attempt Yards (Total)"] = int(g.sum("Field Goal", yards))

		// Defense
		row["Forced Fumbles"] = g.count("Forced Fumble")
		row["Sacks"] = g.count("Sack")
		row["Interceptions"] = g.count("Interception")
		row["Tackles"] = g.count("Tackle")
		row["Return Yards"] = int(g.sum("Return", yards))
		row["Defensive TDs"] = g.countWhere("Interception", touchdownSet) + g.countWhere("Return", touchdownSet)

		row["Touchdowns (Total)"] = row["Receiving TDs"].(int) + row["Rushing TDs"].(int) +
			row["Passing TDs"].(int) + row["Defensive TDs"].(int)

		rows = append(rows, row)
	}
	totals.SortRows(rows)

	return totals.Table{
		Columns: append(append([]string{}, totals.IdentityColumns...), footballColumns...),
		Rows:    rows,
	}
}
