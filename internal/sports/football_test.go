package sports_test

import (
	"testing"
	"time"

	"github.com/sidelinestats/scorebook/internal/roster"
	"github.com/sidelinestats/scorebook/internal/sports"
	"github.com/sidelinestats/scorebook/internal/statlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int           { return &n }
func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

var captureTime = time.Date(2025, 9, 12, 19, 30, 0, 0, time.UTC)

func testRoster() []roster.Player {
	return []roster.Player{
		{Key: "#7 Jordan Blake", FirstName: "Jordan", LastName: "Blake", Number: intPtr(7), Positions: "QB"},
		{Key: "#11 Alex Reed", FirstName: "Alex", LastName: "Reed", Number: intPtr(11), Positions: "WR"},
		{Key: "#24 Sam Carter", FirstName: "Sam", LastName: "Carter", Number: intPtr(24), Positions: "RB"},
		{Key: "#? Pat Li", FirstName: "Pat", LastName: "Li", Number: nil, Positions: "OL"},
	}
}

func TestFootballDerive(t *testing.T) {
	fb := sports.Football()
	players := testRoster()

	t.Run("reception carries yards and touchdown", func(t *testing.T) {
		events := fb.Derive(sports.Submission{
			PlayerKey: "#11 Alex Reed",
			Side:      "Offense",
			StatType:  "Reception",
			Yards:     intPtr(23),
			Touchdown: true,
			At:        captureTime,
		}, players)

		require.Len(t, events, 1)
		ev := events[0]
		assert.Equal(t, "2025-09-12T19:30:00", ev.Timestamp)
		assert.Equal(t, "Football", ev.Sport)
		assert.Equal(t, "#11 Alex Reed", ev.PlayerKey)
		assert.Equal(t, "Reception", ev.StatType)
		require.NotNil(t, ev.Yards)
		assert.Equal(t, 23, *ev.Yards)
		require.NotNil(t, ev.Touchdown)
		assert.Equal(t, 1, *ev.Touchdown)
	})

	t.Run("punt carries yards only", func(t *testing.T) {
		events := fb.Derive(sports.Submission{
			PlayerKey: "#24 Sam Carter",
			Side:      "Offense",
			StatType:  "Punt",
			Yards:     intPtr(41),
			Touchdown: true, // ignored for punts
			At:        captureTime,
		}, players)

		require.Len(t, events, 1)
		require.NotNil(t, events[0].Yards)
		assert.Equal(t, 41, *events[0].Yards)
		assert.Nil(t, events[0].Touchdown)
	})

	t.Run("incomplete pass records outcome but no yards", func(t *testing.T) {
		events := fb.Derive(sports.Submission{
			PlayerKey: "#7 Jordan Blake",
			Side:      "Offense",
			StatType:  "Pass",
			Outcome:   "Incomplete",
			Yards:     intPtr(15),
			Touchdown: true,
			At:        captureTime,
		}, players)

		require.Len(t, events, 1)
		require.NotNil(t, events[0].Outcome)
		assert.Equal(t, "Incomplete", *events[0].Outcome)
		assert.Nil(t, events[0].Yards)
		assert.Nil(t, events[0].Touchdown)
	})

	t.Run("completed pass with pairing commits a matching reception", func(t *testing.T) {
		events := fb.Derive(sports.Submission{
			PlayerKey:     "#7 Jordan Blake",
			Side:          "Offense",
			StatType:      "Pass",
			Outcome:       "Complete",
			Yards:         intPtr(32),
			Touchdown:     true,
			Receiver:      "#11 Alex Reed",
			PairReception: true,
			At:            captureTime,
		}, players)

		require.Len(t, events, 2)

		pass := events[0]
		assert.Equal(t, "Pass", pass.StatType)
		assert.Equal(t, "#7 Jordan Blake", pass.PlayerKey)
		require.NotNil(t, pass.Yards)
		assert.Equal(t, 32, *pass.Yards)

		rec := events[1]
		assert.Equal(t, "Reception", rec.StatType)
		assert.Equal(t, "#11 Alex Reed", rec.PlayerKey)
		assert.Equal(t, "Alex", rec.FirstName)
		assert.Equal(t, "Offense", rec.Side)
		require.NotNil(t, rec.Yards)
		assert.Equal(t, 32, *rec.Yards)
		require.NotNil(t, rec.Touchdown)
		assert.Equal(t, 1, *rec.Touchdown)
		assert.Equal(t, pass.Timestamp, rec.Timestamp)
	})

	t.Run("pairing drops silently when the receiver is unresolvable", func(t *testing.T) {
		events := fb.Derive(sports.Submission{
			PlayerKey:     "#7 Jordan Blake",
			Side:          "Offense",
			StatType:      "Pass",
			Outcome:       "Complete",
			Yards:         intPtr(10),
			Receiver:      "#99 Nobody Here",
			PairReception: true,
			At:            captureTime,
		}, players)

		require.Len(t, events, 1)
		assert.Equal(t, "Pass", events[0].StatType)
	})

	t.Run("pairing drops when the receiver is the passer", func(t *testing.T) {
		events := fb.Derive(sports.Submission{
			PlayerKey:     "#7 Jordan Blake",
			Side:          "Offense",
			StatType:      "Pass",
			Outcome:       "Complete",
			Yards:         intPtr(10),
			Receiver:      "#7 Jordan Blake",
			PairReception: true,
			At:            captureTime,
		}, players)

		require.Len(t, events, 1)
	})

	t.Run("missed field goal still records distance", func(t *testing.T) {
		events := fb.Derive(sports.Submission{
			PlayerKey: "#24 Sam Carter",
			Side:      "Offense",
			StatType:  "Field Goal",
			Outcome:   "Miss",
			Yards:     intPtr(47),
			At:        captureTime,
		}, players)

		require.Len(t, events, 1)
		require.NotNil(t, events[0].Outcome)
		assert.Equal(t, "Miss", *events[0].Outcome)
		require.NotNil(t, events[0].Yards)
		assert.Equal(t, 47, *events[0].Yards)
	})

	t.Run("interception records touchdown flag only", func(t *testing.T) {
		events := fb.Derive(sports.Submission{
			PlayerKey: "#24 Sam Carter",
			Side:      "Defense",
			StatType:  "Interception",
			Touchdown: true,
			Yards:     intPtr(30), // no yards attribute for interceptions
			At:        captureTime,
		}, players)

		require.Len(t, events, 1)
		assert.Nil(t, events[0].Yards)
		require.NotNil(t, events[0].Touchdown)
		assert.Equal(t, 1, *events[0].Touchdown)
	})

	t.Run("tackle carries no extra attributes", func(t *testing.T) {
		events := fb.Derive(sports.Submission{
			PlayerKey: "#? Pat Li",
			Side:      "Defense",
			StatType:  "Tackle",
			At:        captureTime,
		}, players)

		require.Len(t, events, 1)
		assert.Nil(t, events[0].Yards)
		assert.Nil(t, events[0].Touchdown)
		assert.Nil(t, events[0].Outcome)
	})

	t.Run("unknown player commits nothing", func(t *testing.T) {
		events := fb.Derive(sports.Submission{
			PlayerKey: "#99 Nobody Here",
			Side:      "Offense",
			StatType:  "Run",
			At:        captureTime,
		}, players)
		assert.Empty(t, events)
	})
}

func footballLog(t *testing.T) []statlog.StatEvent {
	t.Helper()
	fb := sports.Football()
	players := testRoster()

	var events []statlog.StatEvent
	submit := func(sub sports.Submission) {
		sub.At = captureTime
		derived := fb.Derive(sub, players)
		require.NotEmpty(t, derived)
		events = append(events, derived...)
	}

	// Jordan: 3 passes. Two complete (one paired TD to Alex), one incomplete.
	submit(sports.Submission{PlayerKey: "#7 Jordan Blake", Side: "Offense", StatType: "Pass",
		Outcome: "Complete", Yards: intPtr(32), Touchdown: true, Receiver: "#11 Alex Reed", PairReception: true})
	submit(sports.Submission{PlayerKey: "#7 Jordan Blake", Side: "Offense", StatType: "Pass",
		Outcome: "Complete", Yards: intPtr(8)})
	submit(sports.Submission{PlayerKey: "#7 Jordan Blake", Side: "Offense", StatType: "Pass",
		Outcome: "Incomplete", Yards: intPtr(40)})

	// Alex: one manual reception on top of the paired one.
	submit(sports.Submission{PlayerKey: "#11 Alex Reed", Side: "Offense", StatType: "Reception",
		Yards: intPtr(12)})

	// Sam: runs, a return touchdown and a field goal attempt.
	submit(sports.Submission{PlayerKey: "#24 Sam Carter", Side: "Offense", StatType: "Run",
		Yards: intPtr(6)})
	submit(sports.Submission{PlayerKey: "#24 Sam Carter", Side: "Offense", StatType: "Run",
		Yards: intPtr(-2)})
	submit(sports.Submission{PlayerKey: "#24 Sam Carter", Side: "Defense", StatType: "Return",
		Yards: intPtr(85), Touchdown: true})
	submit(sports.Submission{PlayerKey: "#24 Sam Carter", Side: "Offense", StatType: "Field Goal",
		Outcome: "Miss", Yards: intPtr(47)})

	// Pat: defense only.
	submit(sports.Submission{PlayerKey: "#? Pat Li", Side: "Defense", StatType: "Tackle"})
	submit(sports.Submission{PlayerKey: "#? Pat Li", Side: "Defense", StatType: "Sack"})
	submit(sports.Submission{PlayerKey: "#? Pat Li", Side: "Defense", StatType: "Interception",
		Touchdown: true})

	return events
}

func TestFootballAggregate(t *testing.T) {
	fb := sports.Football()
	events := footballLog(t)

	table := fb.Aggregate(events)
	require.Len(t, table.Rows, 4)

	// Rows are sorted by last name then first name.
	assert.Equal(t, "#7 Jordan Blake", table.Rows[0]["player_key"])
	assert.Equal(t, "#24 Sam Carter", table.Rows[1]["player_key"])
	assert.Equal(t, "#? Pat Li", table.Rows[2]["player_key"])
	assert.Equal(t, "#11 Alex Reed", table.Rows[3]["player_key"])

	jordan := table.Rows[0]
	assert.Equal(t, 3, jordan["Pass Attempts"])
	assert.Equal(t, 2, jordan["Pass Completions"])
	assert.Equal(t, 40, jordan["Pass Yards"])
	assert.Equal(t, 1, jordan["Passing TDs"])
	assert.Equal(t, 1, jordan["Touchdowns (Total)"])
	assert.Equal(t, 0, jordan["Receptions"])

	alex := table.Rows[3]
	assert.Equal(t, 2, alex["Receptions"])
	assert.Equal(t, 44, alex["Receiving Yards"])
	assert.Equal(t, 1, alex["Receiving TDs"])
	assert.Equal(t, 1, alex["Touchdowns (Total)"])

	sam := table.Rows[1]
	assert.Equal(t, 2, sam["Rush Attempts"])
	assert.Equal(t, 4, sam["Rushing Yards"])
	assert.Equal(t, 0, sam["Rushing TDs"])
	assert.Equal(t, 85, sam["Return Yards"])
	assert.Equal(t, 1, sam["Defensive TDs"])
	assert.Equal(t, 1, sam["FG Attempts"])
	assert.Equal(t, 0, sam["FG Made"])
	assert.Equal(t, 47, sam["FG Attempt Yards (Total)"])
	assert.Equal(t, 1, sam["Touchdowns (Total)"])

	pat := table.Rows[2]
	assert.Equal(t, 1, pat["Tackles"])
	assert.Equal(t, 1, pat["Sacks"])
	assert.Equal(t, 1, pat["Interceptions"])
	assert.Equal(t, 1, pat["Defensive TDs"])
	assert.Nil(t, pat["number"])
}

func TestFootballAggregateIdempotent(t *testing.T) {
	fb := sports.Football()
	events := footballLog(t)

	first := fb.Aggregate(events)
	second := fb.Aggregate(events)
	assert.Equal(t, first, second)
}

func TestFootballAggregateOrderIndependent(t *testing.T) {
	fb := sports.Football()
	events := footballLog(t)

	reversed := make([]statlog.StatEvent, len(events))
	for i, e := range events {
		reversed[len(events)-1-i] = e
	}

	assert.Equal(t, fb.Aggregate(events), fb.Aggregate(reversed))
}

func TestFootballAggregateIgnoresOtherSports(t *testing.T) {
	fb := sports.Football()
	sc := sports.Soccer()
	players := testRoster()

	soccerEvents := sc.Derive(sports.Submission{
		PlayerKey: "#11 Alex Reed", Side: "All", StatType: "Shot",
		OnTarget: boolPtr(true), Goal: true, At: captureTime,
	}, players)
	require.NotEmpty(t, soccerEvents)

	table := fb.Aggregate(soccerEvents)
	assert.True(t, table.Empty())
	assert.Empty(t, table.Columns)
}

func TestFootballCapture(t *testing.T) {
	fb := sports.Football()
	spec := fb.Capture(testRoster())

	assert.True(t, spec.Implemented())
	assert.Equal(t, "Football", spec.Sport)
	assert.Equal(t, []string{"Offense", "Defense"}, spec.Sides)
	assert.Contains(t, spec.StatTypes["Offense"], "Pass")
	assert.Contains(t, spec.StatTypes["Defense"], "Tackle")
	assert.Len(t, spec.PlayerOptions, 4)

	var receiver *sports.FieldSpec
	for i := range spec.Fields["Pass"] {
		if spec.Fields["Pass"][i].Name == "receiver" {
			receiver = &spec.Fields["Pass"][i]
		}
	}
	require.NotNil(t, receiver)
	assert.Equal(t, sports.FieldPlayer, receiver.Kind)
	assert.True(t, receiver.ExcludeActor)
}
