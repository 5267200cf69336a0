package statlog

import (
	"fmt"
	"sync"

	"github.com/sidelinestats/scorebook/internal/roster"
)

// TimeFormat is the capture timestamp layout, second precision.
const TimeFormat = "2006-01-02T15:04:05"

// StatEvent is one committed fact in the event log. Events are immutable
// once appended; corrections are made by appending, never by editing.
//
// The attribute fields are sparse: each stat type populates only its
// relevant subset and leaves the rest nil.
type StatEvent struct {
	Timestamp string `json:"timestamp"`
	Sport     string `json:"sport"`
	PlayerKey string `json:"player_key"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Number    *int   `json:"number"`
	Positions string `json:"positions"`
	Side      string `json:"side"`
	StatType  string `json:"stat_type"`

	Outcome        *string  `json:"outcome,omitempty"`
	Yards          *int     `json:"yards,omitempty"`
	Touchdown      *int     `json:"touchdown,omitempty"`
	OnTarget       *int     `json:"on_target,omitempty"`
	Goal           *int     `json:"goal,omitempty"`
	Card           *string  `json:"card,omitempty"`
	PenaltyMinutes *float64 `json:"penalty_minutes,omitempty"`
	Minutes        *float64 `json:"minutes,omitempty"`

	Notes string `json:"notes"`
}

// NewEvent builds the identity portion of an event from a roster entry.
func NewEvent(timestamp, sport string, p roster.Player, side, statType, notes string) StatEvent {
	return StatEvent{
		Timestamp: timestamp,
		Sport:     sport,
		PlayerKey: p.Key,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Number:    p.Number,
		Positions: p.Positions,
		Side:      side,
		StatType:  statType,
		Notes:     notes,
	}
}

// Game identifies one scoring session: sport, date, opponent and the
// external storage identity the roster was loaded from. Immutable once
// created; starting a new game discards the previous roster and log.
type Game struct {
	ID       string `json:"id"`
	Sport    string `json:"sport"`
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
	SourceID string `json:"source_id"`
}

// Label is the artifact label used when persisting totals and the log.
func (g Game) Label() string {
	return fmt.Sprintf("%s %s vs %s", g.Sport, g.Date, g.Opponent)
}

// EventLog is the append-only, order-preserving sequence of committed
// events for one game.
type EventLog struct {
	mu     sync.RWMutex
	events []StatEvent
}
