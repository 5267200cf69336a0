package sports

import "time"

// Submission is a user-supplied candidate stat entry, before derivation
// into committed events. Fields beyond PlayerKey/Side/StatType are
// stat-type-conditional; each sport reads only its own subset.
type Submission struct {
	PlayerKey string `json:"player_key"`
	Side      string `json:"side"`
	StatType  string `json:"stat_type"`

	Outcome        string   `json:"outcome,omitempty"`
	Yards          *int     `json:"yards,omitempty"`
	Touchdown      bool     `json:"touchdown,omitempty"`
	Receiver       string   `json:"receiver,omitempty"`
	PairReception  bool     `json:"pair_reception,omitempty"`
	ResultedGoal   bool     `json:"resulted_goal,omitempty"`
	OnTarget       *bool    `json:"on_target,omitempty"`
	Goal           bool     `json:"goal,omitempty"`
	Card           string   `json:"card,omitempty"`
	AssistKey      string   `json:"assist_key,omitempty"`
	FaceoffResult  string   `json:"faceoff_result,omitempty"`
	PenaltyMinutes *float64 `json:"penalty_minutes,omitempty"`
	Minutes        *float64 `json:"minutes,omitempty"`

	Notes string `json:"notes,omitempty"`

	// At is the capture time stamped onto derived events. The HTTP
	// layer sets it on receipt so Derive stays deterministic.
	At time.Time `json:"-"`
}

// FieldKind classifies a conditional capture field.
type FieldKind string

const (
	FieldNumber FieldKind = "number"
	FieldSelect FieldKind = "select"
	FieldFlag   FieldKind = "flag"
	FieldPlayer FieldKind = "player"
)

// FieldSpec describes one conditional input a stat type needs.
type FieldSpec struct {
	Name         string    `json:"name"`
	Kind         FieldKind `json:"kind"`
	Options      []string  `json:"options,omitempty"`
	ExcludeActor bool      `json:"exclude_actor,omitempty"`
	Optional     bool      `json:"optional,omitempty"`
}

// CaptureSpec declares what a stat entry needs for one sport: the zones,
// the stat type options per zone, the conditional fields per stat type and
// the eligible players. An unimplemented sport returns an empty spec.
type CaptureSpec struct {
	Sport         string                 `json:"sport"`
	Sides         []string               `json:"sides"`
	StatTypes     map[string][]string    `json:"stat_types,omitempty"`
	Fields        map[string][]FieldSpec `json:"fields,omitempty"`
	PlayerOptions []string               `json:"player_options,omitempty"`
}

// Implemented reports whether the sport actually captures anything.
func (c CaptureSpec) Implemented() bool {
	return len(c.StatTypes) > 0
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
