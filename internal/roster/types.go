package roster

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
)

// Expected roster column headers. CSV imports and sheet reads must carry
// exactly this set.
const (
	ColFirstName = "Player First Name"
	ColLastName  = "Player Last Name"
	ColNumber    = "Player Number"
	ColPositions = "Player Position(s)"
)

// RequiredColumns is the exact header set a roster table must have.
var RequiredColumns = []string{ColFirstName, ColLastName, ColNumber, ColPositions}

var (
	// ErrMissingColumns indicates the roster source lacks one or more required columns.
	ErrMissingColumns = errors.New("roster is missing required columns")
	// ErrNotFound indicates no roster exists for the requested source.
	ErrNotFound = errors.New("no roster found for source")
	// ErrDuplicateKey indicates two roster rows produced the same player key.
	ErrDuplicateKey = errors.New("duplicate player key in roster")
)

// LoadError is the fatal failure of a roster load. Game creation surfaces
// it to the user and does not retry.
type LoadError struct {
	SourceID string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load roster from %q: %s", e.SourceID, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Player is one normalized roster row. Number is nil when the jersey
// number could not be parsed.
type Player struct {
	Key       string `json:"player_key"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Number    *int   `json:"number"`
	Positions string `json:"positions"`
}

// Record is one raw roster row keyed by column header, before normalization.
type Record map[string]string

// store handles all database operations for rosters.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
