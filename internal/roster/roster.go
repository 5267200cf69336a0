package roster

import (
	"fmt"
	"strconv"
	"strings"
)

// BuildKey formats the human-readable player key used throughout the event
// log, e.g. "#12 Jane Doe". Unknown numbers render as "#?".
func BuildKey(number *int, firstName, lastName string) string {
	num := "?"
	if number != nil {
		num = strconv.Itoa(*number)
	}
	return fmt.Sprintf("#%s %s %s", num, firstName, lastName)
}

// Normalize converts raw roster records into Players. It fails when a
// required column is absent from the records or when two rows collapse to
// the same player key. Jersey numbers that fail to parse become nil, not
// an error.
func Normalize(records []Record) ([]Player, error) {
	if err := checkColumns(records); err != nil {
		return nil, err
	}

	players := make([]Player, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		p := Player{
			FirstName: strings.TrimSpace(rec[ColFirstName]),
			LastName:  strings.TrimSpace(rec[ColLastName]),
			Number:    parseNumber(rec[ColNumber]),
			Positions: strings.TrimSpace(rec[ColPositions]),
		}
		p.Key = BuildKey(p.Number, p.FirstName, p.LastName)
		if seen[p.Key] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, p.Key)
		}
		seen[p.Key] = true
		players = append(players, p)
	}
	return players, nil
}

// Find returns the roster entry for key, or false when no such player
// exists. Paired-event derivation relies on the ok flag to drop secondary
// events for unresolvable players.
func Find(players []Player, key string) (Player, bool) {
	for _, p := range players {
		if p.Key == key {
			return p, true
		}
	}
	return Player{}, false
}

// Keys returns the player keys in roster order.
func Keys(players []Player) []string {
	keys := make([]string, 0, len(players))
	for _, p := range players {
		keys = append(keys, p.Key)
	}
	return keys
}

func checkColumns(records []Record) error {
	if len(records) == 0 {
		return nil
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := records[0][col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return nil
}

func parseNumber(raw string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &n
}
