package roster

import (
	"context"
	"database/sql"

	"github.com/charmbracelet/log"
)

// NewStore creates a database-backed roster Source.
func NewStore(db *sql.DB) Source {
	return &store{db: db}
}

// Load reads the roster for sourceID in stored order. A source with no
// rows is treated as unreachable, the same way a missing sheet would be.
func (s *store) Load(ctx context.Context, sourceID string) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT player_key, first_name, last_name, number, positions
		FROM roster
		WHERE source_id = ?
		ORDER BY position ASC;
	`, sourceID)
	if err != nil {
		return nil, &LoadError{SourceID: sourceID, Err: err}
	}
	defer rows.Close()

	var players []Player
	for rows.Next() {
		var p Player
		var number sql.NullInt64
		if err := rows.Scan(&p.Key, &p.FirstName, &p.LastName, &number, &p.Positions); err != nil {
			return nil, &LoadError{SourceID: sourceID, Err: err}
		}
		if number.Valid {
			n := int(number.Int64)
			p.Number = &n
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{SourceID: sourceID, Err: err}
	}
	if len(players) == 0 {
		return nil, &LoadError{SourceID: sourceID, Err: ErrNotFound}
	}
	log.Debug("Loaded roster", "sourceID", sourceID, "players", len(players))
	return players, nil
}

// Replace swaps the stored roster for sourceID wholesale, in one
// transaction. Prior rows under the same source are discarded.
func (s *store) Replace(ctx context.Context, sourceID string, players []Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM roster WHERE source_id = ?;`, sourceID); err != nil {
		tx.Rollback()
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO roster (source_id, position, player_key, first_name, last_name, number, positions)
		VALUES (?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i, p := range players {
		var number any
		if p.Number != nil {
			number = *p.Number
		}
		if _, err := stmt.ExecContext(ctx, sourceID, i, p.Key, p.FirstName, p.LastName, number, p.Positions); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Replaced roster", "sourceID", sourceID, "players", len(players))
	return nil
}
