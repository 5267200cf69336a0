package archive

import (
	"context"
	"database/sql"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/sidelinestats/scorebook/internal/statlog"
	"github.com/sidelinestats/scorebook/internal/totals"
	"github.com/vmihailenco/msgpack/v5"
)

// store handles all database operations for saved game artifacts.
type store struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a database-backed artifact Store.
func New(db *sql.DB) Store {
	return &store{db: db}
}

// SaveTotals replaces the totals artifact stored under (sourceID, label).
func (s *store) SaveTotals(ctx context.Context, sourceID, label string, table totals.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM saved_totals WHERE source_id = ? AND label = ?;`, sourceID, label); err != nil {
		tx.Rollback()
		return err
	}

	columnsBlob, err := msgpack.Marshal(table.Columns)
	if err != nil {
		tx.Rollback()
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO saved_totals (source_id, label, position, columns_blob, row_blob)
		VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i, row := range table.Rows {
		rowBlob, err := msgpack.Marshal(map[string]any(row))
		if err != nil {
			tx.Rollback()
			return err
		}
		if _, err := stmt.ExecContext(ctx, sourceID, label, i, columnsBlob, rowBlob); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Saved totals artifact", "sourceID", sourceID, "label", label, "rows", len(table.Rows))
	return nil
}

// SaveLog replaces the event log artifact stored under (sourceID, label).
// The insertion order of the log is the audit trail and is preserved via
// the position column.
func (s *store) SaveLog(ctx context.Context, sourceID, label string, events []statlog.StatEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM saved_events WHERE source_id = ? AND label = ?;`, sourceID, label); err != nil {
		tx.Rollback()
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO saved_events (source_id, label, position, timestamp, sport, player_key, side, stat_type, attrs_blob, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i, e := range events {
		attrsBlob, err := msgpack.Marshal(e)
		if err != nil {
			tx.Rollback()
			return err
		}
		if _, err := stmt.ExecContext(ctx, sourceID, label, i, e.Timestamp, e.Sport, e.PlayerKey, e.Side, e.StatType, attrsBlob, e.Notes); err != nil {
			tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Saved log artifact", "sourceID", sourceID, "label", label, "events", len(events))
	return nil
}

// Totals reads back a saved totals artifact.
func (s *store) Totals(ctx context.Context, sourceID, label string) (totals.Table, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT columns_blob, row_blob
		FROM saved_totals
		WHERE source_id = ? AND label = ?
		ORDER BY position ASC;
	`, sourceID, label)
	if err != nil {
		return totals.Table{}, err
	}
	defer rows.Close()

	var table totals.Table
	for rows.Next() {
		var columnsBlob, rowBlob []byte
		if err := rows.Scan(&columnsBlob, &rowBlob); err != nil {
			return totals.Table{}, err
		}
		if table.Columns == nil {
			if err := msgpack.Unmarshal(columnsBlob, &table.Columns); err != nil {
				return totals.Table{}, err
			}
		}
		var row map[string]any
		if err := msgpack.Unmarshal(rowBlob, &row); err != nil {
			return totals.Table{}, err
		}
		table.Rows = append(table.Rows, totals.Row(row))
	}
	return table, rows.Err()
}

// Events reads back a saved event log artifact in insertion order.
func (s *store) Events(ctx context.Context, sourceID, label string) ([]statlog.StatEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT attrs_blob
		FROM saved_events
		WHERE source_id = ? AND label = ?
		ORDER BY position ASC;
	`, sourceID, label)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []statlog.StatEvent
	for rows.Next() {
		var blob []byte
		if err := rows.Scan(&blob); err != nil {
			return nil, err
		}
		var e statlog.StatEvent
		if err := msgpack.Unmarshal(blob, &e); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
