package storage

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ModelUsage is one row of the per-model usage ledger.
type ModelUsage struct {
	Model    string
	Turns    int
	LastUsed time.Time
}

// UsageStore keeps a per-model count of settled turns in a local sqlite
// database. One row per model id, bumped once per successful turn.
type UsageStore struct {
	db *sql.DB
}

// NewUsageStore opens (or creates) the usage database in dataDir.
func NewUsageStore(dataDir string) (*UsageStore, error) {
	dbPath := filepath.Join(dataDir, "usage.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &UsageStore{db: db}

	if err := store.initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

func (us *UsageStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS model_usage (
		model TEXT PRIMARY KEY,
		turns INTEGER NOT NULL,
		last_used DATETIME NOT NULL
	);
	`

	_, err := us.db.Exec(schema)
	return err
}

// RecordTurn bumps the turn counter for a model, inserting the row on first
// use.
func (us *UsageStore) RecordTurn(modelID string) error {
	query := `
	INSERT INTO model_usage (model, turns, last_used)
	VALUES (?, 1, ?)
	ON CONFLICT(model) DO UPDATE SET
		turns = turns + 1,
		last_used = excluded.last_used
	`

	_, err := us.db.Exec(query, modelID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to record turn: %w", err)
	}
	return nil
}

// Totals returns all usage rows, most-used first.
func (us *UsageStore) Totals() ([]ModelUsage, error) {
	rows, err := us.db.Query(`
		SELECT model, turns, last_used
		FROM model_usage
		ORDER BY turns DESC, model ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage: %w", err)
	}
	defer rows.Close()

	var totals []ModelUsage
	for rows.Next() {
		var u ModelUsage
		if err := rows.Scan(&u.Model, &u.Turns, &u.LastUsed); err != nil {
			return nil, fmt.Errorf("failed to scan usage row: %w", err)
		}
		totals = append(totals, u)
	}
	return totals, rows.Err()
}

// Close closes the underlying database.
func (us *UsageStore) Close() error {
	return us.db.Close()
}
