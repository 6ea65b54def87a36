package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

// New opens the round ledger. In-memory DSNs are pinned to a single
// connection so every query sees the same database.
func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if isMemory(path) {
		db.SetMaxOpenConns(1)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err = migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return &DB{db}, nil
}

func isMemory(path string) bool {
	return path == ":memory:" || strings.Contains(path, "mode=memory")
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS rounds (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		round_no INTEGER NOT NULL,
		bet INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		balance_delta INTEGER NOT NULL,
		balance_after INTEGER NOT NULL,
		player_cards TEXT NOT NULL,
		dealer_cards TEXT NOT NULL,
		player_total INTEGER NOT NULL,
		dealer_total INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session_id, round_no);
	CREATE INDEX IF NOT EXISTS idx_rounds_delta ON rounds(session_id, balance_delta);
	`

	_, err := db.Exec(schema)
	return err
}
