package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Append-only form snapshots. seq orders snapshots by insertion, which
	// stays stable when two saves share a timestamp.
	`CREATE TABLE IF NOT EXISTS form_snapshots (
		seq         INTEGER PRIMARY KEY AUTOINCREMENT,
		id          TEXT NOT NULL UNIQUE,
		user_id     TEXT NOT NULL CHECK(user_id != ''),
		doc_type    TEXT NOT NULL
		            CHECK(doc_type IN ('annual','monthly','weekly')),
		values_json TEXT NOT NULL DEFAULT '{}',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_form_snapshots_user_doc ON form_snapshots(user_id, doc_type, seq)`,
}
