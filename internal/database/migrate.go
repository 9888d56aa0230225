package database

import (
	"database/sql"
	"fmt"
)

// schema is applied at startup; every statement is idempotent so restarts are safe
var schema = []string{
	`CREATE TABLE IF NOT EXISTS notifications (
		id         UUID PRIMARY KEY,
		username   TEXT NOT NULL DEFAULT '',
		message    TEXT NOT NULL,
		type       TEXT NOT NULL DEFAULT 'info',
		read       BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	// covers the read/type filters and the created_at DESC sort in one index
	`CREATE INDEX IF NOT EXISTS idx_notifications_read_type_created_at
		ON notifications (read, type, created_at DESC)`,
}

// Migrate creates the notifications schema if it does not exist yet
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
