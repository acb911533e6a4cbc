package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		title           TEXT NOT NULL CHECK(length(trim(title)) > 0),
		description     TEXT NOT NULL DEFAULT '',
		deadline        TEXT,
		priority        TEXT NOT NULL DEFAULT 'medium'
		                CHECK(priority IN ('high','medium','low')),
		estimated_hours REAL,
		status          TEXT NOT NULL DEFAULT 'pending'
		                CHECK(status IN ('pending','in_progress','completed')),
		course          TEXT NOT NULL DEFAULT '',
		planned_date    TEXT,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_deadline ON tasks(deadline)`,

	`CREATE TABLE IF NOT EXISTS wellness_logs (
		id          TEXT PRIMARY KEY,
		stress      REAL NOT NULL,
		sleep_hours REAL NOT NULL,
		energy      REAL NOT NULL,
		score       REAL NOT NULL,
		level       TEXT NOT NULL CHECK(level IN ('good','medium','low')),
		mode        TEXT NOT NULL CHECK(mode IN ('normal','light')),
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_wellness_created ON wellness_logs(created_at)`,

	// Added after the first release.
	`ALTER TABLE tasks ADD COLUMN source_text TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE wellness_logs ADD COLUMN note TEXT NOT NULL DEFAULT ''`,
}
