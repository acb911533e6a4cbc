package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradeAddsLateColumns opens a database created before
// source_text and note existed and checks that rows survive and the new
// columns get their defaults.
func TestMigrate_UpgradeAddsLateColumns(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	legacy := []string{
		`CREATE TABLE tasks (
			id              TEXT PRIMARY KEY,
			title           TEXT NOT NULL,
			description     TEXT NOT NULL DEFAULT '',
			deadline        TEXT,
			priority        TEXT NOT NULL DEFAULT 'medium',
			estimated_hours REAL,
			status          TEXT NOT NULL DEFAULT 'pending',
			course          TEXT NOT NULL DEFAULT '',
			planned_date    TEXT,
			created_at      TEXT NOT NULL,
			updated_at      TEXT NOT NULL
		)`,
		`CREATE TABLE wellness_logs (
			id          TEXT PRIMARY KEY,
			stress      REAL NOT NULL,
			sleep_hours REAL NOT NULL,
			energy      REAL NOT NULL,
			score       REAL NOT NULL,
			level       TEXT NOT NULL,
			mode        TEXT NOT NULL,
			created_at  TEXT NOT NULL
		)`,
		`INSERT INTO tasks (id, title, deadline, created_at, updated_at)
		 VALUES ('t1', 'Old essay', '2025-02-01', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`,
		`INSERT INTO wellness_logs (id, stress, sleep_hours, energy, score, level, mode, created_at)
		 VALUES ('w1', 3, 7, 6, 6.9, 'medium', 'normal', '2025-01-01T00:00:00Z')`,
	}
	for _, stmt := range legacy {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db), "re-running on an upgraded DB must tolerate duplicate columns")

	var title, source string
	require.NoError(t, db.QueryRow(`SELECT title, source_text FROM tasks WHERE id = 't1'`).Scan(&title, &source))
	assert.Equal(t, "Old essay", title)
	assert.Equal(t, "", source)

	var note string
	var score float64
	require.NoError(t, db.QueryRow(`SELECT score, note FROM wellness_logs WHERE id = 'w1'`).Scan(&score, &note))
	assert.Equal(t, 6.9, score)
	assert.Equal(t, "", note)

	var idx string
	require.NoError(t, db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_tasks_status'`).Scan(&idx))
}
