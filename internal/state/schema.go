package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS navigation_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			tab TEXT NOT NULL,
			sermon_category TEXT,
			event_category TEXT
		);

		CREATE TABLE IF NOT EXISTS preferences (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			notifications INTEGER NOT NULL DEFAULT 1,
			dark_mode INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS prayer_journal (
			id TEXT PRIMARY KEY,
			anonymous INTEGER NOT NULL DEFAULT 0,
			name TEXT,
			email TEXT,
			category TEXT NOT NULL,
			request TEXT NOT NULL,
			urgent INTEGER NOT NULL DEFAULT 0,
			submitted_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_prayer_journal_submitted ON prayer_journal(submitted_at DESC);

		CREATE TABLE IF NOT EXISTS calendar_entries (
			id TEXT PRIMARY KEY,
			event_id TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			location TEXT,
			starts_at INTEGER NOT NULL,
			ends_at INTEGER NOT NULL,
			added_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_calendar_entries_start ON calendar_entries(starts_at);
	`)
	if err != nil {
		return err
	}

	// Set initial version if not exists
	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
