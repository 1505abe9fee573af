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
	`CREATE TABLE IF NOT EXISTS records (
		id         TEXT PRIMARY KEY,
		domain     TEXT NOT NULL
		           CHECK(domain IN ('baseline','workspace','longitudinal','msk','eye',
		                            'mental','hydration','productivity','recovery_sleep')),
		created_at TEXT NOT NULL,
		fields     TEXT NOT NULL DEFAULT '{}'
	)`,

	`CREATE INDEX IF NOT EXISTS idx_records_domain_created ON records(domain, created_at)`,

	`CREATE TABLE IF NOT EXISTS snapshots (
		id        TEXT PRIMARY KEY,
		taken_at  TEXT NOT NULL,
		scores    TEXT NOT NULL DEFAULT '{}',
		levels    TEXT NOT NULL DEFAULT '{}',
		whi       INTEGER NOT NULL,
		whi_level TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_snapshots_taken ON snapshots(taken_at)`,

	`CREATE TABLE IF NOT EXISTS advice_cache (
		domain     TEXT NOT NULL,
		record_id  TEXT NOT NULL,
		source     TEXT NOT NULL DEFAULT 'fallback'
		           CHECK(source IN ('generated','fallback')),
		narrative  TEXT NOT NULL DEFAULT '',
		actions    TEXT NOT NULL DEFAULT '[]',
		urgent     TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL,
		PRIMARY KEY (domain, record_id)
	)`,
}
