// Package db persists query runs and their results to SQLite so past
// queries can be listed and replayed. The catalog itself is never
// persisted; it is rebuilt from the datasets on every run.
package db

import (
	"database/sql"
	"fmt"

	"neo-scout/internal/logger"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	sql *sql.DB
}

// Open opens (or creates) the SQLite database at path and runs migrations.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	d := &DB{sql: sqlDB}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}
	logger.Success("DB", fmt.Sprintf("Opened %s", path))
	return d, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate() error {
	version := 0
	d.sql.QueryRow("SELECT version FROM schema_version ORDER BY version DESC LIMIT 1").Scan(&version)

	if version < 1 {
		_, err := d.sql.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY);

			CREATE TABLE IF NOT EXISTS query_history (
				id        INTEGER PRIMARY KEY AUTOINCREMENT,
				timestamp TEXT NOT NULL,
				criteria  TEXT NOT NULL,
				count     INTEGER NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_query_history_ts ON query_history(timestamp);

			CREATE TABLE IF NOT EXISTS approach_results (
				id            INTEGER PRIMARY KEY AUTOINCREMENT,
				query_id      INTEGER NOT NULL REFERENCES query_history(id),
				designation   TEXT NOT NULL,
				name          TEXT,
				time          TEXT NOT NULL,
				distance_au   REAL NOT NULL,
				velocity_km_s REAL NOT NULL,
				diameter_km   REAL,
				hazardous     INTEGER NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_approach_query ON approach_results(query_id);

			INSERT OR IGNORE INTO schema_version (version) VALUES (1);
		`)
		if err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
		logger.Info("DB", "Applied migration v1")
	}

	return nil
}
