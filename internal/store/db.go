// Package store is the persistence collaborator for completed
// assessment results. It owns result ids, the versioning chain
// (computed via internal/results inside a transaction), and the
// read-side retry and caching decorators the engine's contract
// requires.
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite (no CGO)
)

// Driver selects the backing database.
type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens the database and ensures the schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite"
		if dsn == "" {
			dsn = "file:innerlens.db?cache=shared&mode=rwc"
		}
	case DriverPostgres:
		drvName = "pgx"
		if dsn == "" {
			dsn = "postgres://localhost:5432/innerlens?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if driver == DriverSQLite {
		if err := applyPragmas(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// applyPragmas configures SQLite for safe concurrent readers.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	schema := schemaSQLite
	if driver == DriverPostgres {
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS results (
  id TEXT PRIMARY KEY,
  respondent_id TEXT NOT NULL,
  version INTEGER NOT NULL,
  original_result_id TEXT NOT NULL DEFAULT '',
  trait_scores_json TEXT NOT NULL,
  state_scores_json TEXT NOT NULL,
  completed_at INTEGER NOT NULL,
  retaken_at INTEGER
);
CREATE INDEX IF NOT EXISTS idx_results_respondent ON results(respondent_id, completed_at);

CREATE TABLE IF NOT EXISTS respondents (
  id TEXT PRIMARY KEY,
  first_result_id TEXT NOT NULL,
  total_assessments INTEGER NOT NULL,
  retake_count INTEGER NOT NULL
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS results (
  id TEXT PRIMARY KEY,
  respondent_id TEXT NOT NULL,
  version INTEGER NOT NULL,
  original_result_id TEXT NOT NULL DEFAULT '',
  trait_scores_json TEXT NOT NULL,
  state_scores_json TEXT NOT NULL,
  completed_at BIGINT NOT NULL,
  retaken_at BIGINT
);
CREATE INDEX IF NOT EXISTS idx_results_respondent ON results(respondent_id, completed_at);

CREATE TABLE IF NOT EXISTS respondents (
  id TEXT PRIMARY KEY,
  first_result_id TEXT NOT NULL,
  total_assessments INTEGER NOT NULL,
  retake_count INTEGER NOT NULL
);
`
