// Package history persists run results in SQLite so past scans stay
// queryable after their JSON reports have been rotated away.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; mismatched databases must be deleted and recreated.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database was created by an
// incompatible version.
var ErrSchemaMismatch = errors.New("history schema version mismatch")

// Store manages run history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the on-disk database location.
func (s *Store) Path() string { return s.path }

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to recreate)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// Run summarizes one recorded scan.
type Run struct {
	ID         string
	Root       string
	StartedAt  time.Time
	FinishedAt time.Time
	FilesSeen  int
	Successes  int
	Warnings   int
	DryRun     bool
}

// Outcome is one per-file record within a run.
type Outcome struct {
	Path       string
	Outcome    string
	Reason     string
	RecordedAt time.Time
}

// BeginRun inserts the run row before any file is processed.
func (s *Store) BeginRun(ctx context.Context, runID, root string, dryRun bool, startedAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (id, root, started_at, dry_run) VALUES (?, ?, ?, ?)",
		runID, root, startedAt.UTC().Format(time.RFC3339Nano), boolToInt(dryRun))
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// RecordOutcome appends one per-file outcome to the run.
func (s *Store) RecordOutcome(ctx context.Context, runID, path, outcome, reason string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO outcomes (run_id, path, outcome, reason, recorded_at) VALUES (?, ?, ?, ?, ?)",
		runID, path, outcome, nullableString(reason), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert outcome: %w", err)
	}
	return nil
}

// FinishRun stamps the run's end time and final counters.
func (s *Store) FinishRun(ctx context.Context, runID string, filesSeen, successes, warnings int) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE runs SET finished_at = ?, files_seen = ?, successes = ?, warnings = ? WHERE id = ?",
		time.Now().UTC().Format(time.RFC3339Nano), filesSeen, successes, warnings, runID)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("finish run: unknown run %s", runID)
	}
	return nil
}

// RecentRuns returns the most recent runs, newest first.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, root, started_at, finished_at, files_seen, successes, warnings, dry_run
         FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var startedAt string
		var finishedAt sql.NullString
		var dryRun int
		if err := rows.Scan(&run.ID, &run.Root, &startedAt, &finishedAt,
			&run.FilesSeen, &run.Successes, &run.Warnings, &dryRun); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt = parseTimestamp(startedAt)
		if finishedAt.Valid {
			run.FinishedAt = parseTimestamp(finishedAt.String)
		}
		run.DryRun = dryRun != 0
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// RunOutcomes returns every per-file record of a run in insertion order.
func (s *Store) RunOutcomes(ctx context.Context, runID string) ([]Outcome, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT path, outcome, reason, recorded_at FROM outcomes WHERE run_id = ? ORDER BY id", runID)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []Outcome
	for rows.Next() {
		var outcome Outcome
		var reason sql.NullString
		var recordedAt string
		if err := rows.Scan(&outcome.Path, &outcome.Outcome, &reason, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		outcome.Reason = reason.String
		outcome.RecordedAt = parseTimestamp(recordedAt)
		outcomes = append(outcomes, outcome)
	}
	return outcomes, rows.Err()
}

func parseTimestamp(value string) time.Time {
	if parsed, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return parsed
	}
	return time.Time{}
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
