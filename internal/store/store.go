// Package store keeps the runs of the current process in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/verte-zerg/srctype/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

const memoryDSN = ":memory:"

// Store wraps SQLite access for run history.
type Store struct {
	db *sql.DB
}

// OpenMemory opens an in-memory database that lives as long as the Store.
func OpenMemory() (*Store, error) {
	return Open(memoryDSN)
}

// Open opens the SQLite database at dsn and applies migrations. Every pooled
// connection gets its own in-memory database, so the pool is pinned to one.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			file TEXT NOT NULL,
			time_limit_ms INTEGER NOT NULL,
			typed INTEGER NOT NULL,
			typo INTEGER NOT NULL,
			wpm INTEGER NOT NULL,
			accuracy INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ended_at ON runs(ended_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRun stores a finished run and returns its id.
func (s *Store) InsertRun(ctx context.Context, run model.RunStats) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, ended_at, file, time_limit_ms, typed, typo, wpm, accuracy)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.StartedAt.Format(time.RFC3339Nano),
		run.EndedAt.Format(time.RFC3339Nano),
		run.File,
		run.TimeLimit.Milliseconds(),
		run.Typed,
		run.Typo,
		run.WPM,
		run.Accuracy,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListRuns returns all runs in insertion order.
func (s *Store) ListRuns(ctx context.Context) ([]model.RunStats, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, ended_at, file, time_limit_ms, typed, typo, wpm, accuracy
		 FROM runs
		 ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.RunStats
	for rows.Next() {
		var run model.RunStats
		var startedAt, endedAt string
		var limitMs int64
		if err := rows.Scan(&run.ID, &startedAt, &endedAt, &run.File, &limitMs, &run.Typed, &run.Typo, &run.WPM, &run.Accuracy); err != nil {
			return nil, err
		}
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if run.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, err
		}
		run.TimeLimit = time.Duration(limitMs) * time.Millisecond
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// BestWPM returns the highest wpm recorded, or 0 without runs.
func (s *Store) BestWPM(ctx context.Context) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(wpm) FROM runs`).Scan(&best); err != nil {
		return 0, err
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}
