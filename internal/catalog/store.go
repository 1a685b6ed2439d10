// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog keeps a SQLite history of extraction runs so the origin
// of every generated test file can be traced back to its source document
// and line range.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/testgen/pkg/types"
)

// Store manages the catalog database.
type Store struct {
	db *sql.DB
}

// Entry is one recorded region together with the run that produced it.
type Entry struct {
	RunID      int64     `json:"run_id"`
	Source     string    `json:"source"`
	RecordedAt time.Time `json:"recorded_at"`
	Label      string    `json:"label"`
	File       string    `json:"file"`
	StartLine  int       `json:"start_line"`
	EndLine    int       `json:"end_line"`
	Bytes      int       `json:"bytes"`
	SHA256     string    `json:"sha256"`
}

// Open opens or creates the catalog database at path, creating its parent
// directory and schema when missing.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			recorded_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS regions (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			label TEXT NOT NULL,
			file TEXT NOT NULL,
			start_line INTEGER NOT NULL,
			end_line INTEGER NOT NULL,
			bytes INTEGER NOT NULL,
			sha256 TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source)`,
		`CREATE INDEX IF NOT EXISTS idx_regions_run_id ON regions(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores one run of source and its regions in a single transaction
// and returns the new run ID.
func (s *Store) Record(ctx context.Context, source string, regions []types.Region) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (source, recorded_at) VALUES (?, ?)`,
		source, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO regions (run_id, label, file, start_line, end_line, bytes, sha256)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range regions {
		if _, err := stmt.ExecContext(ctx,
			runID, r.Label, r.Path, r.StartLine, r.EndLine, r.Size(), r.Digest(),
		); err != nil {
			return 0, fmt.Errorf("inserting region %q: %w", r.Label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Latest returns the regions of the most recent run of source, ordered by
// start line. An empty source returns the latest run of every source.
func (s *Store) Latest(ctx context.Context, source string) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.source, r.recorded_at, g.label, g.file, g.start_line, g.end_line, g.bytes, g.sha256
		 FROM regions g
		 JOIN runs r ON r.id = g.run_id
		 WHERE r.id IN (SELECT MAX(id) FROM runs GROUP BY source)
		   AND (? = '' OR r.source = ?)
		 ORDER BY r.source, g.start_line`,
		source, source,
	)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var recordedAt string
		if err := rows.Scan(&e.RunID, &e.Source, &recordedAt, &e.Label, &e.File,
			&e.StartLine, &e.EndLine, &e.Bytes, &e.SHA256); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		e.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing recorded_at %q: %w", recordedAt, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
