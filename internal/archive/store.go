// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps every row a run writes in a SQLite database so
// past runs can be summarized and their streams rebuilt after the TSV files
// are gone.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/recordscrape/internal/tsv"
	"github.com/pdiddy/recordscrape/pkg/types"
)

// Store is the run archive.
type Store struct {
	db *sql.DB
}

// Open opens or creates the archive at path and its schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
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
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			started_at TEXT NOT NULL,
			finished_at TEXT,
			data_version TEXT,
			processed INTEGER DEFAULT 0,
			succeeded INTEGER DEFAULT 0,
			suppressed INTEGER DEFAULT 0,
			failed INTEGER DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS streams (
			run_id TEXT NOT NULL REFERENCES runs(id),
			name TEXT NOT NULL,
			header TEXT NOT NULL,
			PRIMARY KEY (run_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS rows (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			stream TEXT NOT NULL,
			pid TEXT,
			line TEXT NOT NULL,
			FOREIGN KEY (run_id, stream) REFERENCES streams(run_id, name)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rows_run_stream ON rows(run_id, stream)`,
		`CREATE INDEX IF NOT EXISTS idx_rows_pid ON rows(pid)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// BeginRun records a run before any of its rows.
func (s *Store) BeginRun(ctx context.Context, m types.RunManifest) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO runs (id, kind, started_at, data_version) VALUES (?, ?, ?, ?)`,
		m.ID, string(m.Kind), m.StartedAt.UTC().Format(time.RFC3339), m.DataVersion)
	if err != nil {
		return fmt.Errorf("recording run %s: %w", m.ID, err)
	}
	return nil
}

// FinishRun stores the run's end time and counters.
func (s *Store) FinishRun(ctx context.Context, m types.RunManifest) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, processed = ?, succeeded = ?, suppressed = ?, failed = ? WHERE id = ?`,
		m.FinishedAt.UTC().Format(time.RFC3339), m.Processed, m.Succeeded, m.Suppressed, m.Failed, m.ID)
	if err != nil {
		return fmt.Errorf("finishing run %s: %w", m.ID, err)
	}
	return nil
}

// AddStream records a stream and its header.
func (s *Store) AddStream(ctx context.Context, runID, name string, header []string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO streams (run_id, name, header) VALUES (?, ?, ?)`,
		runID, name, tsv.Join(header))
	if err != nil {
		return fmt.Errorf("recording stream %s: %w", name, err)
	}
	return nil
}

// Append stores one row.
func (s *Store) Append(ctx context.Context, runID, stream, pid string, cells []string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rows (run_id, stream, pid, line) VALUES (?, ?, ?, ?)`,
		runID, stream, pid, tsv.Join(cells))
	if err != nil {
		return fmt.Errorf("appending %s row: %w", stream, err)
	}
	return nil
}

// RunSummary is one stream of one run with its archived row count.
type RunSummary struct {
	RunID     string
	Kind      types.RunKind
	StartedAt string
	Stream    string
	Rows      int
}

// Summary lists every archived stream, newest run first.
func (s *Store) Summary(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.kind, r.started_at, st.name, COUNT(rw.rowid)
		FROM runs r
		JOIN streams st ON st.run_id = r.id
		LEFT JOIN rows rw ON rw.run_id = st.run_id AND rw.stream = st.name
		GROUP BY r.id, st.name
		ORDER BY r.started_at DESC, st.name`)
	if err != nil {
		return nil, fmt.Errorf("querying summary: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var r RunSummary
		var kind string
		if err := rows.Scan(&r.RunID, &kind, &r.StartedAt, &r.Stream, &r.Rows); err != nil {
			return nil, fmt.Errorf("scanning summary: %w", err)
		}
		r.Kind = types.RunKind(kind)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Stream returns the header and rows of one archived stream in write order.
func (s *Store) Stream(ctx context.Context, runID, name string) ([]string, [][]string, error) {
	var header string
	err := s.db.QueryRowContext(ctx,
		`SELECT header FROM streams WHERE run_id = ? AND name = ?`, runID, name).Scan(&header)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, fmt.Errorf("stream %s of run %s not archived", name, runID)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading stream %s: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT line FROM rows WHERE run_id = ? AND stream = ? ORDER BY rowid`, runID, name)
	if err != nil {
		return nil, nil, fmt.Errorf("querying rows: %w", err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, nil, fmt.Errorf("scanning row: %w", err)
		}
		out = append(out, strings.Split(line, tsv.Separator))
	}
	return strings.Split(header, tsv.Separator), out, rows.Err()
}
