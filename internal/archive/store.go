// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps an append-only SQLite record of fetch runs. The
// archive never feeds back into fetching; it only records what was published.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paperfeed/pkg/types"
)

// Store manages the run archive database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the archive database at path and ensures the schema
// exists. The parent directory is created if absent.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, types.Errorf(types.KindIO, "creating archive directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, types.Errorf(types.KindIO, "opening archive %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, err
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
			generated_at_utc TEXT NOT NULL,
			query TEXT NOT NULL,
			max_results INTEGER NOT NULL,
			count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS papers (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			position INTEGER NOT NULL,
			paper_id TEXT NOT NULL,
			title TEXT,
			authors TEXT,
			summary TEXT,
			published TEXT,
			updated TEXT,
			pdf_url TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_run_id ON papers(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return types.Errorf(types.KindIO, "executing schema statement: %w", err)
		}
	}
	return nil
}

// RecordRun appends one run and its papers in a single transaction.
func (s *Store) RecordRun(ctx context.Context, payload types.Payload) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return types.Errorf(types.KindIO, "starting archive transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (generated_at_utc, query, max_results, count) VALUES (?, ?, ?, ?)`,
		payload.GeneratedAtUTC, payload.Query, payload.MaxResults, payload.Count)
	if err != nil {
		return types.Errorf(types.KindIO, "inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return types.Errorf(types.KindIO, "reading run id: %w", err)
	}

	for i, p := range payload.Papers {
		// Author lists are stored as JSON text, same shape as the output file.
		authors, err := json.Marshal(p.Authors)
		if err != nil {
			return types.Errorf(types.KindIO, "marshaling authors for %s: %w", p.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO papers (run_id, position, paper_id, title, authors, summary, published, updated, pdf_url)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, i, p.ID, p.Title, string(authors), p.Summary, p.Published, p.Updated, p.PDFURL); err != nil {
			return types.Errorf(types.KindIO, "inserting paper %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return types.Errorf(types.KindIO, "committing archive transaction: %w", err)
	}
	return nil
}

// Run is one archived fetch run.
type Run struct {
	ID             int64
	GeneratedAtUTC string
	Query          string
	MaxResults     int
	Count          int
}

// Runs lists archived runs, most recent first. A non-positive limit lists
// everything.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	q := `SELECT id, generated_at_utc, query, max_results, count FROM runs ORDER BY id DESC`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, types.Errorf(types.KindIO, "querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.GeneratedAtUTC, &r.Query, &r.MaxResults, &r.Count); err != nil {
			return nil, types.Errorf(types.KindIO, "scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, types.Errorf(types.KindIO, "reading runs: %w", err)
	}
	return runs, nil
}

// FormatRuns writes archived runs as a human-readable table to w.
func FormatRuns(runs []Run, w io.Writer) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No archived runs.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-20s  %-4s  %-5s  %s\n", "Run", "Generated (UTC)", "Max", "Count", "Query")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, r := range runs {
		query := r.Query
		if len(query) > 44 {
			query = query[:41] + "..."
		}
		fmt.Fprintf(w, "%-4d  %-20s  %-4d  %-5d  %s\n", r.ID, r.GeneratedAtUTC, r.MaxResults, r.Count, query)
	}

	fmt.Fprintf(w, "\n%d runs\n", len(runs))
}
