// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a local SQLite ledger of successful generation
// runs, so past inputs and artifacts stay discoverable from the CLI.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "runs.db"

// Config locates the ledger on disk.
type Config struct {
	// Dir is the directory holding the database file.
	Dir string `json:"dir" yaml:"dir"`
}

// Run is one recorded generation.
type Run struct {
	ID         int64     `json:"id"`
	InputPath  string    `json:"input_path"`
	OutputPath string    `json:"output_path"`
	Title      string    `json:"title"`
	Pages      int       `json:"pages"`
	Categories int       `json:"categories"`
	Items      int       `json:"items"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store manages the run-history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at cfg.Dir/runs.db, creating the
// schema if it does not exist.
func Open(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		input_path TEXT NOT NULL,
		output_path TEXT NOT NULL,
		title TEXT NOT NULL,
		pages INTEGER NOT NULL,
		categories INTEGER NOT NULL,
		items INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record appends a run to the ledger and returns its assigned ID.
func (s *Store) Record(ctx context.Context, r Run) (int64, error) {
	created := r.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (input_path, output_path, title, pages, categories, items, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.InputPath, r.OutputPath, r.Title, r.Pages, r.Categories, r.Items,
		created.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	return res.LastInsertId()
}

// List returns the most recent runs, newest first. A limit < 1 means 20.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit < 1 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, input_path, output_path, title, pages, categories, items, created_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &r.InputPath, &r.OutputPath, &r.Title,
			&r.Pages, &r.Categories, &r.Items, &created); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			r.CreatedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
