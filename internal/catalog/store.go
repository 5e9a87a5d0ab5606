// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists archived conversations in a SQLite database with
// an FTS5 index over titles and rendered bodies.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/chat-archiver/pkg/types"
)

const dbFile = "archive.db"

// Store manages the conversation catalog database.
type Store struct {
	db         *sql.DB
	catalogDir string
	maxResults int
}

// Record is one cataloged conversation. Body holds the rendered Markdown
// and feeds the full-text index; it is not returned by searches.
type Record struct {
	UUID      string `json:"uuid" yaml:"uuid"`
	Name      string `json:"name" yaml:"name"`
	Summary   string `json:"summary,omitempty" yaml:"summary,omitempty"`
	CreatedAt string `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
	Path      string `json:"path" yaml:"path"`
	Body      string `json:"-" yaml:"-"`
}

// NewStore opens or creates the catalog database at catalogDir/archive.db,
// creating the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.CatalogDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(cfg.CatalogDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		catalogDir: cfg.CatalogDir,
		maxResults: maxResults,
	}

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
		`CREATE TABLE IF NOT EXISTS conversations (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			uuid TEXT NOT NULL UNIQUE,
			name TEXT,
			summary TEXT,
			created_at TEXT,
			updated_at TEXT,
			path TEXT,
			body TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversations_created ON conversations(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='conversations_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE conversations_fts USING fts5(name, body, content=conversations, content_rowid=rowid)`,
			`CREATE TRIGGER conversations_ai AFTER INSERT ON conversations BEGIN
				INSERT INTO conversations_fts(rowid, name, body) VALUES (new.rowid, new.name, new.body);
			END`,
			`CREATE TRIGGER conversations_ad AFTER DELETE ON conversations BEGIN
				INSERT INTO conversations_fts(conversations_fts, rowid, name, body) VALUES('delete', old.rowid, old.name, old.body);
			END`,
			`CREATE TRIGGER conversations_au AFTER UPDATE ON conversations BEGIN
				INSERT INTO conversations_fts(conversations_fts, rowid, name, body) VALUES('delete', old.rowid, old.name, old.body);
				INSERT INTO conversations_fts(rowid, name, body) VALUES (new.rowid, new.name, new.body);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from a catalog indexing run.
type IngestSummary struct {
	Indexed int
	Updated int
}

// Total returns the number of records processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated
}

// Ingest upserts records into the catalog. Existing conversations (matched
// by uuid) are updated in place; the FTS index follows via triggers.
func (s *Store) Ingest(ctx context.Context, records []Record) (IngestSummary, error) {
	var summary IngestSummary

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, r := range records {
		var exists int
		if err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM conversations WHERE uuid = ?`, r.UUID,
		).Scan(&exists); err != nil {
			return summary, fmt.Errorf("checking conversation %s: %w", r.UUID, err)
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO conversations (uuid, name, summary, created_at, updated_at, path, body)
			 VALUES (?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(uuid) DO UPDATE SET
				name=excluded.name, summary=excluded.summary,
				created_at=excluded.created_at, updated_at=excluded.updated_at,
				path=excluded.path, body=excluded.body`,
			r.UUID, r.Name, r.Summary, r.CreatedAt, r.UpdatedAt, r.Path, r.Body,
		)
		if err != nil {
			return summary, fmt.Errorf("upserting conversation %s: %w", r.UUID, err)
		}

		if exists > 0 {
			summary.Updated++
		} else {
			summary.Indexed++
		}
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing ingest: %w", err)
	}
	return summary, nil
}
