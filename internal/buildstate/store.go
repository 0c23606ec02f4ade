// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package buildstate persists what a generation run produced: the content
// hash of every output file, so unchanged pages are not rewritten, and a
// full-text index of the vocabulary for search.
package buildstate

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/termsite/pkg/types"
)

const dbFile = "termsite.db"

// Store manages the build state SQLite database.
type Store struct {
	db          *sql.DB
	dir         string
	incremental bool
}

// Open opens or creates the database at cfg.StateDir/termsite.db and
// creates the schema if it does not exist.
func Open(cfg types.BuildConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.StateDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating state directory")
	}

	dbPath := filepath.Join(cfg.StateDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	s := &Store{db: db, dir: cfg.StateDir, incremental: cfg.Incremental}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating schema")
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the state directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS outputs (
			path TEXT PRIMARY KEY,
			hash TEXT NOT NULL,
			updated TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS concepts (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			identity TEXT NOT NULL UNIQUE,
			reference TEXT NOT NULL,
			label TEXT NOT NULL,
			slug TEXT NOT NULL,
			url TEXT NOT NULL,
			aliases TEXT NOT NULL DEFAULT '',
			definition TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_concepts_reference ON concepts(reference)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return errors.Wrap(err, "executing schema statement")
		}
	}

	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='concepts_fts'`,
	).Scan(&ftsExists); err != nil {
		return errors.Wrap(err, "checking FTS table")
	}
	if ftsExists > 0 {
		return nil
	}

	ftsStatements := []string{
		`CREATE VIRTUAL TABLE concepts_fts USING fts5(label, aliases, definition, content=concepts, content_rowid=rowid)`,
		`CREATE TRIGGER concepts_ai AFTER INSERT ON concepts BEGIN
			INSERT INTO concepts_fts(rowid, label, aliases, definition)
			VALUES (new.rowid, new.label, new.aliases, new.definition);
		END`,
		`CREATE TRIGGER concepts_ad AFTER DELETE ON concepts BEGIN
			INSERT INTO concepts_fts(concepts_fts, rowid, label, aliases, definition)
			VALUES ('delete', old.rowid, old.label, old.aliases, old.definition);
		END`,
		`CREATE TRIGGER concepts_au AFTER UPDATE ON concepts BEGIN
			INSERT INTO concepts_fts(concepts_fts, rowid, label, aliases, definition)
			VALUES ('delete', old.rowid, old.label, old.aliases, old.definition);
			INSERT INTO concepts_fts(rowid, label, aliases, definition)
			VALUES (new.rowid, new.label, new.aliases, new.definition);
		END`,
	}
	for _, stmt := range ftsStatements {
		if _, err := s.db.Exec(stmt); err != nil {
			return errors.Wrap(err, "creating FTS infrastructure")
		}
	}
	return nil
}

// Outcome says what WriteFile did.
type Outcome int

const (
	Created Outcome = iota
	Updated
	Unchanged
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Updated:
		return "updated"
	}
	return "unchanged"
}

// WriteFile writes data to path unless the store recorded the same content
// for path and the file still exists. Parent directories are created.
// Without incremental builds every file is written.
func (s *Store) WriteFile(ctx context.Context, path string, data []byte) (Outcome, error) {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	var stored string
	err := s.db.QueryRowContext(ctx, `SELECT hash FROM outputs WHERE path = ?`, path).Scan(&stored)
	known := err == nil
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, errors.Wrapf(err, "reading state of %s", path)
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil
	if s.incremental && known && exists && stored == hash {
		return Unchanged, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, errors.Wrapf(err, "creating directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, errors.Wrapf(err, "writing %s", path)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO outputs (path, hash, updated) VALUES (?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET hash=excluded.hash, updated=excluded.updated`,
		path, hash, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, errors.Wrapf(err, "recording %s", path)
	}

	if exists {
		return Updated, nil
	}
	return Created, nil
}

// RemoveStale deletes every recorded output below root that is not in keep,
// both from disk and from the store, and returns the removed paths in sorted
// order. It removes pages of concepts and aliases that left the vocabulary.
// An empty root matches every recorded output.
func (s *Store) RemoveStale(ctx context.Context, root string, keep map[string]bool) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT path FROM outputs`)
	if err != nil {
		return nil, errors.Wrap(err, "listing outputs")
	}
	var stale []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			rows.Close()
			return nil, errors.Wrap(err, "scanning output")
		}
		if !keep[p] && within(root, p) {
			stale = append(stale, p)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "listing outputs")
	}
	sort.Strings(stale)

	for _, p := range stale {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "removing %s", p)
		}
		if _, err := s.db.ExecContext(ctx, `DELETE FROM outputs WHERE path = ?`, p); err != nil {
			return nil, errors.Wrapf(err, "forgetting %s", p)
		}
	}
	return stale, nil
}

func within(root, path string) bool {
	if root == "" {
		return true
	}
	rel, err := filepath.Rel(root, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Reset forgets all recorded outputs so the next run rewrites every file.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM outputs`)
	return errors.Wrap(err, "clearing outputs")
}

// Stats holds counts of recorded state.
type Stats struct {
	Outputs  int
	Concepts int
}

// Stats returns the number of recorded outputs and indexed concepts.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM outputs`).Scan(&st.Outputs); err != nil {
		return st, errors.Wrap(err, "counting outputs")
	}
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM concepts`).Scan(&st.Concepts); err != nil {
		return st, errors.Wrap(err, "counting concepts")
	}
	return st, nil
}
