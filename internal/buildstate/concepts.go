// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package buildstate

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"go.yaml.in/yaml/v3"
)

// ConceptDoc is the searchable record of one concept.
type ConceptDoc struct {
	Identity   string   `json:"identity" yaml:"identity"`
	Reference  string   `json:"reference" yaml:"reference"`
	Label      string   `json:"label" yaml:"label"`
	Slug       string   `json:"slug" yaml:"slug"`
	URL        string   `json:"url" yaml:"url"`
	Aliases    []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Definition string   `json:"definition,omitempty" yaml:"definition,omitempty"`
}

// IndexConcepts replaces the indexed concepts with docs in one transaction.
func (s *Store) IndexConcepts(ctx context.Context, docs []ConceptDoc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM concepts`); err != nil {
		return errors.Wrap(err, "clearing concepts")
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO concepts (identity, reference, label, slug, url, aliases, definition)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "preparing insert")
	}
	defer stmt.Close()

	for _, d := range docs {
		_, err := stmt.ExecContext(ctx,
			d.Identity, d.Reference, d.Label, d.Slug, d.URL,
			strings.Join(d.Aliases, "\n"), d.Definition,
		)
		if err != nil {
			return errors.Wrapf(err, "inserting concept %s", d.Identity)
		}
	}
	return tx.Commit()
}

// SearchResult is a concept matched by Search.
type SearchResult struct {
	ConceptDoc
	Rank float64 `json:"rank" yaml:"rank"`
}

// Search runs a full-text query over labels, aliases and definitions and
// returns at most limit results, best first. Every word of query must
// occur, as a whole word or a prefix.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	match := ftsQuery(query)
	if match == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT c.identity, c.reference, c.label, c.slug, c.url, c.aliases, c.definition,
			bm25(concepts_fts, 10.0, 5.0, 1.0) AS score
		FROM concepts_fts
		JOIN concepts c ON c.rowid = concepts_fts.rowid
		WHERE concepts_fts MATCH ?
		ORDER BY score, c.label
		LIMIT ?`, match, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "searching %q", query)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var (
			r       SearchResult
			aliases string
		)
		if err := rows.Scan(&r.Identity, &r.Reference, &r.Label, &r.Slug, &r.URL,
			&aliases, &r.Definition, &r.Rank); err != nil {
			return nil, errors.Wrap(err, "scanning result")
		}
		r.Aliases = splitAliases(aliases)
		results = append(results, r)
	}
	return results, errors.Wrap(rows.Err(), "reading results")
}

// ftsQuery quotes every word of q as an FTS5 prefix query, so user input
// never reaches the FTS5 query syntax.
func ftsQuery(q string) string {
	var terms []string
	for _, w := range strings.Fields(q) {
		w = strings.ReplaceAll(w, `"`, `""`)
		terms = append(terms, `"`+w+`"*`)
	}
	return strings.Join(terms, " ")
}

func splitAliases(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Concepts returns every indexed concept ordered by slug.
func (s *Store) Concepts(ctx context.Context) ([]ConceptDoc, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT identity, reference, label, slug, url, aliases, definition
		 FROM concepts ORDER BY slug, identity`)
	if err != nil {
		return nil, errors.Wrap(err, "listing concepts")
	}
	defer rows.Close()

	var docs []ConceptDoc
	for rows.Next() {
		var (
			d       ConceptDoc
			aliases string
		)
		if err := rows.Scan(&d.Identity, &d.Reference, &d.Label, &d.Slug, &d.URL, &aliases, &d.Definition); err != nil {
			return nil, errors.Wrap(err, "scanning concept")
		}
		d.Aliases = splitAliases(aliases)
		docs = append(docs, d)
	}
	return docs, errors.Wrap(rows.Err(), "listing concepts")
}

// ExportYAML writes the indexed concepts to path as YAML.
func (s *Store) ExportYAML(ctx context.Context, path string) error {
	docs, err := s.exportDocs(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(docs)
	if err != nil {
		return errors.Wrap(err, "marshaling YAML")
	}
	return writeExport(path, data)
}

// ExportJSON writes the indexed concepts to path as JSON.
func (s *Store) ExportJSON(ctx context.Context, path string) error {
	docs, err := s.exportDocs(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling JSON")
	}
	return writeExport(path, append(data, '\n'))
}

// WriteExport encodes the indexed concepts to w as "json" or "yaml".
func (s *Store) WriteExport(ctx context.Context, w io.Writer, format string) error {
	docs, err := s.exportDocs(ctx)
	if err != nil {
		return err
	}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(docs), "encoding JSON")
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(docs); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	}
	return errors.Newf("unsupported export format %q", format)
}

func (s *Store) exportDocs(ctx context.Context) ([]ConceptDoc, error) {
	docs, err := s.Concepts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying for export")
	}
	if docs == nil {
		docs = []ConceptDoc{}
	}
	return docs, nil
}

func writeExport(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", path)
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "writing %s", path)
}
