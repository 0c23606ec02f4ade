// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"

	"github.com/pdiddy/termsite/internal/rdfgraph"
)

// WriteTurtle writes the merged vocabulary of v with the configured base
// and prefixes.
func (g *Generator) WriteTurtle(w io.Writer, v *Vocabulary) error {
	return rdfgraph.WriteTurtle(w, v.Graph, rdfgraph.TurtleOptions{
		Base:     g.cfg.Site.PublishBaseURI,
		Prefixes: rdfgraph.DefaultPrefixes(g.cfg.Site.ConceptNamespace),
	})
}

// Reindex loads the vocabulary and refreshes the search index and the
// exports without rendering pages.
func (g *Generator) Reindex(ctx context.Context) (*Vocabulary, error) {
	v, err := g.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := g.index(ctx, v); err != nil {
		return nil, errors.Wrap(err, "reindexing")
	}
	return v, nil
}
