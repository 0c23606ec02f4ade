// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/pdiddy/termsite/internal/autolink"
	"github.com/pdiddy/termsite/internal/logging"
	"github.com/pdiddy/termsite/internal/rdfgraph"
	"github.com/pdiddy/termsite/internal/render"
	"github.com/pdiddy/termsite/internal/validate"
	"github.com/pdiddy/termsite/internal/vocab"
)

// Vocabulary is a loaded, validated and indexed vocabulary.
type Vocabulary struct {
	Graph   *rdfgraph.Graph
	Index   *vocab.Index
	Sources []string
	Report  validate.Report
	// Skipped counts skos:Concept subjects left out of the index.
	Skipped int
}

// Load reads the configured sources, validates the graph when validation
// is enabled and builds the vocabulary index. A non-conforming graph
// aborts the load; the report is written to the progress writer.
func (g *Generator) Load(ctx context.Context) (*Vocabulary, error) {
	start := time.Now()
	loader := rdfgraph.NewLoader(g.cfg.Source, g.HTTPClient, g.logger)
	graph, sources, err := loader.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading vocabulary")
	}
	g.logger.Info("vocabulary loaded",
		zap.Int(logging.FieldCount, graph.Len()),
		zap.Strings(logging.FieldSource, sources),
		zap.Duration(logging.FieldDuration, time.Since(start)))

	v := &Vocabulary{Graph: graph, Sources: sources}

	if g.cfg.Validation.Enabled {
		v.Report = validate.Validate(graph)
		for _, r := range v.Report.Results {
			g.logger.Debug("validation result",
				zap.String(logging.FieldConcept, r.Focus),
				zap.String("constraint", r.Constraint),
				zap.String("severity", string(r.Severity)),
				zap.String("message", r.Message))
		}
		if err := v.Report.Err(g.cfg.Validation.WarningsAsErrors); err != nil {
			fmt.Fprint(g.progress, v.Report.Text())
			return nil, err
		}
		g.logger.Info("validation passed", zap.Int("warnings", v.Report.Count(validate.Warning)))
	}

	v.Index = vocab.Build(vocab.RecordsFromGraph(graph, g.cfg.Source.Language))
	v.Skipped = len(graph.SubjectsOfType(rdfgraph.SKOSConcept)) - v.Index.Len()
	return v, nil
}

// Linker compiles the auto-linker for v. It returns nil when linking is
// disabled.
func (g *Generator) Linker(v *Vocabulary) *autolink.Linker {
	if !g.cfg.Linking.Enabled {
		return nil
	}
	m := autolink.Compile(v.Index, g.Tagger, autolink.Options{
		Aliases:             aliasLabels(v),
		IncludeAltLabels:    g.cfg.Linking.IncludeAltLabels,
		IncludeHiddenLabels: g.cfg.Linking.IncludeHiddenLabels,
	})

	report := m.Report()
	for _, c := range report.Collisions {
		g.logger.Warn("label registered by more than one concept",
			zap.String(logging.FieldLabel, c.Label),
			zap.String("kept", c.Kept),
			zap.String("replaced", c.Replaced))
	}
	for _, l := range report.Skipped {
		g.logger.Debug("label has no linkable tokens", zap.String(logging.FieldLabel, l))
	}
	g.logger.Debug("matcher compiled", zap.Int(logging.FieldCount, report.Patterns))

	return autolink.NewLinker(m, render.LinkFormatter(g.cfg.Site.BaseURL))
}

func aliasLabels(v *Vocabulary) []autolink.Alias {
	var aliases []autolink.Alias
	for _, e := range v.Index.Entries() {
		s := rdfgraph.IRI(e.Identity)
		for _, l := range v.Graph.Strings(s, rdfgraph.SKOSAltLabel) {
			aliases = append(aliases, autolink.Alias{Identity: e.Identity, Label: l})
		}
		for _, l := range v.Graph.Strings(s, rdfgraph.SKOSHiddenLabel) {
			aliases = append(aliases, autolink.Alias{Identity: e.Identity, Label: l, Hidden: true})
		}
	}
	return aliases
}
