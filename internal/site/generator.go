// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package site runs the generation pipeline: load and validate the
// vocabulary, export it as Turtle, render every page and refresh the
// search index.
package site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/pdiddy/termsite/internal/buildstate"
	"github.com/pdiddy/termsite/internal/lingo"
	"github.com/pdiddy/termsite/internal/logging"
	"github.com/pdiddy/termsite/internal/rdfgraph"
	"github.com/pdiddy/termsite/internal/render"
	"github.com/pdiddy/termsite/internal/vocab"
	"github.com/pdiddy/termsite/pkg/types"
)

// Output layout below the docs root.
const (
	DocDir    = "_doc"
	AliasDir  = "alias"
	ListFile  = "lijst.md"
	IndexFile = "index.md"
	TTLFile   = "begrippenkader.ttl"
	NavFile   = "assets/json/alphabetical-nav.json"
)

// Export files written to the state directory.
const (
	ExportJSONFile = "export.json"
	ExportYAMLFile = "export.yaml"
)

// Summary holds counts from a generation run.
type Summary struct {
	Concepts        int
	Aliases         int
	Disambiguations int
	Skipped         int
	Unchanged       int
	Removed         int
	Failed          int
}

// Pages returns the number of concept, alias and disambiguation pages.
func (s Summary) Pages() int {
	return s.Concepts + s.Aliases + s.Disambiguations
}

// HasFailures reports whether any page failed to render.
func (s Summary) HasFailures() bool { return s.Failed > 0 }

// Generator renders a vocabulary into the docs root.
type Generator struct {
	cfg      types.PipelineConfig
	store    *buildstate.Store
	logger   *zap.Logger
	progress io.Writer

	// Tagger drives inflection-tolerant linking; NewGenerator sets the
	// Dutch tagger.
	Tagger lingo.Tagger
	// HTTPClient fetches remote sources.
	HTTPClient *http.Client
}

// NewGenerator creates a generator. Per-page progress lines go to progress;
// a nil logger discards structured logs.
func NewGenerator(cfg types.PipelineConfig, store *buildstate.Store, logger *zap.Logger, progress io.Writer) *Generator {
	if progress == nil {
		progress = io.Discard
	}
	return &Generator{
		cfg:        cfg,
		store:      store,
		logger:     logging.OrNop(logger),
		progress:   progress,
		Tagger:     lingo.NewDutch(),
		HTTPClient: &http.Client{Timeout: cfg.Source.Timeout},
	}
}

// run carries the state of one Run call.
type run struct {
	*Generator
	ctx     context.Context
	summary Summary
	written map[string]bool
}

func (r *run) path(rel string) string {
	return filepath.Join(r.cfg.Site.DocsRoot, filepath.FromSlash(rel))
}

// write stores data at the docs-relative path rel and reports the outcome.
func (r *run) write(rel string, data []byte) (buildstate.Outcome, error) {
	p := r.path(rel)
	r.written[p] = true
	outcome, err := r.store.WriteFile(r.ctx, p, data)
	if err != nil {
		return outcome, err
	}
	if outcome == buildstate.Unchanged {
		r.summary.Unchanged++
	} else {
		fmt.Fprintf(r.progress, "%-9s %s\n", outcome, rel)
	}
	return outcome, nil
}

func (r *run) fail(name string, err error) {
	fmt.Fprintf(r.progress, "failed    %s: %v\n", name, err)
	r.logger.Error("page failed", zap.String(logging.FieldFile, name), zap.Error(err))
	r.summary.Failed++
}

// Run executes the whole pipeline. Failures of single pages are counted in
// the summary; errors that leave the site unusable abort the run.
func (g *Generator) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	v, err := g.Load(ctx)
	if err != nil {
		return Summary{}, err
	}

	r := &run{Generator: g, ctx: ctx, written: make(map[string]bool)}
	r.summary.Skipped = v.Skipped

	renderer, err := render.New(g.cfg.Site.TemplateDir)
	if err != nil {
		return Summary{}, errors.Wrap(err, "loading templates")
	}

	if err := r.turtle(v); err != nil {
		return r.summary, err
	}

	ext := &render.Extractor{
		Graph:   v.Graph,
		Index:   v.Index,
		BaseURL: g.cfg.Site.BaseURL,
		Lang:    g.cfg.Source.Language,
	}
	if linker := g.Linker(v); linker != nil {
		ext.Linker = linker
	}

	if data, err := renderer.Home(render.Homepage(v.Graph, g.cfg.Source.Language)); err != nil {
		r.fail(IndexFile, err)
	} else if _, err := r.write(IndexFile, data); err != nil {
		return r.summary, err
	}

	if err := r.concepts(v, ext, renderer); err != nil {
		return r.summary, err
	}
	if err := r.aliases(v, renderer); err != nil {
		return r.summary, err
	}
	if err := r.list(v, renderer); err != nil {
		return r.summary, err
	}

	if err := g.index(ctx, v); err != nil {
		return r.summary, err
	}

	if g.cfg.Build.Incremental {
		removed, err := g.store.RemoveStale(ctx, g.cfg.Site.DocsRoot, r.written)
		if err != nil {
			return r.summary, errors.Wrap(err, "removing stale pages")
		}
		for _, p := range removed {
			fmt.Fprintf(r.progress, "removed   %s\n", p)
		}
		r.summary.Removed = len(removed)
	}

	s := r.summary
	fmt.Fprintf(g.progress, "\nconcepts: %d, aliases: %d, disambiguations: %d, skipped: %d, unchanged: %d, removed: %d, failed: %d\n",
		s.Concepts, s.Aliases, s.Disambiguations, s.Skipped, s.Unchanged, s.Removed, s.Failed)
	g.logger.Info("generation finished",
		zap.Int(logging.FieldCount, s.Pages()),
		zap.Int("failed", s.Failed),
		zap.Duration(logging.FieldDuration, time.Since(start)))
	return s, nil
}

func (r *run) turtle(v *Vocabulary) error {
	var buf bytes.Buffer
	if err := r.WriteTurtle(&buf, v); err != nil {
		return errors.Wrap(err, "serializing turtle export")
	}
	_, err := r.write(TTLFile, buf.Bytes())
	return err
}

func (r *run) concepts(v *Vocabulary, ext *render.Extractor, renderer *render.Renderer) error {
	for _, e := range v.Index.Entries() {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		rel := DocDir + "/" + e.Reference + ".md"

		page, err := ext.Concept(rdfgraph.IRI(e.Identity))
		if err != nil {
			r.fail(rel, err)
			continue
		}
		data, err := renderer.Concept(page)
		if err != nil {
			r.fail(rel, err)
			continue
		}
		if _, err := r.write(rel, data); err != nil {
			return err
		}
		r.summary.Concepts++
	}
	return nil
}

func (r *run) aliases(v *Vocabulary, renderer *render.Renderer) error {
	groups := render.Aliases(v.Graph, v.Index, render.AliasOptions{
		IncludeHidden: r.cfg.Site.IncludeHiddenAliases,
		BaseURL:       r.cfg.Site.BaseURL,
	})
	for _, grp := range groups {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		rel := AliasDir + "/" + grp.Slug + ".md"
		data, err := renderer.Alias(grp)
		if err != nil {
			r.fail(rel, err)
			continue
		}
		if _, err := r.write(rel, data); err != nil {
			return err
		}
		if grp.Redirect() {
			r.summary.Aliases++
		} else {
			r.summary.Disambiguations++
		}
	}
	return nil
}

func (r *run) list(v *Vocabulary, renderer *render.Renderer) error {
	items := render.NavItems(v.Graph, v.Index, r.cfg.Site.BaseURL)

	if data, err := renderer.List(render.GroupByLetter(items)); err != nil {
		r.fail(ListFile, err)
	} else if _, err := r.write(ListFile, data); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render.WriteNavJSON(&buf, items); err != nil {
		r.fail(NavFile, err)
		return nil
	}
	_, err := r.write(NavFile, buf.Bytes())
	return err
}

// index refreshes the search index and the JSON and YAML exports.
func (g *Generator) index(ctx context.Context, v *Vocabulary) error {
	docs := ConceptDocs(v, g.cfg.Site.BaseURL, g.cfg.Source.Language)
	if err := g.store.IndexConcepts(ctx, docs); err != nil {
		return errors.Wrap(err, "indexing concepts")
	}
	if err := g.store.ExportJSON(ctx, filepath.Join(g.store.Dir(), ExportJSONFile)); err != nil {
		return errors.Wrap(err, "exporting JSON")
	}
	if err := g.store.ExportYAML(ctx, filepath.Join(g.store.Dir(), ExportYAMLFile)); err != nil {
		return errors.Wrap(err, "exporting YAML")
	}
	g.logger.Debug("search index refreshed", zap.Int(logging.FieldCount, len(docs)))
	return nil
}

// ConceptDocs builds the search records of every indexed concept.
func ConceptDocs(v *Vocabulary, baseURL, lang string) []buildstate.ConceptDoc {
	docs := make([]buildstate.ConceptDoc, 0, v.Index.Len())
	for _, e := range v.Index.Entries() {
		s := rdfgraph.IRI(e.Identity)
		def, _ := v.Graph.Literal(s, rdfgraph.SKOSDefinition, lang)
		aliases := append(v.Graph.Strings(s, rdfgraph.SKOSAltLabel), v.Graph.Strings(s, rdfgraph.SKOSHiddenLabel)...)
		docs = append(docs, buildstate.ConceptDoc{
			Identity:   e.Identity,
			Reference:  e.Reference,
			Label:      e.Label,
			Slug:       e.Slug,
			URL:        strings.TrimRight(baseURL, "/") + vocab.DocPath(e.Reference),
			Aliases:    aliases,
			Definition: def,
		})
	}
	return docs
}
