// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns vocabulary data into Markdown pages for the site:
// concept pages, alias redirects, disambiguation pages, the A-Z list and
// the homepage. Templates are embedded and can be overridden per file from
// a template directory.
package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/termsite/internal/autolink"
	"github.com/pdiddy/termsite/pkg/types"
)

//go:embed templates/*.md.tmpl
var embedded embed.FS

// Template names.
const (
	ConceptTemplate        = "concept.md.tmpl"
	AliasTemplate          = "alias.md.tmpl"
	DisambiguationTemplate = "disambiguation.md.tmpl"
	ListTemplate           = "list.md.tmpl"
	IndexTemplate          = "index.md.tmpl"
)

// Renderer executes the page templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates and then any *.md.tmpl file in
// templateDir, which replaces the embedded template of the same name. An
// empty templateDir uses the embedded templates only.
func New(templateDir string) (*Renderer, error) {
	funcs := template.FuncMap{
		"frontmatter": frontMatter,
		"join":        strings.Join,
	}
	tmpl, err := template.New("pages").Funcs(funcs).ParseFS(embedded, "templates/*.md.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "parsing embedded templates")
	}
	if templateDir == "" {
		return &Renderer{tmpl: tmpl}, nil
	}

	overrides, err := fs.Glob(os.DirFS(templateDir), "*.md.tmpl")
	if err != nil {
		return nil, errors.Wrapf(err, "listing templates in %s", templateDir)
	}
	for _, name := range overrides {
		path := filepath.Join(templateDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading template %s", path)
		}
		if _, err := tmpl.New(name).Parse(string(data)); err != nil {
			return nil, errors.Wrapf(err, "parsing template %s", path)
		}
	}
	return &Renderer{tmpl: tmpl}, nil
}

func (r *Renderer) execute(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, errors.Wrapf(err, "executing %s", name)
	}
	return buf.Bytes(), nil
}

// conceptFrontMatter is the Jekyll front matter of a concept page.
type conceptFrontMatter struct {
	Title     string   `yaml:"title"`
	Parent    string   `yaml:"parent,omitempty"`
	Permalink string   `yaml:"permalink"`
	AltLabels []string `yaml:"alt_labels,omitempty"`
	Status    string   `yaml:"status,omitempty"`
}

type aliasFrontMatter struct {
	Title         string `yaml:"title"`
	NavExclude    bool   `yaml:"nav_exclude"`
	SearchExclude bool   `yaml:"search_exclude"`
	RedirectTo    string `yaml:"redirect_to,omitempty"`
}

type pageFrontMatter struct {
	Title     string `yaml:"title"`
	NavOrder  int    `yaml:"nav_order,omitempty"`
	Permalink string `yaml:"permalink,omitempty"`
}

// Concept renders a concept page.
func (r *Renderer) Concept(p ConceptPage) ([]byte, error) {
	return r.execute(ConceptTemplate, struct {
		ConceptPage
		FrontMatter conceptFrontMatter
	}{
		ConceptPage: p,
		FrontMatter: conceptFrontMatter{
			Title:     p.Label,
			Parent:    p.ParentLabel,
			Permalink: p.Permalink,
			AltLabels: p.List("alternatieve_term"),
			Status:    p.Status,
		},
	})
}

// Alias renders the page of an alias group: a redirect for a single target,
// a disambiguation page otherwise.
func (r *Renderer) Alias(a AliasGroup) ([]byte, error) {
	if a.Redirect() {
		t := a.Targets[0]
		return r.execute(AliasTemplate, struct {
			AliasGroup
			Target      AliasTarget
			FrontMatter aliasFrontMatter
		}{
			AliasGroup: a,
			Target:     t,
			FrontMatter: aliasFrontMatter{
				Title:      a.Term + " → " + t.TargetLabel,
				NavExclude: true,
				RedirectTo: t.TargetPath,
			},
		})
	}
	return r.execute(DisambiguationTemplate, struct {
		AliasGroup
		FrontMatter aliasFrontMatter
	}{
		AliasGroup: a,
		FrontMatter: aliasFrontMatter{
			Title:      a.Term + " (Doorverwijspagina)",
			NavExclude: true,
		},
	})
}

// List renders the A-Z list.
func (r *Renderer) List(groups []LetterGroup) ([]byte, error) {
	letters := make([]string, 0, len(groups))
	for _, g := range groups {
		letters = append(letters, g.Letter)
	}
	return r.execute(ListTemplate, struct {
		Letters     []string
		Groups      []LetterGroup
		FrontMatter pageFrontMatter
	}{
		Letters:     letters,
		Groups:      groups,
		FrontMatter: pageFrontMatter{Title: "Begrippenlijst", NavOrder: 2, Permalink: "/lijst"},
	})
}

// Home renders the homepage.
func (r *Renderer) Home(h HomePage) ([]byte, error) {
	return r.execute(IndexTemplate, struct {
		HomePage
		FrontMatter pageFrontMatter
	}{
		HomePage:    h,
		FrontMatter: pageFrontMatter{Title: "Startpagina", NavOrder: 1, Permalink: "/"},
	})
}

// WriteNavJSON writes the A-Z navigation items as a JSON array.
func WriteNavJSON(w io.Writer, items []types.NavItem) error {
	if items == nil {
		items = []types.NavItem{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(items), "encoding navigation JSON")
}

// LinkFormatter returns a Markdown link formatter that prefixes every
// target with the site base URL.
func LinkFormatter(baseURL string) autolink.LinkFormatter {
	base := strings.TrimRight(baseURL, "/")
	return func(text, url string) string {
		return autolink.Markdown(text, base+url)
	}
}

func frontMatter(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "marshaling front matter")
	}
	return "---\n" + string(data) + "---\n", nil
}
