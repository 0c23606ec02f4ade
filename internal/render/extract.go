// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/pdiddy/termsite/internal/rdfgraph"
	"github.com/pdiddy/termsite/internal/vocab"
	"github.com/pdiddy/termsite/pkg/types"
)

// ErrNotIndexed is returned for a subject that is not in the vocabulary index.
var ErrNotIndexed = errors.New("concept is not in the vocabulary index")

// TextLinker rewrites free text with links; selfLabel is the label of the
// page being rendered.
type TextLinker interface {
	Link(text, selfLabel string) string
}

// FieldValue holds the extracted values of one mapped field. Text is set
// for Single fields, Items for List fields and Links for relations.
type FieldValue struct {
	Field
	Text  string
	Items []string
	Links []types.Link
}

// Empty reports whether the field has no values.
func (v FieldValue) Empty() bool {
	return v.Text == "" && len(v.Items) == 0 && len(v.Links) == 0
}

// ConceptPage is everything a concept template needs.
type ConceptPage struct {
	URI         string
	Reference   string
	Label       string
	Slug        string
	Permalink   string
	Status      string
	ParentLabel string
	// Fields holds the non-empty mapped fields in Mapping order.
	Fields []FieldValue
}

// Field returns the field stored under key.
func (p ConceptPage) Field(key string) (FieldValue, bool) {
	for _, f := range p.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldValue{}, false
}

// Single returns the text of a Single field, or "".
func (p ConceptPage) Single(key string) string {
	f, _ := p.Field(key)
	return f.Text
}

// List returns the items of a List field.
func (p ConceptPage) List(key string) []string {
	f, _ := p.Field(key)
	return f.Items
}

// Links returns the links of a relation field.
func (p ConceptPage) Links(key string) []types.Link {
	f, _ := p.Field(key)
	return f.Links
}

// Details returns the fields shown in the definition list.
func (p ConceptPage) Details() []FieldValue {
	var out []FieldValue
	for _, f := range p.Fields {
		if f.Detail {
			out = append(out, f)
		}
	}
	return out
}

// Extractor reads concept pages from a graph.
type Extractor struct {
	Graph   *rdfgraph.Graph
	Index   *vocab.Index
	Linker  TextLinker
	BaseURL string
	Lang    string
}

// Concept extracts the page of subject s.
func (e *Extractor) Concept(s rdfgraph.Node) (ConceptPage, error) {
	entry, ok := e.Index.Lookup(s.Value)
	if !ok || !s.IsIRI() {
		return ConceptPage{}, errors.Wrapf(ErrNotIndexed, "%s", s.Value)
	}

	page := ConceptPage{
		URI:       entry.Identity,
		Reference: entry.Reference,
		Label:     entry.Label,
		Slug:      entry.Slug,
		Permalink: vocab.DocPath(entry.Reference),
	}
	if st, ok := e.Graph.Value(s, rdfgraph.ADMSStatus); ok {
		page.Status = vocab.Reference(st.Value)
	}

	for _, f := range Mapping {
		v := FieldValue{Field: f}
		switch f.Kind {
		case Single:
			if text, ok := e.Graph.Literal(s, f.Predicate, e.Lang); ok {
				v.Text = e.link(f, text, page.Label)
			}
		case List:
			for _, text := range e.texts(s, f.Predicate) {
				v.Items = append(v.Items, e.link(f, text, page.Label))
			}
		case Internal:
			v.Links = e.internal(s, f.Predicate)
		case External:
			v.Links = e.external(s, f.Predicate)
		}
		if !v.Empty() {
			page.Fields = append(page.Fields, v)
		}
	}

	if parents := page.Links("heeft_bovenliggend_begrip"); len(parents) > 0 {
		page.ParentLabel = parents[0].Label
	}
	return page, nil
}

// URL returns the absolute site URL of a site path.
func (e *Extractor) URL(path string) string {
	return strings.TrimRight(e.BaseURL, "/") + path
}

func (e *Extractor) link(f Field, text, self string) string {
	if !f.Linkable || e.Linker == nil {
		return text
	}
	return e.Linker.Link(text, self)
}

// texts returns the literal values of (s, p) in the page language, plus
// untagged ones. When none match, all literals are returned.
func (e *Extractor) texts(s rdfgraph.Node, p string) []string {
	var matched, all []string
	for _, o := range e.Graph.Objects(s, p) {
		if !o.IsLiteral() {
			continue
		}
		all = append(all, o.Value)
		if o.Lang == "" || e.Lang == "" || strings.EqualFold(o.Lang, e.Lang) {
			matched = append(matched, o.Value)
		}
	}
	if len(matched) == 0 {
		return all
	}
	return matched
}

func (e *Extractor) internal(s rdfgraph.Node, p string) []types.Link {
	var links []types.Link
	for _, o := range e.Graph.Objects(s, p) {
		target, ok := e.Index.Lookup(o.Value)
		if !ok || !o.IsIRI() {
			continue
		}
		links = append(links, types.Link{URL: e.URL(vocab.DocPath(target.Reference)), Label: target.Label})
	}
	return links
}

// external labels each object with rdfs:label, skos:prefLabel or dct:title
// and links it to its foaf:page, or to the object itself when it is an IRI.
// Literal objects without a page are shown as plain text.
func (e *Extractor) external(s rdfgraph.Node, p string) []types.Link {
	var links []types.Link
	for _, o := range e.Graph.Objects(s, p) {
		if o.IsLiteral() {
			links = append(links, types.Link{Label: o.Value})
			continue
		}
		label := ""
		for _, lp := range []string{rdfgraph.RDFSLabel, rdfgraph.SKOSPrefLabel, rdfgraph.DCTTitle} {
			if l, ok := e.Graph.Literal(o, lp, e.Lang); ok {
				label = l
				break
			}
		}
		url := ""
		if page, ok := e.Graph.Value(o, rdfgraph.FOAFPage); ok {
			url = page.Value
		} else if o.IsIRI() {
			url = o.Value
		}
		if label == "" {
			label = url
		}
		if label == "" {
			continue
		}
		links = append(links, types.Link{URL: url, Label: label})
	}
	return links
}

// HomePage is the data of the site's start page.
type HomePage struct {
	Title       string
	Description string
}

// Homepage reads the title and description of the first concept scheme.
func Homepage(g *rdfgraph.Graph, lang string) HomePage {
	home := HomePage{
		Title:       "Begrippenkader",
		Description: "Welkom bij het begrippenkader.",
	}
	schemes := g.SubjectsOfType(rdfgraph.SKOSConceptScheme)
	if len(schemes) == 0 {
		return home
	}
	if t, ok := g.Literal(schemes[0], rdfgraph.DCTTitle, lang); ok {
		home.Title = t
	}
	if d, ok := g.Literal(schemes[0], rdfgraph.RDFSComment, lang); ok {
		home.Description = d
	}
	return home
}
