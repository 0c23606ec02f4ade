// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rdfgraph loads SKOS vocabularies from Turtle into an in-memory
// triple graph and serializes the graph back to Turtle for download.
package rdfgraph

import (
	"strings"
)

// NodeKind identifies the RDF term type of a Node.
type NodeKind int

const (
	KindIRI NodeKind = iota
	KindBlank
	KindLiteral
)

// Node is an RDF term. Literals carry their language tag or datatype;
// IRIs and blank nodes only use Value.
type Node struct {
	Kind     NodeKind
	Value    string
	Lang     string
	Datatype string
}

// IRI returns an IRI node.
func IRI(v string) Node { return Node{Kind: KindIRI, Value: v} }

// Blank returns a blank node with the given label.
func Blank(id string) Node { return Node{Kind: KindBlank, Value: id} }

// Literal returns a plain string literal.
func Literal(v string) Node { return Node{Kind: KindLiteral, Value: v} }

// LangLiteral returns a language-tagged literal.
func LangLiteral(v, lang string) Node {
	return Node{Kind: KindLiteral, Value: v, Lang: strings.ToLower(lang)}
}

// IsIRI reports whether n is an IRI.
func (n Node) IsIRI() bool { return n.Kind == KindIRI }

// IsLiteral reports whether n is a literal.
func (n Node) IsLiteral() bool { return n.Kind == KindLiteral }

// String returns the lexical value of the node.
func (n Node) String() string { return n.Value }

// Triple is a single statement. Predicates are always IRIs.
type Triple struct {
	Subject   Node
	Predicate string
	Object    Node
}

// Graph is an insertion-ordered set of triples indexed by subject.
// A Graph is not safe for concurrent mutation; once loaded it is only read.
type Graph struct {
	triples   []Triple
	seen      map[Triple]struct{}
	bySubject map[Node][]int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		seen:      make(map[Triple]struct{}),
		bySubject: make(map[Node][]int),
	}
}

// Add inserts t and reports whether it was new. Duplicate triples are ignored.
func (g *Graph) Add(t Triple) bool {
	if _, ok := g.seen[t]; ok {
		return false
	}
	g.seen[t] = struct{}{}
	g.bySubject[t.Subject] = append(g.bySubject[t.Subject], len(g.triples))
	g.triples = append(g.triples, t)
	return true
}

// Len returns the number of triples.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns a copy of all triples in insertion order.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// Objects returns the objects of (s, p, ?) in insertion order.
func (g *Graph) Objects(s Node, p string) []Node {
	var out []Node
	for _, i := range g.bySubject[s] {
		if g.triples[i].Predicate == p {
			out = append(out, g.triples[i].Object)
		}
	}
	return out
}

// Value returns the first object of (s, p, ?).
func (g *Graph) Value(s Node, p string) (Node, bool) {
	for _, i := range g.bySubject[s] {
		if g.triples[i].Predicate == p {
			return g.triples[i].Object, true
		}
	}
	return Node{}, false
}

// Has reports whether (s, p, o) is in the graph.
func (g *Graph) Has(s Node, p string, o Node) bool {
	_, ok := g.seen[Triple{Subject: s, Predicate: p, Object: o}]
	return ok
}

// Subjects returns the distinct subjects of (?, p, o) in insertion order.
func (g *Graph) Subjects(p string, o Node) []Node {
	seen := make(map[Node]bool)
	var out []Node
	for _, t := range g.triples {
		if t.Predicate == p && t.Object == o && !seen[t.Subject] {
			seen[t.Subject] = true
			out = append(out, t.Subject)
		}
	}
	return out
}

// SubjectsOfType returns the distinct subjects typed with class.
func (g *Graph) SubjectsOfType(class string) []Node {
	return g.Subjects(RDFType, IRI(class))
}

// Literal returns the literal value of (s, p, ?) preferring the given
// language tag, then untagged literals, then any literal.
func (g *Graph) Literal(s Node, p, lang string) (string, bool) {
	var untagged, other *Node
	for _, o := range g.Objects(s, p) {
		if !o.IsLiteral() {
			continue
		}
		switch {
		case lang != "" && strings.EqualFold(o.Lang, lang):
			return o.Value, true
		case o.Lang == "" && untagged == nil:
			untagged = &o
		case other == nil:
			other = &o
		}
	}
	switch {
	case untagged != nil:
		return untagged.Value, true
	case other != nil:
		return other.Value, true
	}
	return "", false
}

// Strings returns the lexical values of all objects of (s, p, ?).
func (g *Graph) Strings(s Node, p string) []string {
	objs := g.Objects(s, p)
	out := make([]string, 0, len(objs))
	for _, o := range objs {
		out = append(out, o.Value)
	}
	return out
}
