// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rdfgraph

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knakk/rdf"
)

// ParseTurtle decodes Turtle from r and adds every triple to g. It returns
// the number of triples read.
func ParseTurtle(r io.Reader, g *Graph) (int, error) {
	dec := rdf.NewTripleDecoder(r, rdf.Turtle)
	n := 0
	for {
		t, err := dec.Decode()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, errors.Wrap(err, "decoding turtle")
		}
		g.Add(Triple{
			Subject:   nodeFromTerm(t.Subj),
			Predicate: t.Pred.String(),
			Object:    nodeFromTerm(t.Obj),
		})
		n++
	}
}

func nodeFromTerm(term rdf.Term) Node {
	switch v := term.(type) {
	case rdf.IRI:
		return IRI(v.String())
	case rdf.Blank:
		return Blank(strings.TrimPrefix(v.String(), "_:"))
	case rdf.Literal:
		n := Node{Kind: KindLiteral, Value: v.String(), Lang: strings.ToLower(v.Lang())}
		if dt := v.DataType.String(); dt != XSDString && dt != RDFLangString {
			n.Datatype = dt
		}
		return n
	}
	return Literal(term.String())
}

func termFromNode(n Node) (rdf.Term, error) {
	switch n.Kind {
	case KindIRI:
		return rdf.NewIRI(n.Value)
	case KindBlank:
		return rdf.NewBlank(n.Value)
	}
	if n.Lang != "" {
		return rdf.NewLangLiteral(n.Value, n.Lang)
	}
	if n.Datatype != "" {
		dt, err := rdf.NewIRI(n.Datatype)
		if err != nil {
			return nil, err
		}
		return rdf.NewTypedLiteral(n.Value, dt), nil
	}
	return rdf.NewLiteral(n.Value)
}

// TurtleOptions controls WriteTurtle output.
type TurtleOptions struct {
	// Base is written as the @base directive when set.
	Base string

	// Prefixes maps prefix → namespace IRI. The empty prefix is allowed.
	Prefixes map[string]string
}

// DefaultPrefixes returns the prefixes bound in the downloadable export.
func DefaultPrefixes(conceptNamespace string) map[string]string {
	p := map[string]string{
		"skos":    NSSKOS,
		"dct":     NSDCTerms,
		"adms":    NSADMS,
		"rdfs":    NSRDFS,
		"isothes": NSISOThes,
		"foaf":    NSFOAF,
	}
	if conceptNamespace != "" {
		p[""] = conceptNamespace
	}
	return p
}

// WriteTurtle serializes g to w. Triples are grouped by subject, subjects
// ordered by IRI, so the output is stable across runs.
func WriteTurtle(w io.Writer, g *Graph, opts TurtleOptions) error {
	if opts.Base != "" {
		if _, err := fmt.Fprintf(w, "@base <%s> .\n", opts.Base); err != nil {
			return errors.Wrap(err, "writing base")
		}
	}

	enc := rdf.NewTripleEncoder(w, rdf.Turtle)
	enc.Namespaces = make(map[string]string, len(opts.Prefixes))
	for prefix, ns := range opts.Prefixes {
		enc.Namespaces[ns] = prefix
	}

	triples := g.Triples()
	sort.SliceStable(triples, func(i, j int) bool {
		return triples[i].Subject.Value < triples[j].Subject.Value
	})

	out := make([]rdf.Triple, 0, len(triples))
	for _, t := range triples {
		rt, err := toRDFTriple(t)
		if err != nil {
			return errors.Wrapf(err, "converting triple <%s> <%s>", t.Subject.Value, t.Predicate)
		}
		out = append(out, rt)
	}

	if err := enc.EncodeAll(out); err != nil {
		return errors.Wrap(err, "encoding turtle")
	}
	return errors.Wrap(enc.Close(), "flushing turtle")
}

func toRDFTriple(t Triple) (rdf.Triple, error) {
	s, err := termFromNode(t.Subject)
	if err != nil {
		return rdf.Triple{}, err
	}
	p, err := rdf.NewIRI(t.Predicate)
	if err != nil {
		return rdf.Triple{}, err
	}
	o, err := termFromNode(t.Object)
	if err != nil {
		return rdf.Triple{}, err
	}
	subj, ok := s.(rdf.Subject)
	if !ok {
		return rdf.Triple{}, errors.Newf("term %q cannot be a subject", t.Subject.Value)
	}
	obj, ok := o.(rdf.Object)
	if !ok {
		return rdf.Triple{}, errors.Newf("term %q cannot be an object", t.Object.Value)
	}
	return rdf.Triple{Subj: subj, Pred: p, Obj: obj}, nil
}
