// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate checks a vocabulary graph against the NL-SBB SKOS
// application profile. It covers the constraints the site depends on:
// label cardinality, definitions, scheme membership, relation targets and
// status values.
package validate

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/pdiddy/termsite/internal/rdfgraph"
)

// ErrNotConform is returned by Report.Err when the graph has violations.
var ErrNotConform = errors.New("vocabulary does not conform to the NL-SBB profile")

// Severity mirrors the SHACL severities.
type Severity string

const (
	Violation Severity = "Violation"
	Warning   Severity = "Warning"
)

// Result is one failed constraint.
type Result struct {
	Focus      string   `json:"focus" yaml:"focus"`
	Path       string   `json:"path,omitempty" yaml:"path,omitempty"`
	Constraint string   `json:"constraint" yaml:"constraint"`
	Severity   Severity `json:"severity" yaml:"severity"`
	Message    string   `json:"message" yaml:"message"`
}

// Report is the outcome of Validate. Conforms is false iff at least one
// result is a Violation.
type Report struct {
	Conforms bool     `json:"conforms" yaml:"conforms"`
	Results  []Result `json:"results" yaml:"results"`
}

// Count returns the number of results with severity sev.
func (r Report) Count(sev Severity) int {
	n := 0
	for _, res := range r.Results {
		if res.Severity == sev {
			n++
		}
	}
	return n
}

// Err returns ErrNotConform when the report has violations, or warnings
// with warningsAsErrors set.
func (r Report) Err(warningsAsErrors bool) error {
	if !r.Conforms {
		return errors.WithHint(
			errors.Wrapf(ErrNotConform, "%d violation(s)", r.Count(Violation)),
			"run `termsite validate` for the full report")
	}
	if warningsAsErrors && r.Count(Warning) > 0 {
		return errors.Wrapf(ErrNotConform, "%d warning(s) treated as errors", r.Count(Warning))
	}
	return nil
}

// Text renders the report in the layout of a SHACL validation report.
func (r Report) Text() string {
	var b strings.Builder
	b.WriteString("Validation Report\n")
	fmt.Fprintf(&b, "Conforms: %s\n", pyBool(r.Conforms))
	if len(r.Results) == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "Results (%d):\n", len(r.Results))
	for _, res := range r.Results {
		kind := "Constraint Violation"
		if res.Severity == Warning {
			kind = "Validation Warning"
		}
		fmt.Fprintf(&b, "%s in %sConstraintComponent:\n", kind, res.Constraint)
		fmt.Fprintf(&b, "\tSeverity: sh:%s\n", res.Severity)
		fmt.Fprintf(&b, "\tFocus Node: %s\n", res.Focus)
		if res.Path != "" {
			fmt.Fprintf(&b, "\tResult Path: %s\n", res.Path)
		}
		fmt.Fprintf(&b, "\tMessage: %s\n", res.Message)
	}
	return b.String()
}

func pyBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// relation predicates whose objects must be concepts of the vocabulary
var conceptRelations = []string{
	rdfgraph.SKOSBroader,
	rdfgraph.SKOSNarrower,
	rdfgraph.SKOSRelated,
	rdfgraph.ISOBroaderPartitive,
	rdfgraph.ISONarrowerPartitive,
	rdfgraph.ISOBroaderGeneric,
	rdfgraph.ISONarrowerGeneric,
	rdfgraph.ISOBroaderInstantial,
	rdfgraph.ISONarrowerInstantial,
}

// Validate checks every skos:Concept in g.
func Validate(g *rdfgraph.Graph) Report {
	v := validator{g: g}

	if len(g.SubjectsOfType(rdfgraph.SKOSConceptScheme)) == 0 {
		v.add(Result{
			Constraint: "MinCount",
			Severity:   Warning,
			Path:       rdfgraph.RDFType,
			Message:    "Graph contains no skos:ConceptScheme",
		})
	}
	for _, c := range g.SubjectsOfType(rdfgraph.SKOSConcept) {
		v.concept(c)
	}

	return Report{Conforms: v.violations == 0, Results: v.results}
}

type validator struct {
	g          *rdfgraph.Graph
	results    []Result
	violations int
}

func (v *validator) add(r Result) {
	if r.Severity == Violation {
		v.violations++
	}
	v.results = append(v.results, r)
}

func (v *validator) concept(c rdfgraph.Node) {
	focus := c.String()
	fail := func(path, constraint string, sev Severity, format string, args ...any) {
		v.add(Result{
			Focus:      focus,
			Path:       path,
			Constraint: constraint,
			Severity:   sev,
			Message:    fmt.Sprintf(format, args...),
		})
	}

	// prefLabel: at least one, literal, unique per language.
	prefs := v.g.Objects(c, rdfgraph.SKOSPrefLabel)
	if len(prefs) == 0 {
		fail(rdfgraph.SKOSPrefLabel, "MinCount", Violation, "Less than 1 values on %s->skos:prefLabel", focus)
	}
	perLang := make(map[string]int)
	for _, p := range prefs {
		if !p.IsLiteral() {
			fail(rdfgraph.SKOSPrefLabel, "NodeKind", Violation, "Value %s is not a Literal", p)
			continue
		}
		perLang[p.Lang]++
		if perLang[p.Lang] == 2 {
			fail(rdfgraph.SKOSPrefLabel, "UniqueLang", Violation,
				"More than one skos:prefLabel with language %q", p.Lang)
		}
		for _, path := range []string{rdfgraph.SKOSAltLabel, rdfgraph.SKOSHiddenLabel} {
			if v.g.Has(c, path, p) {
				fail(path, "Disjoint", Violation,
					"Value %q is both skos:prefLabel and %s", p.Value, localName(path))
			}
		}
	}

	defs := v.g.Objects(c, rdfgraph.SKOSDefinition)
	if len(defs) == 0 {
		fail(rdfgraph.SKOSDefinition, "MinCount", Violation, "Less than 1 values on %s->skos:definition", focus)
	}
	for _, d := range defs {
		if !d.IsLiteral() {
			fail(rdfgraph.SKOSDefinition, "NodeKind", Violation, "Value %s is not a Literal", d)
		}
	}

	if len(v.g.Objects(c, rdfgraph.SKOSInScheme)) == 0 && len(v.g.Objects(c, rdfgraph.SKOSTopConceptOf)) == 0 {
		fail(rdfgraph.SKOSInScheme, "MinCount", Warning, "Concept is not in any skos:ConceptScheme")
	}

	for _, pred := range conceptRelations {
		for _, o := range v.g.Objects(c, pred) {
			if !o.IsIRI() || !v.g.Has(o, rdfgraph.RDFType, rdfgraph.IRI(rdfgraph.SKOSConcept)) {
				fail(pred, "Class", Warning, "Value %s does not have class skos:Concept", o)
			}
		}
	}

	for _, s := range v.g.Objects(c, rdfgraph.ADMSStatus) {
		if !s.IsIRI() {
			fail(rdfgraph.ADMSStatus, "NodeKind", Violation, "Value %s is not an IRI", s)
		}
	}
}

func localName(iri string) string {
	if i := strings.LastIndexAny(iri, "#/"); i >= 0 {
		return "skos:" + iri[i+1:]
	}
	return iri
}
