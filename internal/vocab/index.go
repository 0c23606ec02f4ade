// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vocab builds the vocabulary index: the canonical label, reference
// and slug of every concept, keyed by concept identity.
package vocab

import (
	"strings"

	"github.com/pdiddy/termsite/internal/rdfgraph"
	"github.com/pdiddy/termsite/pkg/types"
)

// DocPrefix is the path every concept page is published under.
const DocPrefix = "/doc/"

// DocPath returns the site path of the concept page for reference.
func DocPath(reference string) string {
	return DocPrefix + reference
}

// Reference returns the last non-empty path or fragment segment of an
// identity: "https://x/id/mer53" and "https://x/id#mer53/" both yield "mer53".
func Reference(identity string) string {
	s := strings.TrimRight(strings.TrimSpace(identity), "/#")
	if i := strings.LastIndexAny(s, "/#"); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}

// Index maps concept identities to their index entries. It is built once
// per run and read-only afterwards, so it is safe for concurrent readers.
type Index struct {
	entries map[string]types.IndexEntry
	order   []string
}

// Build creates an index from concept records in the order given. Records
// whose reference or label is empty after trimming are skipped, as are
// repeated identities (the first record wins).
func Build(records []types.ConceptRecord) *Index {
	idx := &Index{entries: make(map[string]types.IndexEntry, len(records))}
	for _, rec := range records {
		if _, dup := idx.entries[rec.Identity]; dup {
			continue
		}
		ref := Reference(rec.Identity)
		if ref == "" {
			continue
		}
		label := strings.TrimSpace(rec.PrefLabel)
		if label == "" {
			label = ref
		}
		idx.entries[rec.Identity] = types.IndexEntry{
			Identity:  rec.Identity,
			Reference: ref,
			Label:     label,
			Slug:      Slugify(label),
		}
		idx.order = append(idx.order, rec.Identity)
	}
	return idx
}

// Lookup returns the entry for identity.
func (x *Index) Lookup(identity string) (types.IndexEntry, bool) {
	e, ok := x.entries[identity]
	return e, ok
}

// Len returns the number of indexed concepts.
func (x *Index) Len() int { return len(x.order) }

// Entries returns all entries in build order.
func (x *Index) Entries() []types.IndexEntry {
	out := make([]types.IndexEntry, 0, len(x.order))
	for _, id := range x.order {
		out = append(out, x.entries[id])
	}
	return out
}

// RecordsFromGraph lists every IRI subject typed skos:Concept with its
// preferred label in lang (falling back to an untagged or any label).
// Blank-node concepts have no stable identity and are skipped.
func RecordsFromGraph(g *rdfgraph.Graph, lang string) []types.ConceptRecord {
	var records []types.ConceptRecord
	for _, s := range g.SubjectsOfType(rdfgraph.SKOSConcept) {
		if !s.IsIRI() {
			continue
		}
		label, _ := g.Literal(s, rdfgraph.SKOSPrefLabel, lang)
		records = append(records, types.ConceptRecord{Identity: s.Value, PrefLabel: label})
	}
	return records
}
