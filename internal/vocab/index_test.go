// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/termsite/internal/rdfgraph"
	"github.com/pdiddy/termsite/pkg/types"
)

func TestReference(t *testing.T) {
	tests := []struct {
		identity string
		want     string
	}{
		{"https://begrippen.example.nl/id/mer53", "mer53"},
		{"https://begrippen.example.nl/id/mer53/", "mer53"},
		{"https://begrippen.example.nl/def#Meter", "Meter"},
		{"https://begrippen.example.nl/def#Meter#", "Meter"},
		{"urn:uuid:1234", "urn:uuid:1234"},
		{"  https://x/y/z  ", "z"},
		{"https://x/y/ /", ""},
		{"", ""},
		{"///", ""},
	}
	for _, tt := range tests {
		t.Run(tt.identity, func(t *testing.T) {
			assert.Equal(t, tt.want, Reference(tt.identity))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Laagtelwerk", "laagtelwerk"},
		{"Smart meter", "smart-meter"},
		{"Eén-fase aansluiting (LS)", "een-fase-aansluiting-ls"},
		{"  Côte d'Ivoire  ", "cote-d-ivoire"},
		{"kWh/jaar", "kwh-jaar"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestBuild(t *testing.T) {
	idx := Build([]types.ConceptRecord{
		{Identity: "https://x/id/mer53", PrefLabel: " Laagtelwerk "},
		{Identity: "https://x/id/mtr01"},
		{Identity: "  /  ", PrefLabel: "Geen referentie"},
		{Identity: "https://x/id/mer53", PrefLabel: "Dubbel"},
		{Identity: "https://x/id/aansl", PrefLabel: "Eén-fase aansluiting"},
	})

	require.Equal(t, 3, idx.Len())

	mer, ok := idx.Lookup("https://x/id/mer53")
	require.True(t, ok)
	assert.Equal(t, types.IndexEntry{
		Identity:  "https://x/id/mer53",
		Reference: "mer53",
		Label:     "Laagtelwerk",
		Slug:      "laagtelwerk",
	}, mer)

	mtr, ok := idx.Lookup("https://x/id/mtr01")
	require.True(t, ok)
	assert.Equal(t, "mtr01", mtr.Label, "label falls back to reference")

	_, ok = idx.Lookup("  /  ")
	assert.False(t, ok)

	entries := idx.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "mer53", entries[0].Reference)
	assert.Equal(t, "mtr01", entries[1].Reference)
	assert.Equal(t, "een-fase-aansluiting", entries[2].Slug)
}

func TestBuildEmpty(t *testing.T) {
	idx := Build(nil)
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Entries())
}

func TestRecordsFromGraph(t *testing.T) {
	g := rdfgraph.New()
	concept := rdfgraph.IRI("https://x/id/mer53")
	blank := rdfgraph.Blank("b0")
	g.Add(rdfgraph.Triple{Subject: concept, Predicate: rdfgraph.RDFType, Object: rdfgraph.IRI(rdfgraph.SKOSConcept)})
	g.Add(rdfgraph.Triple{Subject: concept, Predicate: rdfgraph.SKOSPrefLabel, Object: rdfgraph.LangLiteral("Low register", "en")})
	g.Add(rdfgraph.Triple{Subject: concept, Predicate: rdfgraph.SKOSPrefLabel, Object: rdfgraph.LangLiteral("Laagtelwerk", "nl")})
	g.Add(rdfgraph.Triple{Subject: blank, Predicate: rdfgraph.RDFType, Object: rdfgraph.IRI(rdfgraph.SKOSConcept)})

	records := RecordsFromGraph(g, "nl")
	assert.Equal(t, []types.ConceptRecord{
		{Identity: "https://x/id/mer53", PrefLabel: "Laagtelwerk"},
	}, records)
}

func TestDocPath(t *testing.T) {
	assert.Equal(t, "/doc/mer53", DocPath("mer53"))
}
