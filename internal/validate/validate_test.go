// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/termsite/internal/rdfgraph"
)

const prefixes = `@prefix : <https://begrippen.example.nl/id/> .
@prefix skos: <http://www.w3.org/2004/02/skos/core#> .
@prefix adms: <http://www.w3.org/ns/adms#> .
`

func parse(t *testing.T, ttl string) *rdfgraph.Graph {
	t.Helper()
	g := rdfgraph.New()
	_, err := rdfgraph.ParseTurtle(strings.NewReader(prefixes+ttl), g)
	require.NoError(t, err)
	return g
}

func TestValidateConforms(t *testing.T) {
	g := parse(t, `
:schema a skos:ConceptScheme .
:mer53 a skos:Concept ;
    skos:prefLabel "Laagtelwerk"@nl , "Low register"@en ;
    skos:definition "Telwerk voor het daltarief."@nl ;
    skos:broader :mtr01 ;
    adms:status <http://publications.europa.eu/resource/authority/concept-status/CURRENT> ;
    skos:inScheme :schema .
:mtr01 a skos:Concept ;
    skos:prefLabel "Meter"@nl ;
    skos:definition "Apparaat dat energie meet."@nl ;
    skos:topConceptOf :schema .
`)
	r := Validate(g)
	assert.True(t, r.Conforms)
	assert.Empty(t, r.Results)
	assert.NoError(t, r.Err(true))
	assert.Equal(t, "Validation Report\nConforms: True\n", r.Text())
}

func TestValidateViolations(t *testing.T) {
	g := parse(t, `
:bad a skos:Concept ;
    skos:prefLabel "Net"@nl , "Netwerk"@nl ;
    skos:altLabel "Net"@nl ;
    skos:broader :missing ;
    adms:status "geldig" .
`)
	r := Validate(g)
	require.False(t, r.Conforms)

	byConstraint := make(map[string][]Result)
	for _, res := range r.Results {
		byConstraint[res.Constraint] = append(byConstraint[res.Constraint], res)
	}

	require.Len(t, byConstraint["UniqueLang"], 1)
	require.Len(t, byConstraint["Disjoint"], 1)
	assert.Equal(t, rdfgraph.SKOSAltLabel, byConstraint["Disjoint"][0].Path)
	require.Len(t, byConstraint["Class"], 1)
	assert.Equal(t, Warning, byConstraint["Class"][0].Severity)
	require.Len(t, byConstraint["NodeKind"], 1)
	assert.Equal(t, rdfgraph.ADMSStatus, byConstraint["NodeKind"][0].Path)

	// no scheme, no definition, no inScheme
	require.Len(t, byConstraint["MinCount"], 3)

	assert.Equal(t, 4, r.Count(Violation))
	assert.Equal(t, 3, r.Count(Warning))

	err := r.Err(false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConform))
	assert.Contains(t, errors.FlattenHints(err), "termsite validate")

	text := r.Text()
	assert.Contains(t, text, "Conforms: False")
	assert.Contains(t, text, "Results (7):")
	assert.Contains(t, text, "Constraint Violation in UniqueLangConstraintComponent:")
	assert.Contains(t, text, "Focus Node: https://begrippen.example.nl/id/bad")
}

func TestValidateMissingPrefLabel(t *testing.T) {
	g := parse(t, `
:schema a skos:ConceptScheme .
:x a skos:Concept ; skos:definition "Iets." ; skos:inScheme :schema .
`)
	r := Validate(g)
	require.False(t, r.Conforms)
	require.Len(t, r.Results, 1)
	assert.Equal(t, rdfgraph.SKOSPrefLabel, r.Results[0].Path)
	assert.Equal(t, "MinCount", r.Results[0].Constraint)
}

func TestWarningsAsErrors(t *testing.T) {
	g := parse(t, `
:x a skos:Concept ; skos:prefLabel "X"@nl ; skos:definition "Iets." .
`)
	r := Validate(g)
	assert.True(t, r.Conforms)
	assert.Equal(t, 2, r.Count(Warning))
	assert.NoError(t, r.Err(false))

	err := r.Err(true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotConform))
}
