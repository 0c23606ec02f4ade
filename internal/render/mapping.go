// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "github.com/pdiddy/termsite/internal/rdfgraph"

// FieldKind says how a field's values are read from the graph.
type FieldKind int

const (
	// Single is one literal value.
	Single FieldKind = iota
	// List is every literal value.
	List
	// Internal links to other concepts of the vocabulary.
	Internal
	// External links to resources outside the vocabulary.
	External
)

// Field maps one RDF property onto a named page field.
type Field struct {
	Key       string
	Label     string
	Predicate string
	Kind      FieldKind
	// Linkable fields are passed through the auto-linker.
	Linkable bool
	// Detail fields are listed in the definition list under the body.
	Detail bool
}

// Mapping is the NL-SBB field table in page order.
var Mapping = []Field{
	{Key: "code", Label: "Code", Predicate: rdfgraph.SKOSNotation, Kind: Single},
	{Key: "definitie", Label: "Definitie", Predicate: rdfgraph.SKOSDefinition, Kind: Single, Linkable: true},
	{Key: "uitleg", Label: "Uitleg", Predicate: rdfgraph.RDFSComment, Kind: List, Linkable: true},
	{Key: "toelichting", Label: "Toelichting", Predicate: rdfgraph.SKOSScopeNote, Kind: List, Linkable: true},
	{Key: "voorbeeld", Label: "Voorbeeld", Predicate: rdfgraph.SKOSExample, Kind: List, Linkable: true},
	{Key: "alternatieve_term", Label: "Alternatieve term", Predicate: rdfgraph.SKOSAltLabel, Kind: List},
	{Key: "zoekterm", Label: "Zoekterm", Predicate: rdfgraph.SKOSHiddenLabel, Kind: List},

	{Key: "heeft_bovenliggend_begrip", Label: "Heeft bovenliggend begrip", Predicate: rdfgraph.SKOSBroader, Kind: Internal, Detail: true},
	{Key: "heeft_onderliggend_begrip", Label: "Heeft onderliggend begrip", Predicate: rdfgraph.SKOSNarrower, Kind: Internal, Detail: true},
	{Key: "is_gerelateerd_aan", Label: "Is gerelateerd aan", Predicate: rdfgraph.SKOSRelated, Kind: Internal, Detail: true},
	{Key: "is_onderdeel_van", Label: "Is onderdeel van", Predicate: rdfgraph.ISOBroaderPartitive, Kind: Internal, Detail: true},
	{Key: "omvat", Label: "Omvat", Predicate: rdfgraph.ISONarrowerPartitive, Kind: Internal, Detail: true},
	{Key: "is_specialisatie_van", Label: "Is specialisatie van", Predicate: rdfgraph.ISOBroaderGeneric, Kind: Internal, Detail: true},
	{Key: "is_generalisatie_van", Label: "Is generalisatie van", Predicate: rdfgraph.ISONarrowerGeneric, Kind: Internal, Detail: true},
	{Key: "is_exemplaar_van", Label: "Is exemplaar van", Predicate: rdfgraph.ISOBroaderInstantial, Kind: Internal, Detail: true},
	{Key: "is_categorie_van", Label: "Is categorie van", Predicate: rdfgraph.ISONarrowerInstantial, Kind: Internal, Detail: true},

	{Key: "is_exact_overeenkomstig", Label: "Is exact overeenkomstig", Predicate: rdfgraph.SKOSExactMatch, Kind: External, Detail: true},
	{Key: "is_vrijwel_overeenkomstig", Label: "Is vrijwel overeenkomstig", Predicate: rdfgraph.SKOSCloseMatch, Kind: External, Detail: true},
	{Key: "heeft_overeenkomstig_bovenliggend", Label: "Heeft overeenkomstig bovenliggend", Predicate: rdfgraph.SKOSBroadMatch, Kind: External, Detail: true},
	{Key: "heeft_overeenkomstig_onderliggend", Label: "Heeft overeenkomstig onderliggend", Predicate: rdfgraph.SKOSNarrowMatch, Kind: External, Detail: true},
	{Key: "is_overeenkomstig_verwant", Label: "Is overeenkomstig verwant", Predicate: rdfgraph.SKOSRelatedMatch, Kind: External, Detail: true},
	{Key: "heeft_bron", Label: "Heeft bron", Predicate: rdfgraph.DCTSource, Kind: External, Detail: true},

	{Key: "redactionele_notitie", Label: "Redactionele notitie", Predicate: rdfgraph.SKOSEditorialNote, Kind: List, Detail: true},
	{Key: "wijzigingsnotitie", Label: "Wijzigingsnotitie", Predicate: rdfgraph.SKOSChangeNote, Kind: List, Detail: true},
	{Key: "historie_notitie", Label: "Historie notitie", Predicate: rdfgraph.SKOSHistoryNote, Kind: List, Detail: true},
}
