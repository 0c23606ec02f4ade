// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rdfgraph

// Namespace IRIs of the vocabularies the generator reads.
const (
	NSRDF     = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRDFS    = "http://www.w3.org/2000/01/rdf-schema#"
	NSSKOS    = "http://www.w3.org/2004/02/skos/core#"
	NSDCTerms = "http://purl.org/dc/terms/"
	NSFOAF    = "http://xmlns.com/foaf/0.1/"
	NSADMS    = "http://www.w3.org/ns/adms#"
	NSISOThes = "http://purl.org/iso25964/skos-thes#"
	NSXSD     = "http://www.w3.org/2001/XMLSchema#"
)

// RDF and RDFS.
const (
	RDFType       = NSRDF + "type"
	RDFSLabel     = NSRDFS + "label"
	RDFSComment   = NSRDFS + "comment"
	XSDString     = NSXSD + "string"
	RDFLangString = NSRDF + "langString"
)

// SKOS classes and properties.
const (
	SKOSConcept       = NSSKOS + "Concept"
	SKOSConceptScheme = NSSKOS + "ConceptScheme"
	SKOSPrefLabel     = NSSKOS + "prefLabel"
	SKOSAltLabel      = NSSKOS + "altLabel"
	SKOSHiddenLabel   = NSSKOS + "hiddenLabel"
	SKOSNotation      = NSSKOS + "notation"
	SKOSDefinition    = NSSKOS + "definition"
	SKOSScopeNote     = NSSKOS + "scopeNote"
	SKOSExample       = NSSKOS + "example"
	SKOSEditorialNote = NSSKOS + "editorialNote"
	SKOSChangeNote    = NSSKOS + "changeNote"
	SKOSHistoryNote   = NSSKOS + "historyNote"
	SKOSBroader       = NSSKOS + "broader"
	SKOSNarrower      = NSSKOS + "narrower"
	SKOSRelated       = NSSKOS + "related"
	SKOSExactMatch    = NSSKOS + "exactMatch"
	SKOSCloseMatch    = NSSKOS + "closeMatch"
	SKOSBroadMatch    = NSSKOS + "broadMatch"
	SKOSNarrowMatch   = NSSKOS + "narrowMatch"
	SKOSRelatedMatch  = NSSKOS + "relatedMatch"
	SKOSInScheme      = NSSKOS + "inScheme"
	SKOSTopConceptOf  = NSSKOS + "topConceptOf"
)

// ISO 25964 thesaurus relations.
const (
	ISOBroaderPartitive   = NSISOThes + "broaderPartitive"
	ISONarrowerPartitive  = NSISOThes + "narrowerPartitive"
	ISOBroaderGeneric     = NSISOThes + "broaderGeneric"
	ISONarrowerGeneric    = NSISOThes + "narrowerGeneric"
	ISOBroaderInstantial  = NSISOThes + "broaderInstantial"
	ISONarrowerInstantial = NSISOThes + "narrowerInstantial"
)

// Dublin Core, FOAF and ADMS.
const (
	DCTTitle   = NSDCTerms + "title"
	DCTSource  = NSDCTerms + "source"
	FOAFPage   = NSFOAF + "page"
	ADMSStatus = NSADMS + "status"
)
