// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConceptRecord is a concept as handed over by the vocabulary loader: its
// identity and an optional preferred label.
type ConceptRecord struct {
	// Identity is the concept URI. Identities are unique within a run.
	Identity string `json:"identity" yaml:"identity"`

	// PrefLabel is the preferred label; empty when the source has none.
	PrefLabel string `json:"pref_label,omitempty" yaml:"pref_label,omitempty"`
}

// IndexEntry is the canonical label, reference and slug of one concept.
type IndexEntry struct {
	// Identity is the concept URI the entry was built from.
	Identity string `json:"identity" yaml:"identity"`

	// Reference is the last path or fragment segment of the identity.
	Reference string `json:"reference" yaml:"reference"`

	// Label is the preferred label, or Reference when the concept has none.
	Label string `json:"label" yaml:"label"`

	// Slug is the URL-safe normalized label.
	Slug string `json:"slug" yaml:"slug"`
}

// Link is a labelled hyperlink shown in relation fields.
type Link struct {
	URL   string `json:"url" yaml:"url"`
	Label string `json:"label" yaml:"label"`
}

// NavItemType distinguishes main entries from alias entries in the A-Z list.
type NavItemType string

const (
	NavMain  NavItemType = "main"
	NavAlias NavItemType = "alias"
)

// NavItem is one row of the A-Z list and of alphabetical-nav.json.
type NavItem struct {
	Title       string      `json:"title" yaml:"title"`
	URL         string      `json:"url" yaml:"url"`
	Type        NavItemType `json:"type" yaml:"type"`
	TargetLabel string      `json:"target_label,omitempty" yaml:"target_label,omitempty"`
	SortKey     string      `json:"-" yaml:"-"`
}
