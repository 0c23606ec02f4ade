// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/termsite/internal/rdfgraph"
	"github.com/pdiddy/termsite/internal/vocab"
	"github.com/pdiddy/termsite/pkg/types"
)

// AliasTarget is a concept an alias term refers to.
type AliasTarget struct {
	Term        string
	TargetLabel string
	// TargetPath is the site path used by redirects, TargetURL the
	// base-prefixed link shown on pages.
	TargetPath string
	TargetURL  string
}

// AliasGroup collects every concept that shares an alias slug. A group
// with one target becomes a redirect page, a larger one a disambiguation
// page.
type AliasGroup struct {
	Slug    string
	Term    string
	Targets []AliasTarget
}

// Redirect reports whether the group has a single target.
func (a AliasGroup) Redirect() bool { return len(a.Targets) == 1 }

// AliasOptions selects which labels become alias pages.
type AliasOptions struct {
	IncludeHidden bool
	BaseURL       string
}

// Aliases groups the alternative (and optionally hidden) labels of every
// indexed concept by slug. Groups are sorted by slug, targets keep index
// order, and a concept appears at most once per group.
func Aliases(g *rdfgraph.Graph, idx *vocab.Index, opts AliasOptions) []AliasGroup {
	preds := []string{rdfgraph.SKOSAltLabel}
	if opts.IncludeHidden {
		preds = append(preds, rdfgraph.SKOSHiddenLabel)
	}

	groups := make(map[string]*AliasGroup)
	seen := make(map[string]bool)
	for _, e := range idx.Entries() {
		s := rdfgraph.IRI(e.Identity)
		for _, p := range preds {
			for _, term := range g.Strings(s, p) {
				term = strings.TrimSpace(term)
				slug := vocab.Slugify(term)
				if slug == "" || seen[slug+"\x00"+e.Identity] {
					continue
				}
				seen[slug+"\x00"+e.Identity] = true

				grp, ok := groups[slug]
				if !ok {
					grp = &AliasGroup{Slug: slug, Term: term}
					groups[slug] = grp
				}
				path := vocab.DocPath(e.Reference)
				grp.Targets = append(grp.Targets, AliasTarget{
					Term:        term,
					TargetLabel: e.Label,
					TargetPath:  path,
					TargetURL:   strings.TrimRight(opts.BaseURL, "/") + path,
				})
			}
		}
	}

	out := make([]AliasGroup, 0, len(groups))
	for _, grp := range groups {
		out = append(out, *grp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// NavItems lists every indexed concept and its alternative labels as A-Z
// entries sorted by slug.
func NavItems(g *rdfgraph.Graph, idx *vocab.Index, baseURL string) []types.NavItem {
	var items []types.NavItem
	for _, e := range idx.Entries() {
		url := strings.TrimRight(baseURL, "/") + vocab.DocPath(e.Reference)
		items = append(items, types.NavItem{
			Title:   e.Label,
			URL:     url,
			Type:    types.NavMain,
			SortKey: e.Slug,
		})
		for _, alias := range g.Strings(rdfgraph.IRI(e.Identity), rdfgraph.SKOSAltLabel) {
			alias = strings.TrimSpace(alias)
			if alias == "" {
				continue
			}
			items = append(items, types.NavItem{
				Title:       alias,
				URL:         url,
				Type:        types.NavAlias,
				TargetLabel: e.Label,
				SortKey:     vocab.Slugify(alias),
			})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].SortKey < items[j].SortKey })
	return items
}

// LetterGroup is one letter section of the A-Z list.
type LetterGroup struct {
	Letter string
	Items  []types.NavItem
}

// GroupByLetter groups sorted items by the upper-case first letter of their
// accent-stripped title. Titles that do not start with a letter go under
// "#", which sorts last.
func GroupByLetter(items []types.NavItem) []LetterGroup {
	byLetter := make(map[string][]types.NavItem)
	for _, it := range items {
		letter := "#"
		if first := firstLetter(it.Title); first != 0 {
			letter = string(unicode.ToUpper(first))
		}
		byLetter[letter] = append(byLetter[letter], it)
	}

	letters := make([]string, 0, len(byLetter))
	for l := range byLetter {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool {
		if letters[i] == "#" || letters[j] == "#" {
			return letters[j] == "#" && letters[i] != "#"
		}
		return letters[i] < letters[j]
	})

	out := make([]LetterGroup, 0, len(letters))
	for _, l := range letters {
		out = append(out, LetterGroup{Letter: l, Items: byLetter[l]})
	}
	return out
}

// firstLetter returns the accent-stripped first character of s, or 0 when
// it is not a letter.
func firstLetter(s string) rune {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(s))
	c, _ := utf8.DecodeRuneInString(vocab.Slugify(string(r)))
	if !unicode.IsLetter(c) {
		return 0
	}
	return c
}
