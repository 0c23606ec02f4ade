// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package autolink finds vocabulary terms in free text and rewrites the text
// with hyperlinks to the pages of those terms.
//
// Compile builds an immutable Matcher from the vocabulary index once per run;
// a Linker then rewrites any number of text blocks with it, concurrently if
// needed.
package autolink

import (
	"strings"
	"unicode"

	"github.com/pdiddy/termsite/internal/lingo"
	"github.com/pdiddy/termsite/internal/vocab"
)

// Alias is an alternative label for an indexed concept.
type Alias struct {
	Identity string
	Label    string
	Hidden   bool
}

// Options controls which labels take part in linking. Preferred labels
// always do; aliases only when the matching Include flag is set.
type Options struct {
	Aliases             []Alias
	IncludeAltLabels    bool
	IncludeHiddenLabels bool
}

// Collision records a label registered by more than one concept. The
// later registration wins.
type Collision struct {
	Label    string
	Kept     string
	Replaced string
}

// Report describes what Compile did with the labels it was given.
type Report struct {
	Patterns   int
	Collisions []Collision
	// Labels that produced no usable tokens and are never linked.
	Skipped []string
	// Aliases dropped because a preferred label already owns their text.
	Shadowed []string
}

// pattern is one label as a sequence of folded form sets, one per token.
// gaps[j] is the normalized text between tokens j-1 and j; trail is the
// punctuation that follows the last token, such as the ")" of "Aansluiting (LS)".
type pattern struct {
	label string
	url   string
	steps []map[string]bool
	gaps  []string
	trail string
}

// Matcher finds occurrences of vocabulary labels in text. It is immutable
// after Compile and safe for concurrent use.
type Matcher struct {
	patterns []pattern
	byLabel  map[string]int
	// first-token form → indexes into patterns
	byFirst map[string][]int
	report  Report
}

// Compile builds a Matcher from every entry of idx. Each label token is
// classified by tagger and matched in any of its inflected forms; a nil
// tagger matches literal forms only. Compile never fails: labels without
// usable tokens are left out and listed in the report.
func Compile(idx *vocab.Index, tagger lingo.Tagger, opts Options) *Matcher {
	c := compiler{
		m: &Matcher{
			byLabel: make(map[string]int),
			byFirst: make(map[string][]int),
		},
		tagger:    tagger,
		preferred: make(map[string]bool),
	}

	for _, e := range idx.Entries() {
		c.register(e.Label, vocab.DocPath(e.Reference), false)
	}
	for _, a := range opts.Aliases {
		if a.Hidden && !opts.IncludeHiddenLabels || !a.Hidden && !opts.IncludeAltLabels {
			continue
		}
		e, ok := idx.Lookup(a.Identity)
		if !ok {
			continue
		}
		c.register(strings.TrimSpace(a.Label), vocab.DocPath(e.Reference), true)
	}

	c.m.report.Patterns = len(c.m.patterns)
	for i, p := range c.m.patterns {
		for form := range p.steps[0] {
			c.m.byFirst[form] = append(c.m.byFirst[form], i)
		}
	}
	return c.m
}

type compiler struct {
	m         *Matcher
	tagger    lingo.Tagger
	preferred map[string]bool
}

func (c *compiler) register(label, url string, alias bool) {
	if label == "" {
		return
	}
	if alias && c.preferred[label] {
		c.m.report.Shadowed = append(c.m.report.Shadowed, label)
		return
	}

	var (
		steps []map[string]bool
		gaps  []string
		end   int
	)
	for _, tok := range lingo.Tokenize(label) {
		text := strings.TrimSpace(tok.Text)
		if text == "" {
			continue
		}
		step := make(map[string]bool)
		for _, f := range c.forms(text) {
			step[f] = true
		}
		if len(steps) == 0 {
			gaps = append(gaps, "")
		} else {
			gaps = append(gaps, normalizeGap(label[end:tok.Start]))
		}
		steps = append(steps, step)
		end = tok.End
	}
	if len(steps) == 0 {
		c.m.report.Skipped = append(c.m.report.Skipped, label)
		return
	}
	if !alias {
		c.preferred[label] = true
	}

	p := pattern{
		label: label,
		url:   url,
		steps: steps,
		gaps:  gaps,
		trail: strings.TrimRightFunc(label[end:], unicode.IsSpace),
	}
	if i, dup := c.m.byLabel[label]; dup {
		c.m.report.Collisions = append(c.m.report.Collisions, Collision{
			Label:    label,
			Kept:     url,
			Replaced: c.m.patterns[i].url,
		})
		c.m.patterns[i] = p
		return
	}
	c.m.byLabel[label] = len(c.m.patterns)
	c.m.patterns = append(c.m.patterns, p)
}

func (c *compiler) forms(token string) []string {
	if c.tagger == nil {
		return []string{lingo.Fold(token)}
	}
	return lingo.Forms(c.tagger, token)
}

// URL returns the target registered for label.
func (m *Matcher) URL(label string) (string, bool) {
	i, ok := m.byLabel[label]
	if !ok {
		return "", false
	}
	return m.patterns[i].url, true
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int { return len(m.patterns) }

// Report returns the compile report.
func (m *Matcher) Report() Report { return m.report }

// Span is an occurrence of a label in a text: text[Start:End] matched the
// pattern registered under Label.
type Span struct {
	Label string
	URL   string
	Start int
	End   int
}

// FindAll returns every occurrence of every pattern in text, including
// overlapping ones, ordered by start offset. Consecutive label tokens must be
// separated by the same text as in the label, up to case and the length of
// whitespace runs.
func (m *Matcher) FindAll(text string) []Span {
	tokens := lingo.Tokenize(text)
	folded := make([]string, len(tokens))
	for i, tok := range tokens {
		folded[i] = lingo.Fold(tok.Text)
	}

	var spans []Span
	for i := range tokens {
		for _, pi := range m.byFirst[folded[i]] {
			p := m.patterns[pi]
			end, ok := p.matchAt(text, tokens, folded, i)
			if !ok {
				continue
			}
			spans = append(spans, Span{Label: p.label, URL: p.url, Start: tokens[i].Start, End: end})
		}
	}
	return spans
}

// matchAt reports whether p matches the tokens starting at i and returns the
// end offset of the match.
func (p pattern) matchAt(text string, tokens []lingo.Token, folded []string, i int) (int, bool) {
	if i+len(p.steps) > len(tokens) {
		return 0, false
	}
	for j, step := range p.steps {
		k := i + j
		if !step[folded[k]] {
			return 0, false
		}
		if j > 0 && normalizeGap(text[tokens[k-1].End:tokens[k].Start]) != p.gaps[j] {
			return 0, false
		}
	}
	end := tokens[i+len(p.steps)-1].End
	if p.trail != "" {
		n := end + len(p.trail)
		if n > len(text) || lingo.Fold(text[end:n]) != lingo.Fold(p.trail) {
			return 0, false
		}
		end = n
	}
	return end, true
}

// normalizeGap folds s and collapses every whitespace run to one space, so
// " (" in a label matches " (" or "\n(" in a text.
func normalizeGap(s string) string {
	var b strings.Builder
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteByte(' ')
			}
			space = true
			continue
		}
		space = false
		b.WriteRune(r)
	}
	return lingo.Fold(b.String())
}
