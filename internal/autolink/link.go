// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package autolink

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/termsite/internal/lingo"
)

// LinkFormatter wraps matched text in hyperlink markup for url.
type LinkFormatter func(text, url string) string

// Markdown formats a link as [text](url).
func Markdown(text, url string) string {
	return "[" + text + "](" + url + ")"
}

// Text that already is, or belongs to, a hyperlink: Markdown links and
// images, and bare URLs up to the next whitespace.
var protectedPattern = regexp.MustCompile(`!?\[[^\]]*\]\([^)]*\)|[A-Za-z][A-Za-z0-9+.\-]*://\S+|\bwww\.\S+`)

// protected returns the byte ranges of text that must not receive links.
func protected(text string) [][]int {
	if !strings.Contains(text, "](") && !strings.Contains(text, "://") && !strings.Contains(text, "www.") {
		return nil
	}
	return protectedPattern.FindAllStringIndex(text, -1)
}

func overlapsAny(ranges [][]int, start, end int) bool {
	for _, r := range ranges {
		if start < r[1] && r[0] < end {
			return true
		}
	}
	return false
}

// Linker rewrites text blocks with links to vocabulary pages.
type Linker struct {
	matcher *Matcher
	format  LinkFormatter
}

// NewLinker returns a Linker over m. A nil format selects Markdown.
func NewLinker(m *Matcher, format LinkFormatter) *Linker {
	if format == nil {
		format = Markdown
	}
	return &Linker{matcher: m, format: format}
}

// Accepted returns the spans of text that Link turns into links: no two
// overlap, the longest match at a position wins, and occurrences of
// selfLabel are left alone. Terms inside URLs and existing Markdown links
// are never linked.
func (l *Linker) Accepted(text, selfLabel string) []Span {
	if text == "" || l.matcher == nil {
		return nil
	}
	candidates := l.matcher.FindAll(text)
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if la, lb := a.End-a.Start, b.End-b.Start; la != lb {
			return la > lb
		}
		return a.Label < b.Label
	})

	self := lingo.Fold(strings.TrimSpace(selfLabel))
	skip := protected(text)
	var accepted []Span
	cursor := 0
	for _, c := range candidates {
		if c.Start < cursor || c.End <= c.Start {
			continue
		}
		matched := strings.TrimSpace(text[c.Start:c.End])
		if matched == "" {
			continue
		}
		if self != "" && (lingo.Fold(matched) == self || lingo.Fold(c.Label) == self) {
			continue
		}
		if overlapsAny(skip, c.Start, c.End) {
			continue
		}
		accepted = append(accepted, c)
		cursor = c.End
	}
	return accepted
}

// Link returns text with every accepted span wrapped in a link. Text without
// accepted spans is returned unchanged; apart from the inserted markup the
// output always equals the input.
func (l *Linker) Link(text, selfLabel string) string {
	spans := l.Accepted(text, selfLabel)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(spans)*32)
	cursor := 0
	for _, s := range spans {
		b.WriteString(text[cursor:s.Start])
		b.WriteString(l.format(text[s.Start:s.End], s.URL))
		cursor = s.End
	}
	b.WriteString(text[cursor:])
	return b.String()
}
