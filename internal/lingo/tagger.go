// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lingo provides the linguistic capabilities term linking relies on:
// tokenization, word-class classification and inflection.
package lingo

// Class is the coarse word class of a token.
type Class int

const (
	Other Class = iota
	Noun
	Adjective
)

func (c Class) String() string {
	switch c {
	case Noun:
		return "noun"
	case Adjective:
		return "adjective"
	}
	return "other"
}

// Tagger classifies tokens and produces their acceptable surface forms.
// Implementations must be safe for concurrent use.
type Tagger interface {
	// Classify returns the word class of token.
	Classify(token string) Class

	// Inflect returns the closed set of surface forms token may appear in
	// for the given class. The literal token is always included.
	Inflect(token string, class Class) []string
}

// Forms classifies token and returns its surface forms, folded and
// de-duplicated, literal first.
func Forms(t Tagger, token string) []string {
	class := t.Classify(token)
	raw := t.Inflect(token, class)

	seen := make(map[string]bool, len(raw)+1)
	out := make([]string, 0, len(raw)+1)
	for _, f := range append([]string{token}, raw...) {
		f = Fold(f)
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}
