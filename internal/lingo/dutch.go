// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lingo

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Closed-class words never carry a concept on their own.
var dutchStopwords = []string{
	"de", "het", "een", "der", "des", "den",
	"van", "voor", "in", "op", "aan", "met", "door", "bij", "naar", "uit",
	"over", "onder", "tussen", "tegen", "zonder", "tot", "om", "per", "via",
	"binnen", "buiten", "na", "sinds", "volgens", "vanaf", "tijdens",
	"en", "of", "maar", "als", "dan", "dat", "die", "dit", "deze", "wat", "wie",
	"niet", "geen", "er", "is", "zijn", "was", "wordt", "worden", "kan", "te",
	"ook", "nog", "al", "wel", "hij", "zij", "ze", "wij", "we", "u", "ik", "je",
	"hun", "haar", "ons", "onze", "zich", "waar", "waarbij", "waarin",
	"twee", "drie", "vier", "vijf",
	"the", "of", "and", "a", "an", "to", "for", "on", "at", "by", "with",
}

var dutchAdjectives = []string{
	"hoog", "laag", "groot", "klein", "slim", "nieuw", "oud", "vast", "vrij",
	"open", "kort", "lang", "zwaar", "licht", "warm", "koud", "snel", "dubbel",
	"enkel", "vol", "leeg", "breed", "goed", "sterk", "zwak", "extern", "intern",
	"primair", "secundair", "digitaal", "analoog", "variabel", "flexibel",
	"stabiel", "mobiel", "groen", "grijs", "publiek", "privaat", "decentraal",
	"centraal", "lokaal", "regionaal", "nationaal", "nominaal", "maximaal",
	"minimaal", "normaal", "netto", "bruto", "actief", "passief", "lief",
	"elektrisch", "fysiek", "technisch", "tijdelijk", "gemiddeld",
}

// Suffixes that mark a derived adjective.
var dutchAdjectiveSuffixes = []string{
	"isch", "lijk", "ig", "baar", "loos", "zaam", "tief", "sief",
}

// Dutch is a rule-based Tagger for Dutch vocabulary labels. It treats
// closed-class words as Other, known and suffix-derived adjectives as
// Adjective, and every other word as Noun. A Dutch is immutable after
// construction.
type Dutch struct {
	stopwords  map[string]bool
	adjectives map[string]bool
	// attributive form → base form, so "slimme" classifies like "slim".
	attributive map[string]string
}

// NewDutch returns a Dutch tagger. Extra adjectives extend the built-in
// lexicon.
func NewDutch(extraAdjectives ...string) *Dutch {
	d := &Dutch{
		stopwords:   make(map[string]bool, len(dutchStopwords)),
		adjectives:  make(map[string]bool, len(dutchAdjectives)+len(extraAdjectives)),
		attributive: make(map[string]string, len(dutchAdjectives)+len(extraAdjectives)),
	}
	for _, w := range dutchStopwords {
		d.stopwords[w] = true
	}
	for _, w := range append(append([]string(nil), dutchAdjectives...), extraAdjectives...) {
		w = Fold(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		d.adjectives[w] = true
		if a := attributiveForm(w); a != w {
			d.attributive[a] = w
		}
	}
	return d
}

// Classify implements Tagger.
func (d *Dutch) Classify(token string) Class {
	w := Fold(strings.TrimSpace(token))
	if utf8.RuneCountInString(w) <= 1 || d.stopwords[w] || hasDigit(w) {
		return Other
	}
	if d.adjectives[w] {
		return Adjective
	}
	if _, ok := d.attributive[w]; ok {
		return Adjective
	}
	for _, suf := range dutchAdjectiveSuffixes {
		if strings.HasSuffix(w, suf) && len(w) > len(suf)+1 {
			return Adjective
		}
	}
	return Noun
}

// Inflect implements Tagger.
func (d *Dutch) Inflect(token string, class Class) []string {
	w := Fold(strings.TrimSpace(token))
	forms := []string{token}
	if w == "" {
		return forms
	}
	switch class {
	case Noun:
		forms = append(forms, pluralForms(w)...)
	case Adjective:
		if base, ok := d.attributive[w]; ok {
			forms = append(forms, base)
		} else {
			forms = append(forms, attributiveForm(w))
		}
	}
	return forms
}

// pluralForms returns the plural spellings of a Dutch noun.
func pluralForms(w string) []string {
	r := []rune(w)
	n := len(r)
	last := r[n-1]

	switch {
	case strings.HasSuffix(w, "heid"):
		return []string{strings.TrimSuffix(w, "heid") + "heden"}
	case strings.HasSuffix(w, "ie"):
		return []string{w + "s", w + "ën"}
	case strings.HasSuffix(w, "ee"):
		return []string{w + "ën"}
	case last == 'e':
		return []string{w + "s", w + "n"}
	case isVowel(last):
		if n > 1 && isVowel(r[n-2]) {
			// niveau, menu-like endings
			return []string{w + "s"}
		}
		if last == 'é' || last == 'è' {
			return []string{w + "s"}
		}
		return []string{w + "'s"}
	case strings.HasSuffix(w, "or"):
		return []string{w + "s", w + "en"}
	case strings.HasSuffix(w, "ion"):
		return []string{w + "s"}
	case syllables(r) > 1 && hasAnySuffix(w, "el", "em", "en", "er", "je", "um"):
		return []string{w + "s"}
	}
	return []string{spellStem(r, true) + "en"}
}

// attributiveForm returns the inflected (attributive) spelling of a Dutch
// adjective: "groot" → "grote", "slim" → "slimme". Adjectives that end in a
// vowel, and multi-syllable adjectives in -en, do not inflect.
func attributiveForm(w string) string {
	r := []rune(w)
	if len(r) == 0 || isVowel(r[len(r)-1]) {
		return w
	}
	if strings.HasSuffix(w, "en") && syllables(r) > 1 {
		return w
	}
	return spellStem(r, syllables(r) == 1) + "e"
}

// spellStem applies the spelling changes Dutch makes when a word gains a
// syllable starting with a vowel: an open syllable loses a doubled vowel
// (boom → bom-), a short vowel doubles the following consonant (net → nett-),
// and f/s after a long vowel become v/z (tarief → tariev-).
func spellStem(r []rune, allowDoubling bool) string {
	n := len(r)
	if n < 2 {
		return string(r)
	}
	last := r[n-1]
	if isVowel(last) {
		return string(r)
	}
	prev := r[n-2]
	if !isVowel(prev) && prev != 'j' {
		// Consonant cluster: only f after l/r voices (werf → werv-).
		if last == 'f' && (prev == 'l' || prev == 'r') {
			return string(r[:n-1]) + "v"
		}
		return string(r)
	}

	stem := append([]rune(nil), r[:n-1]...)
	long := false
	switch {
	case prev == 'j' && n >= 3 && r[n-3] == 'i':
		long = true
	case prev == 'j':
		// j after a vowel acts as a glide (draai-like), nothing to change.
		return string(r)
	case n >= 3 && isVowel(r[n-3]):
		long = true
		if r[n-3] == prev && (prev == 'a' || prev == 'e' || prev == 'o' || prev == 'u') {
			// double vowel in an open syllable is written single
			stem = stem[:len(stem)-1]
		}
	}

	switch {
	case long && last == 'f':
		last = 'v'
	case long && last == 's':
		last = 'z'
	case !long && allowDoubling && isDoublable(last) && !hasAnySuffix(string(r), "ig", "ik"):
		stem = append(stem, last)
	}
	return string(append(stem, last))
}

func syllables(r []rune) int {
	count := 0
	inVowel := false
	for _, c := range r {
		v := isVowel(c)
		if v && !inVowel {
			count++
		}
		inVowel = v
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y', 'é', 'è', 'ë', 'ï', 'ö', 'ü', 'á', 'ó':
		return true
	}
	return false
}

func isDoublable(r rune) bool {
	return strings.ContainsRune("bdfgklmnprst", r)
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
