// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lingo

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Token is a word in a text with its byte offsets: text[Start:End] == Text.
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokenize splits text into words. A word is a run of letters and digits;
// a hyphen or apostrophe between two word characters stays inside the word,
// so "eén-fase" and "auto's" are single tokens.
func Tokenize(text string) []Token {
	var tokens []Token
	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && isJoiner(r) {
			next, _ := utf8.DecodeRuneInString(text[i+utf8.RuneLen(r):])
			if isWordRune(next) {
				continue
			}
		}
		if start >= 0 {
			tokens = append(tokens, Token{Text: text[start:i], Start: start, End: i})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: text[start:], Start: start, End: len(text)})
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}

func isJoiner(r rune) bool {
	switch r {
	case '-', '\'', '’', '‐', '‑':
		return true
	}
	return false
}

// Fold returns the case-folded form of s used for case-insensitive
// comparison. s is NFC-normalized first, so decomposed and precomposed
// accents compare equal; curly apostrophes are normalized to '.
func Fold(s string) string {
	return strings.ReplaceAll(cases.Fold().String(norm.NFC.String(s)), "’", "'")
}
