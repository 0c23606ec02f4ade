// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vocab

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify lowercases s, strips accents and joins runs of letters and digits
// with single hyphens: "Eén-fase aansluiting (LS)" → "een-fase-aansluiting-ls".
func Slugify(s string) string {
	// transform chains hold state, so build one per call.
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(strip, s)
	if err != nil {
		plain = s
	}

	var b strings.Builder
	gap := false
	for _, r := range strings.ToLower(plain) {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			gap = true
			continue
		}
		if gap && b.Len() > 0 {
			b.WriteByte('-')
		}
		gap = false
		b.WriteRune(r)
	}
	return b.String()
}
