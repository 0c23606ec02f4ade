// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lingo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	text := "Het eén-fase net (auto's), 230V’ meter"
	tokens := Tokenize(text)

	var words []string
	for _, tok := range tokens {
		assert.Equal(t, tok.Text, text[tok.Start:tok.End], "offsets must slice the token")
		words = append(words, tok.Text)
	}
	assert.Equal(t, []string{"Het", "eén-fase", "net", "auto's", "230V", "meter"}, words)
}

func TestTokenizeEdges(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize(" -- ... "))

	tokens := Tokenize("kabel-")
	require.Len(t, tokens, 1)
	assert.Equal(t, "kabel", tokens[0].Text)
}

func TestFold(t *testing.T) {
	assert.Equal(t, "laagtelwerk", Fold("LaagTelwerk"))
	assert.Equal(t, "auto's", Fold("Auto’s"))
	assert.Equal(t, Fold("Eén"), Fold("eén"))
	assert.Equal(t, Fold("Eén"), Fold("Ee\u0301n"), "decomposed accents fold like precomposed ones")
}

func TestDutchClassify(t *testing.T) {
	d := NewDutch("duurzaam")
	tests := []struct {
		token string
		want  Class
	}{
		{"kabel", Noun},
		{"Meter", Noun},
		{"tarief", Noun},
		{"aansluiting", Noun},
		{"slim", Adjective},
		{"slimme", Adjective},
		{"Hoog", Adjective},
		{"elektrisch", Adjective},
		{"betaalbaar", Adjective},
		{"duurzaam", Adjective},
		{"de", Other},
		{"van", Other},
		{"230V", Other},
		{"x", Other},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Classify(tt.token))
		})
	}
}

func TestPluralForms(t *testing.T) {
	tests := []struct {
		noun string
		want []string
	}{
		{"kabel", []string{"kabels"}},
		{"meter", []string{"meters"}},
		{"telwerk", []string{"telwerken"}},
		{"laagtelwerk", []string{"laagtelwerken"}},
		{"net", []string{"netten"}},
		{"hoofdnet", []string{"hoofdnetten"}},
		{"tarief", []string{"tarieven"}},
		{"huis", []string{"huizen"}},
		{"kaas", []string{"kazen"}},
		{"kanaal", []string{"kanalen"}},
		{"prijs", []string{"prijzen"}},
		{"partij", []string{"partijen"}},
		{"aansluiting", []string{"aansluitingen"}},
		{"zekerheid", []string{"zekerheden"}},
		{"energie", []string{"energies", "energieën"}},
		{"ziekte", []string{"ziektes", "ziekten"}},
		{"auto", []string{"auto's"}},
		{"niveau", []string{"niveaus"}},
		{"motor", []string{"motors", "motoren"}},
		{"station", []string{"stations"}},
		{"werf", []string{"werven"}},
	}
	for _, tt := range tests {
		t.Run(tt.noun, func(t *testing.T) {
			assert.Equal(t, tt.want, pluralForms(tt.noun))
		})
	}
}

func TestAttributiveForm(t *testing.T) {
	tests := []struct {
		adj  string
		want string
	}{
		{"groot", "grote"},
		{"hoog", "hoge"},
		{"slim", "slimme"},
		{"snel", "snelle"},
		{"lief", "lieve"},
		{"grijs", "grijze"},
		{"vrij", "vrije"},
		{"nieuw", "nieuwe"},
		{"groen", "groene"},
		{"elektrisch", "elektrische"},
		{"betaalbaar", "betaalbare"},
		{"variabel", "variabele"},
		{"digitaal", "digitale"},
		{"primair", "primaire"},
		{"open", "open"},
		{"netto", "netto"},
	}
	for _, tt := range tests {
		t.Run(tt.adj, func(t *testing.T) {
			assert.Equal(t, tt.want, attributiveForm(tt.adj))
		})
	}
}

func TestForms(t *testing.T) {
	d := NewDutch()

	assert.Equal(t, []string{"kabel", "kabels"}, Forms(d, "Kabel"))
	assert.Equal(t, []string{"slim", "slimme"}, Forms(d, "slim"))
	assert.Equal(t, []string{"slimme", "slim"}, Forms(d, "Slimme"))
	assert.Equal(t, []string{"van"}, Forms(d, "van"))
	assert.Equal(t, []string{"open"}, Forms(d, "open"))
}

func TestClassString(t *testing.T) {
	assert.Equal(t, "noun", Noun.String())
	assert.Equal(t, "adjective", Adjective.String())
	assert.Equal(t, "other", Other.String())
}
