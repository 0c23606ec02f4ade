// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package autolink

import (
	"regexp"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/termsite/internal/lingo"
	"github.com/pdiddy/termsite/internal/vocab"
	"github.com/pdiddy/termsite/pkg/types"
)

func testIndex(labels map[string]string) *vocab.Index {
	refs := make([]string, 0, len(labels))
	for ref := range labels {
		refs = append(refs, ref)
	}
	sort.Strings(refs)

	var records []types.ConceptRecord
	for _, ref := range refs {
		records = append(records, types.ConceptRecord{
			Identity:  "https://begrippen.example.nl/id/" + ref,
			PrefLabel: labels[ref],
		})
	}
	return vocab.Build(records)
}

func testLinker(t *testing.T, labels map[string]string) *Linker {
	t.Helper()
	m := Compile(testIndex(labels), lingo.NewDutch(), Options{})
	require.Equal(t, len(labels), m.Len())
	return NewLinker(m, nil)
}

var markdownLink = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)

func stripLinks(s string) string {
	return markdownLink.ReplaceAllString(s, "$1")
}

func TestLinkExampleScenario(t *testing.T) {
	l := testLinker(t, map[string]string{"mer53": "Laagtelwerk", "mtr01": "Meter"})

	got := l.Link("Het laagtelwerk is onderdeel van de meter.", "")
	assert.Equal(t, "Het [laagtelwerk](/doc/mer53) is onderdeel van de [meter](/doc/mtr01).", got)
}

func TestLinkNoTermsIsUnchanged(t *testing.T) {
	l := testLinker(t, map[string]string{"mtr01": "Meter"})

	for _, text := range []string{"Niets om te linken.", "", "   ", "Metertje? Nee."} {
		assert.Equal(t, text, l.Link(text, ""))
	}
}

func TestLinkInflection(t *testing.T) {
	l := testLinker(t, map[string]string{"kab01": "Kabel", "tar01": "Tarief"})

	got := l.Link("Twee kabels en een kabel; de tarieven.", "")
	assert.Equal(t, "Twee [kabels](/doc/kab01) en een [kabel](/doc/kab01); de [tarieven](/doc/tar01).", got)
}

func TestLinkAdjectiveInflection(t *testing.T) {
	l := testLinker(t, map[string]string{"slm01": "Slim net"})

	got := l.Link("Een slimme netten-strategie vraagt om een slim net.", "")
	assert.Equal(t, "Een slimme netten-strategie vraagt om een [slim net](/doc/slm01).", got)

	got = l.Link("Slimme netten zijn flexibel.", "")
	assert.Equal(t, "[Slimme netten](/doc/slm01) zijn flexibel.", got)
}

func TestLinkLongestMatchWins(t *testing.T) {
	l := testLinker(t, map[string]string{"sm01": "Smart meter", "mtr01": "Meter"})

	assert.Equal(t, "de [smart meter](/doc/sm01)", l.Link("de smart meter", ""))
	assert.Equal(t, "de [meter](/doc/mtr01) en de [smart meter](/doc/sm01)",
		l.Link("de meter en de smart meter", ""))
}

func TestLinkRequiresWhitespaceBetweenTokens(t *testing.T) {
	l := testLinker(t, map[string]string{"sm01": "Smart meter", "mtr01": "Meter"})

	assert.Equal(t, "de smart, [meter](/doc/mtr01)", l.Link("de smart, meter", ""))
	assert.Equal(t, "de [smart \n meter](/doc/sm01)", l.Link("de smart \n meter", ""))
}

func TestLinkLabelsWithPunctuation(t *testing.T) {
	l := testLinker(t, map[string]string{
		"aan02": "Aansluiting (LS)",
		"gel01": "gas/elektriciteit",
		"aan01": "Aansluiting",
	})

	tests := []struct {
		text string
		want string
	}{
		{"Een Aansluiting (LS) is klein.", "Een [Aansluiting (LS)](/doc/aan02) is klein."},
		{"Een aansluiting\n(ls) is klein.", "Een [aansluiting\n(ls)](/doc/aan02) is klein."},
		{"Voor gas/elektriciteit geldt dit.", "Voor [gas/elektriciteit](/doc/gel01) geldt dit."},
		{"Een aansluiting (LS is open.", "Een [aansluiting](/doc/aan01) (LS is open."},
		{"Voor gas en elektriciteit geldt dit.", "Voor gas en elektriciteit geldt dit."},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := l.Link(tt.text, "")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.text, stripLinks(got))
		})
	}
}

func TestLinkSkipsURLsAndExistingLinks(t *testing.T) {
	l := testLinker(t, map[string]string{"mtr01": "Meter"})

	tests := []struct {
		text string
		want string
	}{
		{"Zie https://example.nl/meter voor meer.", "Zie https://example.nl/meter voor meer."},
		{"Zie [de meter](https://example.nl/meter).", "Zie [de meter](https://example.nl/meter)."},
		{"Zie www.example.nl/meter.", "Zie www.example.nl/meter."},
		{"De meter staat op https://example.nl/meter.", "De [meter](/doc/mtr01) staat op https://example.nl/meter."},
		{"[Meter](/doc/mtr01) en meter", "[Meter](/doc/mtr01) en [meter](/doc/mtr01)"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Link(tt.text, ""))
		})
	}
}

func TestLinkDecomposedAccents(t *testing.T) {
	l := testLinker(t, map[string]string{"aan01": "Eén-fase aansluiting"})

	text := "Een ee\u0301n-fase aansluiting."
	assert.Equal(t, "Een [ee\u0301n-fase aansluiting](/doc/aan01).", l.Link(text, ""))
}

func TestLinkSelfReference(t *testing.T) {
	l := testLinker(t, map[string]string{"mtr01": "Meter", "kab01": "Kabel"})

	text := "Een meter meet. Meters zijn verbonden met een kabel."
	assert.Equal(t, "Een meter meet. Meters zijn verbonden met een [kabel](/doc/kab01).",
		l.Link(text, " meter "))
}

func TestLinkPreservesCaseAndPunctuation(t *testing.T) {
	l := testLinker(t, map[string]string{"mtr01": "Meter"})

	assert.Equal(t, "(De [METER](/doc/mtr01)!)", l.Link("(De METER!)", ""))
}

func TestLinkAbuttingSpans(t *testing.T) {
	l := testLinker(t, map[string]string{"mtr01": "Meter", "kab01": "Kabel"})

	got := l.Link("(meter)(kabel)", "")
	assert.Equal(t, "([meter](/doc/mtr01))([kabel](/doc/kab01))", got)

	got = l.Link("meter/kabel", "")
	assert.Equal(t, "[meter](/doc/mtr01)/[kabel](/doc/kab01)", got)
}

func TestLinkContentPreservation(t *testing.T) {
	l := testLinker(t, map[string]string{
		"mer53": "Laagtelwerk",
		"mtr01": "Meter",
		"sm01":  "Smart meter",
		"kab01": "Kabel",
		"aan01": "Eén-fase aansluiting",
	})
	inputs := []string{
		"Het laagtelwerk is onderdeel van de meter.",
		"Kabels, kabel en KABEL; smart meters en smart  meter.",
		"Een eén-fase aansluiting heeft één kabel.\nNieuwe regel: meter",
		"Unicode: café’s en auto’s naast de meter’s",
		"",
		"meter",
	}
	for _, in := range inputs {
		out := l.Link(in, "Kabel")
		assert.Equal(t, in, stripLinks(out), "input %q", in)
	}
}

func TestAcceptedSpansDoNotOverlap(t *testing.T) {
	l := testLinker(t, map[string]string{"sm01": "Smart meter", "mtr01": "Meter", "sma01": "Smart"})

	text := "smart meter meter smart smart meter meters"
	spans := l.Accepted(text, "")
	require.NotEmpty(t, spans)
	for i := 1; i < len(spans); i++ {
		assert.LessOrEqual(t, spans[i-1].End, spans[i].Start)
	}
	assert.Equal(t, "sm01", vocab.Reference(spans[0].URL))
	assert.Len(t, spans, 5)
}

func TestCompileReport(t *testing.T) {
	idx := vocab.Build([]types.ConceptRecord{
		{Identity: "https://x/id/a1", PrefLabel: "Meter"},
		{Identity: "https://x/id/a2", PrefLabel: "Meter"},
		{Identity: "https://x/id/a3", PrefLabel: "---"},
	})
	m := Compile(idx, lingo.NewDutch(), Options{})

	assert.Equal(t, 1, m.Len())
	url, ok := m.URL("Meter")
	require.True(t, ok)
	assert.Equal(t, "/doc/a2", url, "later registration wins")

	r := m.Report()
	assert.Equal(t, []Collision{{Label: "Meter", Kept: "/doc/a2", Replaced: "/doc/a1"}}, r.Collisions)
	assert.Equal(t, []string{"---"}, r.Skipped)

	_, ok = m.URL("---")
	assert.False(t, ok)
}

func TestCompileAliases(t *testing.T) {
	idx := testIndex(map[string]string{"mtr01": "Meter", "mer53": "Laagtelwerk"})
	aliases := []Alias{
		{Identity: "https://begrippen.example.nl/id/mtr01", Label: "Elektriciteitsmeter"},
		{Identity: "https://begrippen.example.nl/id/mtr01", Label: "kWh-meter", Hidden: true},
		{Identity: "https://begrippen.example.nl/id/mtr01", Label: "Laagtelwerk"},
		{Identity: "https://begrippen.example.nl/id/unknown", Label: "Spook"},
	}
	text := "Elektriciteitsmeter of kWh-meter of spook."

	m := Compile(idx, lingo.NewDutch(), Options{Aliases: aliases})
	assert.Equal(t, text, NewLinker(m, nil).Link(text, ""), "aliases are off by default")

	m = Compile(idx, lingo.NewDutch(), Options{Aliases: aliases, IncludeAltLabels: true})
	assert.Equal(t, "[Elektriciteitsmeter](/doc/mtr01) of kWh-meter of spook.", NewLinker(m, nil).Link(text, ""))
	assert.Equal(t, []string{"Laagtelwerk"}, m.Report().Shadowed)
	url, _ := m.URL("Laagtelwerk")
	assert.Equal(t, "/doc/mer53", url, "aliases never override a preferred label")

	m = Compile(idx, lingo.NewDutch(), Options{Aliases: aliases, IncludeAltLabels: true, IncludeHiddenLabels: true})
	assert.Equal(t, "[Elektriciteitsmeter](/doc/mtr01) of [kWh-meter](/doc/mtr01) of spook.", NewLinker(m, nil).Link(text, ""))
}

func TestCompileWithoutTagger(t *testing.T) {
	m := Compile(testIndex(map[string]string{"kab01": "Kabel"}), nil, Options{})
	l := NewLinker(m, nil)

	assert.Equal(t, "[kabel](/doc/kab01) en kabels", l.Link("kabel en kabels", ""))
}

func TestFindAll(t *testing.T) {
	m := Compile(testIndex(map[string]string{"sm01": "Smart meter", "mtr01": "Meter"}), lingo.NewDutch(), Options{})

	spans := m.FindAll("de smart meter")
	assert.Equal(t, []Span{
		{Label: "Smart meter", URL: "/doc/sm01", Start: 3, End: 14},
		{Label: "Meter", URL: "/doc/mtr01", Start: 9, End: 14},
	}, spans)
	assert.Empty(t, m.FindAll(""))
}

func TestCustomFormatter(t *testing.T) {
	m := Compile(testIndex(map[string]string{"mtr01": "Meter"}), lingo.NewDutch(), Options{})
	l := NewLinker(m, func(text, url string) string {
		return `<a href="/site` + url + `">` + text + `</a>`
	})

	assert.Equal(t, `de <a href="/site/doc/mtr01">meters</a>`, l.Link("de meters", ""))
}

func TestLinkerConcurrentUse(t *testing.T) {
	l := testLinker(t, map[string]string{"mer53": "Laagtelwerk", "mtr01": "Meter"})
	want := l.Link("Het laagtelwerk is onderdeel van de meter.", "")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, l.Link("Het laagtelwerk is onderdeel van de meter.", ""))
		}()
	}
	wg.Wait()
}
