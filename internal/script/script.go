// Package script classifies text by writing system.
//
// Each supported script is identified by its ISO 15924 code and backed by a
// table of inclusive Unicode code-point ranges. Classification counts, for
// every rune of the raw (pre-normalization) input, which script tables it
// belongs to. A rune may belong to several scripts: the CJK ideograph ranges
// are counted under Hant, Hans, Jpan and Kore alike. That overlap is
// intentional — it widens the candidate language set, never narrows it.
package script

import (
	"sort"
	"unicode"
)

// Widths for n-gram profiling. Logographic and syllabic scripts carry much
// more information per character, so their models use a narrower window.
const (
	TrigramWidth = 3
	BigramWidth  = 2
)

// DefaultTieBand is the relative margin within which a trailing script is
// kept as a candidate alongside the top-ranked one.
const DefaultTieBand = 0.85

// Info describes one supported writing system.
type Info struct {
	Code  string // ISO 15924 four-letter code
	Name  string // verbose name
	Width int    // n-gram window width used by this script's models
	Table *unicode.RangeTable
}

// All lists every supported script, most widely used first. The order is the
// deterministic tie-break for equal match counts.
var All = []Info{
	{Code: "Latn", Name: "Latin", Width: TrigramWidth, Table: latinTable},
	{Code: "Hant", Name: "Traditional", Width: BigramWidth, Table: cjkTable},
	{Code: "Hans", Name: "Simplified", Width: BigramWidth, Table: cjkTable},
	{Code: "Arab", Name: "Arabic", Width: TrigramWidth, Table: arabicTable},
	{Code: "Deva", Name: "Devanagari", Width: TrigramWidth, Table: devanagariTable},
	{Code: "Cyrl", Name: "Cyrillic", Width: TrigramWidth, Table: cyrillicTable},
	{Code: "Beng", Name: "Bangla", Width: TrigramWidth, Table: bengaliTable},
	{Code: "Jpan", Name: "Japanese", Width: BigramWidth, Table: japaneseTable},
	{Code: "Hrkt", Name: "Japanese syllabaries", Width: BigramWidth, Table: hrktTable},
	{Code: "Hira", Name: "Hiragana", Width: BigramWidth, Table: hiraganaTable},
	{Code: "Kana", Name: "Katakana", Width: BigramWidth, Table: kanaOnlyTable},
	{Code: "Kore", Name: "Korean", Width: BigramWidth, Table: koreanTable},
	{Code: "Hang", Name: "Hangul", Width: BigramWidth, Table: hangulTable},
	{Code: "Ahom", Name: "Ahom", Width: TrigramWidth, Table: ahomTable},
	{Code: "Bhks", Name: "Bhaiksuki", Width: TrigramWidth, Table: bhaiksukiTable},
	{Code: "Brah", Name: "Brahmi", Width: TrigramWidth, Table: brahmiTable},
	{Code: "Cakm", Name: "Chakma", Width: TrigramWidth, Table: chakmaTable},
	{Code: "Diak", Name: "Dives Akuru", Width: TrigramWidth, Table: divesAkuruTable},
	{Code: "Dogr", Name: "Dogra", Width: TrigramWidth, Table: dograTable},
	{Code: "Gran", Name: "Grantha", Width: TrigramWidth, Table: granthaTable},
	{Code: "Gujr", Name: "Gujarati", Width: TrigramWidth, Table: gujaratiTable},
	{Code: "Gong", Name: "Gunjala Gondi", Width: TrigramWidth, Table: gunjalaGondiTable},
	{Code: "Guru", Name: "Gurmukhi", Width: TrigramWidth, Table: gurmukhiTable},
	{Code: "Gukh", Name: "Gurung Khema", Width: TrigramWidth, Table: gurungKhemaTable},
	{Code: "Kthi", Name: "Kaithi", Width: TrigramWidth, Table: kaithiTable},
	{Code: "Knda", Name: "Kannada", Width: TrigramWidth, Table: kannadaTable},
	{Code: "Khar", Name: "Kharoshthi", Width: TrigramWidth, Table: kharoshthiTable},
	{Code: "Khoj", Name: "Khojki", Width: TrigramWidth, Table: khojkiTable},
	{Code: "Krai", Name: "Kirat Rai", Width: TrigramWidth, Table: kiratRaiTable},
	{Code: "Sind", Name: "Khudawadi", Width: TrigramWidth, Table: khudawadiTable},
	{Code: "Lepc", Name: "Lepcha", Width: TrigramWidth, Table: lepchaTable},
	{Code: "Limb", Name: "Limbu", Width: TrigramWidth, Table: limbuTable},
	{Code: "Mahj", Name: "Mahajani", Width: TrigramWidth, Table: mahajaniTable},
	{Code: "Mlym", Name: "Malayalam", Width: TrigramWidth, Table: malayalamTable},
	{Code: "Gonm", Name: "Masaram Gondi", Width: TrigramWidth, Table: masaramGondiTable},
	{Code: "Mtei", Name: "Meitei Mayek", Width: TrigramWidth, Table: meeteiMayekTable},
	{Code: "Modi", Name: "Modi", Width: TrigramWidth, Table: modiTable},
	{Code: "Mroo", Name: "Mro", Width: TrigramWidth, Table: mroTable},
	{Code: "Mult", Name: "Multani", Width: TrigramWidth, Table: multaniTable},
	{Code: "Nagm", Name: "Nag Mundari", Width: TrigramWidth, Table: nagMundariTable},
	{Code: "Nand", Name: "Nandinagari", Width: TrigramWidth, Table: nandinagariTable},
	{Code: "Newa", Name: "Newa", Width: TrigramWidth, Table: newaTable},
	{Code: "Olck", Name: "Ol Chiki", Width: TrigramWidth, Table: olChikiTable},
	{Code: "Onao", Name: "Ol Onal", Width: TrigramWidth, Table: olOnalTable},
	{Code: "Orya", Name: "Odia", Width: TrigramWidth, Table: oriyaTable},
	{Code: "Saur", Name: "Saurashtra", Width: TrigramWidth, Table: saurashtraTable},
	{Code: "Shrd", Name: "Sharada", Width: TrigramWidth, Table: sharadaTable},
	{Code: "Sidd", Name: "Siddham", Width: TrigramWidth, Table: siddhamTable},
	{Code: "Sinh", Name: "Sinhala", Width: TrigramWidth, Table: sinhalaTable},
	{Code: "Sora", Name: "Sora Sompeng", Width: TrigramWidth, Table: soraSompengTable},
	{Code: "Sunu", Name: "Sunuwar", Width: TrigramWidth, Table: sunuwarTable},
	{Code: "Sylo", Name: "Syloti Nagri", Width: TrigramWidth, Table: sylotiNagriTable},
	{Code: "Takr", Name: "Takri", Width: TrigramWidth, Table: takriTable},
	{Code: "Taml", Name: "Tamil", Width: TrigramWidth, Table: tamilTable},
	{Code: "Telu", Name: "Telugu", Width: TrigramWidth, Table: teluguTable},
	{Code: "Thaa", Name: "Thaana", Width: TrigramWidth, Table: thaanaTable},
	{Code: "Tirh", Name: "Tirhuta", Width: TrigramWidth, Table: tirhutaTable},
	{Code: "Toto", Name: "Toto", Width: TrigramWidth, Table: totoTable},
	{Code: "Tutg", Name: "Tulu-Tigalari", Width: TrigramWidth, Table: tuluTigalariTable},
	{Code: "Wcho", Name: "Wancho", Width: TrigramWidth, Table: wanchoTable},
	{Code: "Wara", Name: "Varang Kshiti", Width: TrigramWidth, Table: warangCitiTable},
}

var byCode = func() map[string]*Info {
	m := make(map[string]*Info, len(All))
	for i := range All {
		m[All[i].Code] = &All[i]
	}
	return m
}()

// Lookup returns the Info for an ISO 15924 code.
func Lookup(code string) (Info, bool) {
	info, ok := byCode[code]
	if !ok {
		return Info{}, false
	}
	return *info, true
}

// Width returns the n-gram window width for a script code, defaulting to
// the trigram width for unknown codes.
func Width(code string) int {
	if info, ok := byCode[code]; ok {
		return info.Width
	}
	return TrigramWidth
}

// Match pairs a script code with the number of runes of the input that
// belong to it.
type Match struct {
	Code  string
	Count int
}

// Detect counts script membership for every rune of raw text and returns
// the matched scripts ordered by descending count. Scripts with zero matches
// are omitted; an input with no classifiable characters yields an empty
// slice. Equal counts keep the registry order, so the result is
// deterministic.
func Detect(text string) []Match {
	counts := make([]int, len(All))
	for _, r := range text {
		for i := range All {
			if unicode.Is(All[i].Table, r) {
				counts[i]++
			}
		}
	}

	matches := make([]Match, 0, 4)
	for i := range All {
		if counts[i] > 0 {
			matches = append(matches, Match{Code: All[i].Code, Count: counts[i]})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Count > matches[j].Count
	})
	return matches
}

// Candidates reduces ordered matches to the candidate script codes: the top
// script plus every script whose count is within tieBand of the top count.
// A tieBand outside (0, 1] falls back to DefaultTieBand. Mixed-script text
// therefore keeps several candidates instead of forcing a single-script
// decision.
func Candidates(matches []Match, tieBand float64) []string {
	if len(matches) == 0 {
		return nil
	}
	if tieBand <= 0 || tieBand > 1 {
		tieBand = DefaultTieBand
	}

	top := float64(matches[0].Count)
	codes := []string{matches[0].Code}
	for _, m := range matches[1:] {
		if float64(m.Count) >= tieBand*top {
			codes = append(codes, m.Code)
		}
	}
	return codes
}
