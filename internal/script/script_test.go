package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSingleScript(t *testing.T) {
	tests := []struct {
		name string
		text string
		top  string
	}{
		{"latin", "plain english text", "Latn"},
		{"cyrillic", "привет мир", "Cyrl"},
		{"arabic", "مرحبا بالعالم", "Arab"},
		{"devanagari", "नमस्ते दुनिया", "Deva"},
		{"bengali", "ওহে বিশ্ব", "Beng"},
		{"tamil", "வணக்கம்", "Taml"},
		{"thaana", "ދިވެހި", "Thaa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := Detect(tt.text)
			require.NotEmpty(t, matches)
			assert.Equal(t, tt.top, matches[0].Code)
		})
	}
}

func TestDetectEmptyAndPunctuation(t *testing.T) {
	assert.Empty(t, Detect(""))
	assert.Empty(t, Detect("... !!! 123 ???"))
}

func TestDetectOmitsZeroCounts(t *testing.T) {
	matches := Detect("hello")
	for _, m := range matches {
		assert.Positive(t, m.Count, "script %s reported with zero matches", m.Code)
	}
}

func TestDetectOverlapWidens(t *testing.T) {
	// CJK ideographs belong to Hant, Hans, Jpan and Kore at once. The
	// match list for Han text must contain all of them with equal counts —
	// overlap widens the candidate set, never narrows it.
	matches := Detect("中文文本")
	codes := make(map[string]int)
	for _, m := range matches {
		codes[m.Code] = m.Count
	}

	require.Contains(t, codes, "Hant")
	require.Contains(t, codes, "Hans")
	require.Contains(t, codes, "Jpan")
	require.Contains(t, codes, "Kore")
	assert.Equal(t, codes["Hant"], codes["Hans"])
	assert.Equal(t, codes["Hant"], codes["Jpan"])
	assert.Equal(t, codes["Hant"], codes["Kore"])
}

func TestDetectJapaneseKana(t *testing.T) {
	// Pure hiragana must match Hira, Hrkt and Jpan but not the CJK-only
	// tables.
	matches := Detect("ひらがな")
	codes := make(map[string]bool)
	for _, m := range matches {
		codes[m.Code] = true
	}
	assert.True(t, codes["Hira"])
	assert.True(t, codes["Hrkt"])
	assert.True(t, codes["Jpan"])
	assert.False(t, codes["Hant"])
	assert.False(t, codes["Kana"])
}

func TestDetectOrderedByCount(t *testing.T) {
	// Mostly Latin with a little Cyrillic.
	matches := Detect("mostly latin текст")
	require.GreaterOrEqual(t, len(matches), 2)
	assert.Equal(t, "Latn", matches[0].Code)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Count, matches[i].Count)
	}
}

func TestDetectDeterministicTies(t *testing.T) {
	// Equal Latin and Cyrillic counts: registry order (Latn first) must
	// break the tie, every time.
	for range 10 {
		matches := Detect("abег")
		require.GreaterOrEqual(t, len(matches), 2)
		assert.Equal(t, "Latn", matches[0].Code)
		assert.Equal(t, "Cyrl", matches[1].Code)
	}
}

func TestCandidates(t *testing.T) {
	matches := []Match{
		{Code: "Latn", Count: 100},
		{Code: "Cyrl", Count: 90},
		{Code: "Arab", Count: 10},
	}

	got := Candidates(matches, 0.85)
	assert.Equal(t, []string{"Latn", "Cyrl"}, got)

	// A tight band keeps only the front-runner.
	got = Candidates(matches, 0.99)
	assert.Equal(t, []string{"Latn"}, got)

	// Out-of-range bands fall back to the default.
	got = Candidates(matches, 0)
	assert.Equal(t, []string{"Latn", "Cyrl"}, got)

	assert.Nil(t, Candidates(nil, 0.85))
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 3, Width("Latn"))
	assert.Equal(t, 3, Width("Cyrl"))
	assert.Equal(t, 2, Width("Hans"))
	assert.Equal(t, 2, Width("Jpan"))
	assert.Equal(t, 2, Width("Hang"))
	assert.Equal(t, 3, Width("Zzzz"))
}

func TestLookup(t *testing.T) {
	info, ok := Lookup("Taml")
	require.True(t, ok)
	assert.Equal(t, "Tamil", info.Name)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}
