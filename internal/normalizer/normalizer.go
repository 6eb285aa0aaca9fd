// Package normalizer prepares raw text for n-gram profiling.
//
// Normalization replaces ASCII punctuation and digits with spaces, collapses
// whitespace runs, trims the edges, and case-folds the result. The output is
// stable: normalizing an already-normalized string is a no-op.
package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Strategy selects how interior whitespace runs are rewritten.
type Strategy int

const (
	// Collapse rewrites every interior whitespace run as a single space.
	Collapse Strategy = iota

	// PreserveLineEndings keeps one line break for runs that contain one,
	// and rewrites the rest as a single space.
	PreserveLineEndings
)

// stripChars covers U+0021..U+0040: ASCII punctuation, symbols and digits.
const (
	stripLo = '!'
	stripHi = '@'
)

// Normalize converts text into the canonical form used for profiling:
// punctuation and digits become spaces, whitespace runs collapse to a single
// space (runs touching either edge are removed), and the result is
// case-folded to lowercase.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	stripped := strings.Map(func(r rune) rune {
		if r >= stripLo && r <= stripHi {
			return ' '
		}
		return r
	}, text)
	collapsed := NormalizeWhitespace(stripped, Collapse)
	return cases.Fold().String(collapsed)
}

// NormalizeWhitespace rewrites every maximal run of Unicode whitespace
// according to the given strategy. A run touching the start or end of the
// string is deleted entirely, so the result never has leading or trailing
// whitespace.
func NormalizeWhitespace(s string, strategy Strategy) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	i := 0
	for i < len(runes) {
		if !unicode.IsSpace(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}

		// Scan the whole run and remember the first line break in it.
		j := i
		lineBreak := ""
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			if lineBreak == "" {
				switch runes[j] {
				case '\r':
					if j+1 < len(runes) && runes[j+1] == '\n' {
						lineBreak = "\r\n"
					} else {
						lineBreak = "\r"
					}
				case '\n':
					lineBreak = "\n"
				}
			}
			j++
		}

		// Interior runs become a separator; edge runs disappear.
		if i > 0 && j < len(runes) {
			if strategy == PreserveLineEndings && lineBreak != "" {
				b.WriteString(lineBreak)
			} else {
				b.WriteRune(' ')
			}
		}
		i = j
	}
	return b.String()
}
