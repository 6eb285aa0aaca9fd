// Package ngram builds frequency-ranked n-gram profiles from normalized text.
//
// A profile is produced in two steps: BuildCounts slides a fixed-width rune
// window over the padded text and counts every n-gram, then Ranked orders the
// n-grams by descending count into a RankedProfile. Ranking is deterministic:
// count ties are broken by the n-gram's first appearance in the scan.
package ngram

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultWidth is the window width used for most scripts. Logographic
// scripts use width 2; the choice is made by the caller, not here.
const DefaultWidth = 3

// ErrInvalidWidth reports an n-gram width below 1. This is a programmer
// error and is never silently corrected.
var ErrInvalidWidth = errors.New("ngram: width must be a positive integer")

// Counts holds the occurrence count of every n-gram in one text, along with
// the order in which each n-gram was first seen.
type Counts struct {
	counts  map[string]int
	order   []string
	windows int
}

// BuildCounts extracts every contiguous rune window of width n from text,
// padded with one leading and one trailing space so that n-grams spanning
// word boundaries are captured. The number of windows is
// max(0, len(padded)-n+1); a padded text shorter than n yields an empty
// Counts.
func BuildCounts(text string, n int) (*Counts, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidWidth, n)
	}

	padded := []rune(" " + text + " ")
	c := &Counts{counts: make(map[string]int)}
	for i := 0; i+n <= len(padded); i++ {
		gram := string(padded[i : i+n])
		if _, seen := c.counts[gram]; !seen {
			c.order = append(c.order, gram)
		}
		c.counts[gram]++
		c.windows++
	}
	return c, nil
}

// Len returns the number of distinct n-grams.
func (c *Counts) Len() int { return len(c.order) }

// Windows returns the total number of windows scanned, i.e. the sum of all
// counts.
func (c *Counts) Windows() int { return c.windows }

// Count returns the occurrence count of gram, or 0 if it never occurred.
func (c *Counts) Count(gram string) int { return c.counts[gram] }

// Ranked reduces the counts to a RankedProfile: n-grams sorted by descending
// count, ties broken by first occurrence, ranks assigned from 0.
func (c *Counts) Ranked() *RankedProfile {
	grams := make([]string, len(c.order))
	copy(grams, c.order)
	sort.SliceStable(grams, func(i, j int) bool {
		return c.counts[grams[i]] > c.counts[grams[j]]
	})

	ranks := make(map[string]int, len(grams))
	for i, g := range grams {
		ranks[g] = i
	}
	return &RankedProfile{grams: grams, ranks: ranks}
}

// RankedProfile is an immutable sequence of n-grams ordered by rank
// (0 = most frequent).
type RankedProfile struct {
	grams []string
	ranks map[string]int
}

// NewRankedProfile builds a profile directly from an ordered n-gram list,
// where the slice index is the rank. Used for precomputed language models.
func NewRankedProfile(grams []string) *RankedProfile {
	owned := make([]string, len(grams))
	copy(owned, grams)
	ranks := make(map[string]int, len(owned))
	for i, g := range owned {
		ranks[g] = i
	}
	return &RankedProfile{grams: owned, ranks: ranks}
}

// Len returns the number of ranked n-grams.
func (p *RankedProfile) Len() int { return len(p.grams) }

// Rank returns the rank of gram and whether it is present.
func (p *RankedProfile) Rank(gram string) (int, bool) {
	r, ok := p.ranks[gram]
	return r, ok
}

// Grams returns the n-grams in rank order. The returned slice is shared and
// must not be modified.
func (p *RankedProfile) Grams() []string { return p.grams }

// Truncate returns a profile limited to the top k entries. Profiles at or
// under k are returned unchanged.
func (p *RankedProfile) Truncate(k int) *RankedProfile {
	if k < 0 || len(p.grams) <= k {
		return p
	}
	return NewRankedProfile(p.grams[:k])
}
