package detector

import (
	"errors"
	"log/slog"

	"github.com/MeKo-Tech/langid/internal/langmodel"
	"github.com/MeKo-Tech/langid/internal/ngram"
)

// Ranker binds the scoring algorithm to a loaded model store.
type Ranker struct {
	store *langmodel.Store
}

// NewRanker creates a Ranker over an immutable store. The store must be
// fully loaded before the first call; the Ranker never mutates it, so a
// single Ranker is safe for concurrent use.
func NewRanker(store *langmodel.Store) (*Ranker, error) {
	if store == nil {
		return nil, errors.New("detector: nil model store")
	}
	slog.Debug("Ranker initialized",
		"scripts", len(store.Scripts()),
		"models", store.Len())
	return &Ranker{store: store}, nil
}

// Store returns the underlying model store.
func (r *Ranker) Store() *langmodel.Store { return r.store }

// Rank scores the input profile against every eligible language. See the
// package-level Rank for semantics.
func (r *Ranker) Rank(profile *ngram.RankedProfile, scripts []string, whitelist []string) []Result {
	return Rank(profile, scripts, whitelist, r.store)
}
