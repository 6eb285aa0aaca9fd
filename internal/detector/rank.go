// Package detector ranks candidate languages against an input n-gram
// profile using the out-of-place rank distance of Cavnar–Trenkle n-gram
// text categorization.
//
// For every n-gram of the input profile, the distance to a language model is
// the absolute difference between the n-gram's rank in the input and its
// rank in the model; n-grams the model has never seen contribute a fixed
// penalty equal to the model's size. The total distance is a plain sum, so
// scoring is deterministic and independent of map iteration order.
package detector

import (
	"sort"

	"github.com/MeKo-Tech/langid/internal/langmodel"
	"github.com/MeKo-Tech/langid/internal/ngram"
)

// scored is one candidate language with its accumulated distance.
type scored struct {
	language string
	distance int
}

// Rank scores every eligible language against the input profile and returns
// the full ranked result list. Candidates are the union, over the given
// scripts, of the store's languages for that script, intersected with the
// whitelist when one is provided (nil means unrestricted; an empty non-nil
// whitelist admits nothing). When no candidate remains the single fallback
// ("und", 1.0) is returned.
func Rank(profile *ngram.RankedProfile, scripts []string, whitelist []string, store *langmodel.Store) []Result {
	candidates := collectCandidates(scripts, whitelist, store)
	if len(candidates) == 0 {
		return Fallback()
	}

	ranked := make([]scored, 0, len(candidates))
	for _, model := range candidates {
		ranked = append(ranked, scored{
			language: model.Language(),
			distance: distance(profile, model),
		})
	}

	// Ascending distance; equal distances fall back to lexical language
	// order so the output is reproducible byte for byte.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].distance != ranked[j].distance {
			return ranked[i].distance < ranked[j].distance
		}
		return ranked[i].language < ranked[j].language
	})

	return confidences(ranked)
}

// collectCandidates gathers the eligible models in deterministic (sorted
// language) order. A language modeled under several candidate scripts keeps
// the model of the earliest script in the list.
func collectCandidates(scripts []string, whitelist []string, store *langmodel.Store) []*langmodel.Model {
	var allowed map[string]struct{}
	if whitelist != nil {
		allowed = make(map[string]struct{}, len(whitelist))
		for _, code := range whitelist {
			allowed[code] = struct{}{}
		}
	}

	byLanguage := make(map[string]*langmodel.Model)
	for _, scriptCode := range scripts {
		for lang, model := range store.ModelsForScript(scriptCode) {
			if allowed != nil {
				if _, ok := allowed[lang]; !ok {
					continue
				}
			}
			if _, seen := byLanguage[lang]; !seen {
				byLanguage[lang] = model
			}
		}
	}

	languages := make([]string, 0, len(byLanguage))
	for lang := range byLanguage {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	models := make([]*langmodel.Model, len(languages))
	for i, lang := range languages {
		models[i] = byLanguage[lang]
	}
	return models
}

// distance computes the out-of-place distance between the input profile and
// one language model. Iteration runs over the input's rank order only.
func distance(profile *ngram.RankedProfile, model *langmodel.Model) int {
	total := 0
	for inputRank, gram := range profile.Grams() {
		if modelRank, ok := model.Rank(gram); ok {
			d := inputRank - modelRank
			if d < 0 {
				d = -d
			}
			total += d
		} else {
			// Unseen vocabulary ranks just past the model's last entry.
			total += model.Size()
		}
	}
	return total
}

// confidences converts distance-sorted candidates into scores in (0, 1]:
// with dmin and dmax the best and worst observed distances, a candidate at
// distance d scores (dmax-d+1)/(dmax-dmin+1). The best candidate always
// scores 1.0, scores strictly decrease whenever distances strictly
// increase, and a lone candidate scores 1.0.
func confidences(ranked []scored) []Result {
	dmin := ranked[0].distance
	dmax := ranked[len(ranked)-1].distance
	spread := float64(dmax - dmin + 1)

	results := make([]Result, len(ranked))
	for i, s := range ranked {
		results[i] = Result{
			Language:   s.language,
			Confidence: float64(dmax-s.distance+1) / spread,
		}
	}
	return results
}
