// Package langmodel holds the precomputed per-language n-gram rank tables
// the detector scores against.
//
// A Store is built once at startup from model-pack data (script → language →
// ordered n-gram list) and never mutated afterwards, so any number of
// detection calls may read it concurrently without locking.
package langmodel

import (
	"fmt"
	"sort"
)

// ProfileSize is the reference number of top n-grams kept per language
// model at training time. Packs may carry fewer; loading truncates any
// excess.
const ProfileSize = 300

// Model is one language's K-truncated rank table within one script.
type Model struct {
	script   string
	language string
	ranks    map[string]int
	size     int
}

// NewModel builds a model from an ordered n-gram list, where the slice
// index is the rank (0 = most frequent). Lists beyond ProfileSize are
// truncated. Duplicate n-grams keep their first (best) rank.
func NewModel(scriptCode, language string, grams []string) *Model {
	if len(grams) > ProfileSize {
		grams = grams[:ProfileSize]
	}
	ranks := make(map[string]int, len(grams))
	for i, g := range grams {
		if _, dup := ranks[g]; !dup {
			ranks[g] = i
		}
	}
	return &Model{
		script:   scriptCode,
		language: language,
		ranks:    ranks,
		size:     len(grams),
	}
}

// Script returns the ISO 15924 script code the model was trained under.
func (m *Model) Script() string { return m.script }

// Language returns the ISO 639-3 language code.
func (m *Model) Language() string { return m.language }

// Rank returns the rank of gram within the model and whether it is present.
func (m *Model) Rank(gram string) (int, bool) {
	r, ok := m.ranks[gram]
	return r, ok
}

// Size returns the number of n-grams the model holds. It doubles as the
// missing-term penalty during scoring.
func (m *Model) Size() int { return m.size }

// Store is the immutable script → language → Model table.
type Store struct {
	scripts   map[string]map[string]*Model
	languages []string
}

// NewStore builds a Store from raw pack data. The input mapping is copied;
// the caller may discard it afterwards.
func NewStore(data map[string]map[string][]string) (*Store, error) {
	scripts := make(map[string]map[string]*Model, len(data))
	langSet := make(map[string]struct{})

	for scriptCode, langs := range data {
		if len(langs) == 0 {
			continue
		}
		models := make(map[string]*Model, len(langs))
		for lang, grams := range langs {
			if lang == "" {
				return nil, fmt.Errorf("langmodel: empty language code under script %q", scriptCode)
			}
			if len(grams) == 0 {
				return nil, fmt.Errorf("langmodel: empty profile for %s/%s", scriptCode, lang)
			}
			models[lang] = NewModel(scriptCode, lang, grams)
			langSet[lang] = struct{}{}
		}
		scripts[scriptCode] = models
	}

	languages := make([]string, 0, len(langSet))
	for lang := range langSet {
		languages = append(languages, lang)
	}
	sort.Strings(languages)

	return &Store{scripts: scripts, languages: languages}, nil
}

// ModelsForScript returns the language → Model mapping for a script, or nil
// when the script has no models. The returned map is shared read-only state
// and must not be modified.
func (s *Store) ModelsForScript(scriptCode string) map[string]*Model {
	return s.scripts[scriptCode]
}

// Scripts returns the script codes with at least one model, sorted.
func (s *Store) Scripts() []string {
	codes := make([]string, 0, len(s.scripts))
	for code := range s.scripts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Languages returns every distinct language code in the store, sorted.
func (s *Store) Languages() []string {
	out := make([]string, len(s.languages))
	copy(out, s.languages)
	return out
}

// Len returns the total number of (script, language) models.
func (s *Store) Len() int {
	n := 0
	for _, models := range s.scripts {
		n += len(models)
	}
	return n
}
