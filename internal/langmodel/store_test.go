package langmodel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toyData() map[string]map[string][]string {
	return map[string]map[string][]string{
		"Latn": {
			"eng": {"the", "he ", " th"},
			"fra": {" de", "de ", "le "},
		},
		"Cyrl": {
			"rus": {" пр", "ого"},
		},
	}
}

func TestNewStore(t *testing.T) {
	store, err := NewStore(toyData())
	require.NoError(t, err)

	assert.Equal(t, 3, store.Len())
	assert.Equal(t, []string{"Cyrl", "Latn"}, store.Scripts())
	assert.Equal(t, []string{"eng", "fra", "rus"}, store.Languages())

	models := store.ModelsForScript("Latn")
	require.Len(t, models, 2)

	eng := models["eng"]
	require.NotNil(t, eng)
	assert.Equal(t, "Latn", eng.Script())
	assert.Equal(t, "eng", eng.Language())
	assert.Equal(t, 3, eng.Size())

	r, ok := eng.Rank("he ")
	require.True(t, ok)
	assert.Equal(t, 1, r)

	_, ok = eng.Rank("xyz")
	assert.False(t, ok)

	assert.Nil(t, store.ModelsForScript("Arab"))
}

func TestNewStoreRejectsEmptyProfiles(t *testing.T) {
	_, err := NewStore(map[string]map[string][]string{
		"Latn": {"eng": {}},
	})
	require.Error(t, err)

	_, err = NewStore(map[string]map[string][]string{
		"Latn": {"": {"abc"}},
	})
	require.Error(t, err)
}

func TestNewModelTruncatesToProfileSize(t *testing.T) {
	grams := make([]string, ProfileSize+50)
	for i := range grams {
		grams[i] = string(rune('a'+i%26)) + string(rune('a'+(i/26)%26)) + string(rune('a'+i/676))
	}
	m := NewModel("Latn", "eng", grams)
	assert.Equal(t, ProfileSize, m.Size())
}

func TestNewModelDuplicateKeepsBestRank(t *testing.T) {
	m := NewModel("Latn", "eng", []string{"abc", "def", "abc"})
	r, ok := m.Rank("abc")
	require.True(t, ok)
	assert.Equal(t, 0, r)
	// Size reflects the stored list length, which is the penalty weight.
	assert.Equal(t, 3, m.Size())
}

func TestLoadDefault(t *testing.T) {
	store, err := LoadDefault()
	require.NoError(t, err)

	assert.Contains(t, store.Scripts(), "Latn")
	assert.Contains(t, store.Scripts(), "Cyrl")
	assert.Contains(t, store.Languages(), "eng")
	assert.Contains(t, store.Languages(), "cmn")

	eng := store.ModelsForScript("Latn")["eng"]
	require.NotNil(t, eng)
	r, ok := eng.Rank(" th")
	require.True(t, ok)
	assert.Equal(t, 0, r)
}

func TestLoadFileAndDir(t *testing.T) {
	dir := t.TempDir()
	pack := `scripts:
  Latn:
    eng: [" th", "the", "he "]
  Cyrl:
    rus: [" пр", "ого"]
`
	path := filepath.Join(dir, "models.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pack), 0o600))

	store, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())

	store, err = LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())
}

func TestLoadDirMergesAndOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(`scripts:
  Latn:
    eng: ["aaa"]
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(`scripts:
  Latn:
    eng: ["bbb"]
    fra: ["ccc"]
`), 0o600))

	store, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())

	// b.yaml sorts after a.yaml, so its eng profile wins.
	eng := store.ModelsForScript("Latn")["eng"]
	_, ok := eng.Rank("bbb")
	assert.True(t, ok)
	_, ok = eng.Rank("aaa")
	assert.False(t, ok)
}

func TestLoadDirErrors(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	empty := t.TempDir()
	_, err = LoadDir(empty)
	require.Error(t, err)

	bad := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(bad, "bad.yaml"), []byte("scripts: {}"), 0o600))
	_, err = LoadDir(bad)
	require.Error(t, err)
}

func TestName(t *testing.T) {
	assert.Equal(t, "English", Name("eng"))
	assert.Equal(t, "Undetermined", Name("und"))
	assert.Equal(t, "xx", Name("xx"))
}
