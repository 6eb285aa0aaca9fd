package langmodel

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/default_models.json
var defaultModelFS embed.FS

// packFile is the on-disk shape of a model pack: script → language →
// ordered n-gram list, rank = slice index. The same shape is used for the
// embedded JSON seed pack and external YAML packs.
type packFile struct {
	Scripts map[string]map[string][]string `json:"scripts" yaml:"scripts"`
}

// LoadDefault builds a Store from the embedded seed pack. The seed covers a
// compact set of major languages so the tool works without external model
// files; full packs produced by the training pipeline are loaded with
// LoadDir or LoadFile.
func LoadDefault() (*Store, error) {
	raw, err := defaultModelFS.ReadFile("data/default_models.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded models: %w", err)
	}
	var pack packFile
	if err := json.Unmarshal(raw, &pack); err != nil {
		return nil, fmt.Errorf("parsing embedded models: %w", err)
	}
	return NewStore(pack.Scripts)
}

// LoadFile builds a Store from a single YAML model pack.
func LoadFile(path string) (*Store, error) {
	pack, err := readPack(path)
	if err != nil {
		return nil, err
	}
	return NewStore(pack.Scripts)
}

// LoadDir merges every *.yaml/*.yml model pack in dir into one Store. Later
// files (lexical order) take precedence for a (script, language) pair that
// appears twice. An empty or missing directory is an error; callers decide
// whether to fall back to the embedded pack.
func LoadDir(dir string) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading model dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no model packs (*.yaml) found in %s", dir)
	}
	sort.Strings(files)

	merged := make(map[string]map[string][]string)
	for _, path := range files {
		pack, err := readPack(path)
		if err != nil {
			return nil, err
		}
		for scriptCode, langs := range pack.Scripts {
			if merged[scriptCode] == nil {
				merged[scriptCode] = make(map[string][]string, len(langs))
			}
			for lang, grams := range langs {
				merged[scriptCode][lang] = grams
			}
		}
		slog.Debug("Loaded model pack", "path", path, "scripts", len(pack.Scripts))
	}
	return NewStore(merged)
}

func readPack(path string) (*packFile, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // model path comes from config/flags
	if err != nil {
		return nil, fmt.Errorf("reading model pack: %w", err)
	}
	var pack packFile
	if err := yaml.Unmarshal(raw, &pack); err != nil {
		return nil, fmt.Errorf("parsing model pack %s: %w", path, err)
	}
	if len(pack.Scripts) == 0 {
		return nil, fmt.Errorf("model pack %s contains no scripts", path)
	}
	return &pack, nil
}
