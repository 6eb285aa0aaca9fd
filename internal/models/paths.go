// Package models resolves where language model packs live on disk.
package models

import (
	"errors"
	"os"
	"path/filepath"
)

// Default models directory.
const DefaultModelsDir = "models"

// Environment variable for models directory override.
const EnvModelsDir = "LANGID_MODELS_DIR"

// DefaultPackName is the file name of the primary trigram pack inside a
// models directory.
const DefaultPackName = "trigrams.yaml"

// findProjectRoot finds the project root by looking for go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	// Walk up the directory tree looking for go.mod
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root without finding go.mod
			break
		}
		dir = parent
	}

	return "", errors.New("could not find project root (go.mod not found)")
}

// GetModelsDir returns the models directory path from various sources.
// Priority: 1. Explicit modelsDir parameter, 2. Environment variable,
// 3. Project root + default.
func GetModelsDir(modelsDir string) string {
	if modelsDir != "" {
		return modelsDir
	}

	if envDir := os.Getenv(EnvModelsDir); envDir != "" {
		return envDir
	}

	if root, err := findProjectRoot(); err == nil {
		return filepath.Join(root, DefaultModelsDir)
	}

	return DefaultModelsDir
}

// HasPacks reports whether dir exists and contains at least one YAML model
// pack. Used to decide between external packs and the embedded defaults.
func HasPacks(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			return true
		}
	}
	return false
}

// ResolvePackPath returns the path of a named pack inside the resolved
// models directory.
func ResolvePackPath(modelsDir, name string) string {
	if name == "" {
		name = DefaultPackName
	}
	return filepath.Join(GetModelsDir(modelsDir), name)
}
