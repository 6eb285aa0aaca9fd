package models

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetModelsDirExplicit(t *testing.T) {
	assert.Equal(t, "/opt/packs", GetModelsDir("/opt/packs"))
}

func TestGetModelsDirEnvOverride(t *testing.T) {
	t.Setenv(EnvModelsDir, "/env/packs")
	assert.Equal(t, "/env/packs", GetModelsDir(""))

	// Explicit parameter still wins over the environment.
	assert.Equal(t, "/opt/packs", GetModelsDir("/opt/packs"))
}

func TestGetModelsDirProjectRoot(t *testing.T) {
	t.Setenv(EnvModelsDir, "")
	dir := GetModelsDir("")
	assert.Equal(t, DefaultModelsDir, filepath.Base(dir))
}

func TestHasPacks(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, HasPacks(dir))
	assert.False(t, HasPacks(filepath.Join(dir, "missing")))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	assert.False(t, HasPacks(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "trigrams.yaml"), []byte("x"), 0o600))
	assert.True(t, HasPacks(dir))
}

func TestResolvePackPath(t *testing.T) {
	got := ResolvePackPath("/opt/packs", "extra.yaml")
	assert.Equal(t, filepath.Join("/opt/packs", "extra.yaml"), got)

	got = ResolvePackPath("/opt/packs", "")
	assert.Equal(t, filepath.Join("/opt/packs", DefaultPackName), got)
}
