package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader() *Loader {
	return NewLoaderWithViper(viper.New())
}

func TestLoaderDefaults(t *testing.T) {
	loader := newTestLoader()

	cfg, err := loader.Load()
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, defaults.LogLevel, cfg.LogLevel)
	assert.Equal(t, defaults.Detection.MinTextLength, cfg.Detection.MinTextLength)
	assert.Equal(t, defaults.Server.Port, cfg.Server.Port)
}

func TestLoaderWithFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "langid.yaml")
	content := `
log_level: debug
detection:
  min_text_length: 20
  tie_band: 0.75
server:
  port: 9090
batch:
  workers: 16
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0o600))

	loader := newTestLoader()
	cfg, err := loader.LoadWithFile(configFile)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 20, cfg.Detection.MinTextLength)
	assert.InDelta(t, 0.75, cfg.Detection.TieBand, 1e-9)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 16, cfg.Batch.Workers)
	// Unset values keep defaults.
	assert.Equal(t, DefaultConfig().Server.CORSOrigin, cfg.Server.CORSOrigin)
}

func TestLoaderWithMissingFile(t *testing.T) {
	loader := newTestLoader()

	_, err := loader.LoadWithFile("/nonexistent/langid.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoaderInvalidConfigRejected(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "langid.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("log_level: bogus\n"), 0o600))

	loader := newTestLoader()
	_, err := loader.LoadWithFile(configFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoaderEnvironmentOverride(t *testing.T) {
	t.Setenv("LANGID_LOG_LEVEL", "warn")

	loader := newTestLoader()
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestGenerateDefaultConfigFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "langid.yaml")
	require.NoError(t, GenerateDefaultConfigFile(filename))

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Contains(t, string(data), "log_level")
	assert.Contains(t, string(data), "detection")

	loader := newTestLoader()
	cfg, err := loader.LoadWithFile(filename)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
}

func TestGetConfigSearchPaths(t *testing.T) {
	paths := GetConfigSearchPaths()
	assert.Contains(t, paths, ".")
	assert.Contains(t, paths, "/etc/langid")
}
