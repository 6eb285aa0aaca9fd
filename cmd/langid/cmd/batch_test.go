package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCommand(t *testing.T) {
	assert.NotNil(t, batchCmd)
	assert.True(t, strings.HasPrefix(batchCmd.Use, "batch"))
	assert.NotEmpty(t, batchCmd.Short)
	assert.NotEmpty(t, batchCmd.Long)
}

func TestBatchCommandHelp(t *testing.T) {
	command := batchCmd
	buf := new(bytes.Buffer)
	command.SetOut(buf)
	command.SetErr(buf)
	// Clear the writers afterwards: a child's own writer would otherwise
	// shadow the root's in every later test that executes through rootCmd.
	t.Cleanup(func() {
		command.SetOut(nil)
		command.SetErr(nil)
	})
	err := command.Help()
	require.NoError(t, err)
	output := strings.TrimSpace(buf.String())
	assert.Contains(t, output, "parallel")
	assert.Contains(t, output, "Usage:")
}

func TestBatchCommandFlags(t *testing.T) {
	flags := batchCmd.Flags()

	for _, name := range []string{"format", "output", "workers", "recursive", "include", "exclude", "progress", "quiet", "stats"} {
		assert.NotNil(t, flags.Lookup(name), "expected flag %q", name)
	}
}

func TestConfigToBatchConfig(t *testing.T) {
	cfg := GetConfig()

	require.NoError(t, batchCmd.Flags().Set("workers", "3"))
	require.NoError(t, batchCmd.Flags().Set("whitelist", "eng,fra"))
	require.NoError(t, batchCmd.Flags().Set("format", "csv"))
	require.NoError(t, batchCmd.Flags().Set("recursive", "true"))
	require.NoError(t, batchCmd.Flags().Set("quiet", "true"))

	batchConfig := configToBatchConfig(cfg, batchCmd)

	assert.Equal(t, 3, batchConfig.Workers)
	assert.Equal(t, []string{"eng", "fra"}, batchConfig.Whitelist)
	assert.Equal(t, "csv", batchConfig.Format)
	assert.True(t, batchConfig.Recursive)
	assert.True(t, batchConfig.Quiet)
	// Values not overridden come from the resolved configuration
	assert.Equal(t, cfg.Detection.MinTextLength, batchConfig.MinTextLength)
	assert.Equal(t, cfg.Detection.TieBand, batchConfig.TieBand)
}

func TestBatchCommandProcessesFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(path,
		[]byte("The quick brown fox jumps over the lazy dog and keeps on running"), 0o600))

	outFile := filepath.Join(dir, "results.txt")
	_, err := executeCommandAndCaptureOutput(t, rootCmd,
		[]string{"batch", path, "--quiet", "--format", "text", "--output", outFile})
	require.NoError(t, err)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "eng")
}

func TestBatchCommandNoFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommandAndCaptureOutput(t, rootCmd, []string{"batch", dir, "--quiet"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text files found")
}

func TestBatchCommandRequiresArgs(t *testing.T) {
	_, err := executeCommandAndCaptureOutput(t, rootCmd, []string{"batch"})
	require.Error(t, err)
}
