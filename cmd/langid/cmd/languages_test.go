package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguagesCommand(t *testing.T) {
	assert.NotNil(t, languagesCmd)
	assert.Equal(t, "languages", languagesCmd.Use)
	assert.NotEmpty(t, languagesCmd.Short)
}

func TestLanguagesCommandHelp(t *testing.T) {
	command := languagesCmd
	buf := new(bytes.Buffer)
	command.SetOut(buf)
	command.SetErr(buf)
	// Clear the writers afterwards so later tests executing through rootCmd
	// capture output on the root's buffer again.
	t.Cleanup(func() {
		command.SetOut(nil)
		command.SetErr(nil)
	})
	err := command.Help()
	require.NoError(t, err)
	output := strings.TrimSpace(buf.String())
	assert.Contains(t, output, "languages")
	assert.Contains(t, output, "Usage:")
}

func TestLanguagesCommandListsLanguages(t *testing.T) {
	output, err := executeCommandAndCaptureOutput(t, rootCmd, []string{"languages"})
	require.NoError(t, err)
	assert.Contains(t, output, "eng")
	assert.Contains(t, output, "English")
	assert.Contains(t, output, "languages")
}

func TestLanguagesCommandJSONFormat(t *testing.T) {
	output, err := executeCommandAndCaptureOutput(t, rootCmd, []string{"languages", "--format", "json"})
	require.NoError(t, err)

	var entries []struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &entries))
	assert.NotEmpty(t, entries)

	codes := make([]string, len(entries))
	for i, e := range entries {
		codes[i] = e.Code
	}
	assert.Contains(t, codes, "eng")

	require.NoError(t, languagesCmd.Flags().Set("format", "text"))
}

func TestLanguagesCommandRejectsArgs(t *testing.T) {
	_, err := executeCommandAndCaptureOutput(t, rootCmd, []string{"languages", "extra"})
	require.Error(t, err)
}
