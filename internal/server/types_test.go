package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/langid/internal/pipeline"
)

func TestNewServer(t *testing.T) {
	cfg := Config{
		CORSOrigin: "*",
		MaxBodyKB:  64,
		PipelineConfig: pipeline.Config{
			ModelsDir: t.TempDir(), // empty dir, embedded models are used
		},
	}

	server, err := NewServer(cfg)
	require.NoError(t, err)
	assert.NotNil(t, server.pipeline)
	assert.Nil(t, server.rateLimiter)
}

func TestNewServerWithRateLimits(t *testing.T) {
	cfg := Config{
		CORSOrigin:        "*",
		RequestsPerMinute: 10,
		PipelineConfig: pipeline.Config{
			ModelsDir: t.TempDir(),
		},
	}

	server, err := NewServer(cfg)
	require.NoError(t, err)
	assert.NotNil(t, server.rateLimiter)
}

func TestServerRoutesEndToEnd(t *testing.T) {
	server, err := NewServer(Config{
		CORSOrigin: "*",
		MaxBodyKB:  64,
		PipelineConfig: pipeline.Config{
			ModelsDir: t.TempDir(),
		},
	})
	require.NoError(t, err)

	mux := http.NewServeMux()
	server.SetupRoutes(mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := `{"text":"The quick brown fox jumps over the lazy dog and runs away."}`
	resp2, err := http.Post(ts.URL+"/detect", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer func() { _ = resp2.Body.Close() }()
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var detectResp DetectResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&detectResp))
	assert.True(t, detectResp.Success)
	require.NotNil(t, detectResp.Detection)
	assert.Equal(t, "eng", detectResp.Detection.Results[0].Language)
}
