package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_DetectBatchHandler(t *testing.T) {
	server, _ := newStubServer()

	body := `{"texts":[{"name":"a","text":"hello world again"},{"name":"b","text":"bonjour le monde"}]}`
	req := httptest.NewRequest(http.MethodPost, "/detect/batch", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	server.detectBatchHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response BatchDetectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	require.Len(t, response.Results, 2)
	assert.Equal(t, "a", response.Results[0].Name)
	assert.True(t, response.Results[0].Success)
	assert.Equal(t, 2, response.Summary.TotalItems)
	assert.Equal(t, 2, response.Summary.Successful)
	assert.Equal(t, 0, response.Summary.Failed)
}

func TestServer_DetectBatchHandlerEmpty(t *testing.T) {
	server, _ := newStubServer()

	req := httptest.NewRequest(http.MethodPost, "/detect/batch", strings.NewReader(`{"texts":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	server.detectBatchHandler(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_DetectBatchHandlerTooLarge(t *testing.T) {
	server, _ := newStubServer()
	server.maxBodyKB = 0

	items := make([]string, maxBatchItems+1)
	for i := range items {
		items[i] = fmt.Sprintf(`{"text":"item %d"}`, i)
	}
	body := `{"texts":[` + strings.Join(items, ",") + `]}`

	req := httptest.NewRequest(http.MethodPost, "/detect/batch", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	server.detectBatchHandler(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response BatchDetectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Error, "Batch size too large")
}

func TestServer_DetectBatchHandlerMethodNotAllowed(t *testing.T) {
	server, _ := newStubServer()

	req := httptest.NewRequest(http.MethodGet, "/detect/batch", nil)
	w := httptest.NewRecorder()

	server.detectBatchHandler(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
