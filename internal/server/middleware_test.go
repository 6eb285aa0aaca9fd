package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORSMiddleware(t *testing.T) {
	server := &Server{corsOrigin: "https://example.com"}

	handler := server.corsMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	server := &Server{corsOrigin: "*"}

	called := false
	handler := server.corsMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/detect", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, called, "OPTIONS request should not reach the handler")
	assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
}

func TestRateLimitMiddlewareDisabled(t *testing.T) {
	server := &Server{corsOrigin: "*"}

	called := false
	handler := server.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodPost, "/detect", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	assert.True(t, called)
}

func TestRateLimitMiddlewareEnforced(t *testing.T) {
	server := &Server{
		corsOrigin:  "*",
		rateLimiter: NewRateLimiter(2, 0, 0),
	}

	handler := server.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for i := range 2 {
		req := httptest.NewRequest(http.MethodPost, "/detect", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler(w, req)
		require.Equal(t, http.StatusOK, w.Code, "request %d should pass", i)
	}

	req := httptest.NewRequest(http.MethodPost, "/detect", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	w := httptest.NewRecorder()
	handler(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "minute", w.Header().Get("X-RateLimit-Type"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// A different client is unaffected.
	req = httptest.NewRequest(http.MethodPost, "/detect", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w = httptest.NewRecorder()
	handler(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expected   string
	}{
		{
			name:       "remote addr only",
			remoteAddr: "192.168.1.10:5000",
			expected:   "192.168.1.10",
		},
		{
			name:       "x-forwarded-for single",
			remoteAddr: "10.0.0.1:5000",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7"},
			expected:   "203.0.113.7",
		},
		{
			name:       "x-forwarded-for multiple",
			remoteAddr: "10.0.0.1:5000",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			expected:   "203.0.113.7",
		},
		{
			name:       "x-real-ip",
			remoteAddr: "10.0.0.1:5000",
			headers:    map[string]string{"X-Real-IP": "198.51.100.3"},
			expected:   "198.51.100.3",
		},
		{
			name:       "malformed remote addr",
			remoteAddr: "not-an-addr",
			expected:   "not-an-addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.expected, getClientIP(req))
		})
	}
}
