package server

import (
	"context"
	"net/http"

	"github.com/MeKo-Tech/langid/internal/pipeline"
)

// pipelineInterface defines the methods needed by the server from a pipeline.
type pipelineInterface interface {
	DetectAllContext(ctx context.Context, text string) (*pipeline.Detection, error)
	Languages() []string
}

// Server holds the HTTP server state and dependencies.
type Server struct {
	pipeline    pipelineInterface
	corsOrigin  string
	maxBodyKB   int64
	timeoutSec  int
	rateLimiter *RateLimiter
}

// Config holds server configuration.
type Config struct {
	Host           string
	Port           int
	CORSOrigin     string
	MaxBodyKB      int64
	TimeoutSec     int
	PipelineConfig pipeline.Config

	// Rate limiting (zero values disable the corresponding limit)
	RequestsPerMinute int
	MaxRequestsPerDay int
	MaxDataPerDay     int64
}

// Response types for API endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Time    string `json:"time"`
}

type LanguageInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type LanguagesResponse struct {
	Languages []LanguageInfo `json:"languages"`
	Count     int            `json:"count"`
}

// DetectRequest is the JSON body accepted by the detect endpoint.
type DetectRequest struct {
	Text string `json:"text"`
}

// DetectResponse wraps a detection outcome for the HTTP API.
type DetectResponse struct {
	Success   bool                `json:"success"`
	Detection *pipeline.Detection `json:"detection,omitempty"`
	Error     string              `json:"error,omitempty"`
}

// NewServer creates a new detection server instance.
func NewServer(config Config) (*Server, error) {
	cfg := config.PipelineConfig

	b := pipeline.NewBuilder().
		WithModelsDir(cfg.ModelsDir).
		WithModelPath(cfg.ModelPath).
		WithWhitelist(cfg.Whitelist).
		WithTieBand(cfg.TieBand)
	if cfg.MinTextLength > 0 {
		b = b.WithMinTextLength(cfg.MinTextLength)
	}
	if cfg.MaxTextLength > 0 {
		b = b.WithMaxTextLength(cfg.MaxTextLength)
	}

	pl, err := b.Build()
	if err != nil {
		return nil, err
	}

	s := &Server{
		pipeline:   pl,
		corsOrigin: config.CORSOrigin,
		maxBodyKB:  config.MaxBodyKB,
		timeoutSec: config.TimeoutSec,
	}

	if config.RequestsPerMinute > 0 || config.MaxRequestsPerDay > 0 || config.MaxDataPerDay > 0 {
		s.rateLimiter = NewRateLimiter(config.RequestsPerMinute, config.MaxRequestsPerDay, config.MaxDataPerDay)
	}

	return s, nil
}

// SetupRoutes configures the HTTP routes.
func (s *Server) SetupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/health", s.corsMiddleware(s.healthHandler))
	mux.HandleFunc("/languages", s.corsMiddleware(s.languagesHandler))
	mux.HandleFunc("/detect", s.corsMiddleware(s.rateLimitMiddleware(s.detectHandler)))
	mux.HandleFunc("/detect/batch", s.corsMiddleware(s.rateLimitMiddleware(s.detectBatchHandler)))
	mux.HandleFunc("/ws", s.detectWebSocketHandler)
}
