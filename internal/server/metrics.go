package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "langid_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "langid_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Detection metrics
	detectRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "langid_detect_requests_total",
			Help: "Total number of detection requests",
		},
		[]string{"type", "status"}, // type: text, batch, websocket
	)

	detectDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "langid_detect_duration_seconds",
			Help:    "Detection duration in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{"type"},
	)

	detectTextLength = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "langid_detect_text_length",
			Help:    "Length of analyzed text in runes",
			Buckets: []float64{0, 10, 50, 100, 500, 1000, 2048, 5000},
		},
		[]string{"type"},
	)

	detectedLanguages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "langid_detected_languages_total",
			Help: "Count of best-match languages returned",
		},
		[]string{"language"},
	)

	// Rate limiting metrics
	rateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "langid_rate_limit_hits_total",
			Help: "Total number of rate limit hits",
		},
		[]string{"type"}, // type: minute, requests, data
	)

	// WebSocket metrics
	websocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "langid_websocket_active_connections",
			Help: "Number of active WebSocket connections",
		},
	)

	websocketMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "langid_websocket_messages_total",
			Help: "Total number of WebSocket messages",
		},
		[]string{"direction"}, // direction: sent, received
	)
)
