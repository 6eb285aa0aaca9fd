package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MeKo-Tech/langid/internal/langmodel"
	"github.com/MeKo-Tech/langid/internal/version"
)

// healthHandler returns server health status.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status:  "healthy",
		Version: version.Version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding health response: %v\n", err)
	}
}

// languagesHandler returns the languages covered by the loaded models.
func (s *Server) languagesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.pipeline == nil {
		s.writeErrorResponse(w, "Detection pipeline not initialized", http.StatusServiceUnavailable)
		return
	}

	codes := s.pipeline.Languages()
	sort.Strings(codes)
	languages := make([]LanguageInfo, len(codes))
	for i, code := range codes {
		languages[i] = LanguageInfo{Code: code, Name: langmodel.Name(code)}
	}

	response := LanguagesResponse{
		Languages: languages,
		Count:     len(languages),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding languages response: %v\n", err)
	}
}

// detectHandler processes single-text detection requests.
func (s *Server) detectHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.maxBodyKB > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyKB*1024)
	}

	text, ok := s.readDetectText(w, r)
	if !ok {
		return
	}

	if s.pipeline == nil {
		s.writeErrorResponse(w, "Detection pipeline not initialized", http.StatusServiceUnavailable)
		return
	}

	start := time.Now()
	detection, err := s.pipeline.DetectAllContext(r.Context(), text)
	duration := time.Since(start)

	if err != nil {
		detectRequestsTotal.WithLabelValues("text", "error").Inc()
		s.writeErrorResponse(w, fmt.Sprintf("Detection failed: %v", err), http.StatusInternalServerError)
		return
	}

	detectRequestsTotal.WithLabelValues("text", "success").Inc()
	detectDuration.WithLabelValues("text").Observe(duration.Seconds())
	detectTextLength.WithLabelValues("text").Observe(float64(utf8.RuneCountInString(text)))
	detectedLanguages.WithLabelValues(detection.Best().Language).Inc()

	w.Header().Set("Content-Type", "application/json")
	response := DetectResponse{Success: true, Detection: detection}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding detect response: %v\n", err)
	}
}

// readDetectText extracts the input text from a JSON body, a form field,
// or a plain text body, depending on Content-Type.
func (s *Server) readDetectText(w http.ResponseWriter, r *http.Request) (string, bool) {
	contentType := r.Header.Get("Content-Type")

	switch {
	case strings.HasPrefix(contentType, "application/json"):
		var req DetectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeErrorResponse(w, fmt.Sprintf("Failed to parse JSON request: %v", err), http.StatusBadRequest)
			return "", false
		}
		if req.Text == "" {
			s.writeErrorResponse(w, "No text provided", http.StatusBadRequest)
			return "", false
		}
		return req.Text, true

	case strings.HasPrefix(contentType, "text/plain"):
		buf := new(strings.Builder)
		if _, err := io.Copy(buf, r.Body); err != nil {
			s.writeErrorResponse(w, "Failed to read request body", http.StatusBadRequest)
			return "", false
		}
		if buf.Len() == 0 {
			s.writeErrorResponse(w, "No text provided", http.StatusBadRequest)
			return "", false
		}
		return buf.String(), true

	default:
		text := r.FormValue("text")
		if text == "" {
			s.writeErrorResponse(w, "No text provided", http.StatusBadRequest)
			return "", false
		}
		return text, true
	}
}

// writeErrorResponse writes a JSON error response.
func (s *Server) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := DetectResponse{
		Success: false,
		Error:   message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing error response: %v\n", err)
	}
}
