package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Maximum number of texts accepted in one batch request.
const maxBatchItems = 100

// BatchDetectRequest represents a batch detection request.
type BatchDetectRequest struct {
	Texts []BatchTextRequest `json:"texts"`
}

// BatchTextRequest represents a single text in a batch request.
type BatchTextRequest struct {
	Name string `json:"name,omitempty"`
	Text string `json:"text"`
}

// BatchDetectResponse represents the response for batch detection.
type BatchDetectResponse struct {
	Success bool                `json:"success"`
	Results []BatchDetectResult `json:"results,omitempty"`
	Error   string              `json:"error,omitempty"`
	Summary BatchDetectSummary  `json:"summary"`
}

// BatchDetectResult represents a single result in batch detection.
type BatchDetectResult struct {
	Name     string      `json:"name,omitempty"`
	Success  bool        `json:"success"`
	Result   interface{} `json:"result,omitempty"`
	Error    string      `json:"error,omitempty"`
	Duration float64     `json:"duration_seconds"`
}

// BatchDetectSummary provides summary statistics for batch detection.
type BatchDetectSummary struct {
	TotalItems    int     `json:"total_items"`
	Successful    int     `json:"successful"`
	Failed        int     `json:"failed"`
	TotalDuration float64 `json:"total_duration_seconds"`
	AvgItemTime   float64 `json:"avg_item_time_seconds"`
}

// detectBatchHandler processes batch detection requests.
func (s *Server) detectBatchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.maxBodyKB > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyKB*1024)
	}

	var req BatchDetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeErrorResponse(w, fmt.Sprintf("Failed to parse JSON request: %v", err), http.StatusBadRequest)
		return
	}

	if len(req.Texts) == 0 {
		s.writeErrorResponse(w, "No texts provided in batch request", http.StatusBadRequest)
		return
	}
	if len(req.Texts) > maxBatchItems {
		s.writeErrorResponse(w,
			fmt.Sprintf("Batch size too large (maximum %d items)", maxBatchItems), http.StatusBadRequest)
		return
	}

	if s.pipeline == nil {
		s.writeErrorResponse(w, "Detection pipeline not initialized", http.StatusServiceUnavailable)
		return
	}

	start := time.Now()
	results, summary := s.processBatchRequest(r, req)
	totalDuration := time.Since(start)

	summary.TotalDuration = totalDuration.Seconds()
	if summary.TotalItems > 0 {
		summary.AvgItemTime = summary.TotalDuration / float64(summary.TotalItems)
	}

	detectRequestsTotal.WithLabelValues("batch", "success").Inc()
	detectDuration.WithLabelValues("batch").Observe(totalDuration.Seconds())

	response := BatchDetectResponse{
		Success: summary.Failed == 0,
		Results: results,
		Summary: summary,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding batch detect response: %v\n", err)
	}
}

// processBatchRequest detects each text in the batch in turn.
func (s *Server) processBatchRequest(r *http.Request, req BatchDetectRequest) ([]BatchDetectResult, BatchDetectSummary) {
	results := make([]BatchDetectResult, 0, len(req.Texts))
	summary := BatchDetectSummary{TotalItems: len(req.Texts)}

	for _, item := range req.Texts {
		itemStart := time.Now()
		detection, err := s.pipeline.DetectAllContext(r.Context(), item.Text)
		itemDuration := time.Since(itemStart)

		result := BatchDetectResult{
			Name:     item.Name,
			Duration: itemDuration.Seconds(),
		}

		if err != nil {
			result.Error = err.Error()
			summary.Failed++
		} else {
			result.Success = true
			result.Result = detection
			detectedLanguages.WithLabelValues(detection.Best().Language).Inc()
			summary.Successful++
		}

		results = append(results, result)
	}

	return results, summary
}
