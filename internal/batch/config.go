package batch

import (
	"fmt"
	"os"
	"time"

	"github.com/MeKo-Tech/langid/internal/pipeline"
)

// Config holds all configuration for batch detection.
type Config struct {
	// Core detection settings
	ModelsDir     string
	ModelPath     string
	Whitelist     []string
	MinTextLength int
	MaxTextLength int
	TieBand       float64
	AllCandidates bool
	Format        string
	OutputFile    string

	// Parallel processing settings
	Workers int

	// File discovery settings
	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string

	// Progress settings
	ShowProgress     bool
	Quiet            bool
	ShowStats        bool
	ProgressInterval time.Duration
}

// Result holds the result of batch detection.
type Result struct {
	Detections  []*pipeline.Detection
	FilePaths   []string
	Duration    time.Duration
	WorkerCount int
}

// FormatResults formats the batch detection results in the specified format.
func (r *Result) FormatResults(format string, allCandidates bool) (string, error) {
	return formatBatchResults(r.Detections, r.FilePaths, format, allCandidates)
}

// SaveResults saves the formatted results to a file or stdout.
func (r *Result) SaveResults(format string, allCandidates bool, outputFile string, quiet bool) error {
	output, err := r.FormatResults(format, allCandidates)
	if err != nil {
		return fmt.Errorf("failed to format results: %w", err)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(output), 0o600); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if !quiet {
			_, _ = fmt.Fprintf(os.Stdout, "Results written to %s\n", outputFile)
		}
	} else {
		_, _ = fmt.Fprint(os.Stdout, output)
	}

	return nil
}

// PrintStats prints processing statistics.
func (r *Result) PrintStats(quiet bool) {
	if !quiet {
		stats := pipeline.CalculateParallelStats(make([]string, len(r.FilePaths)), r.Detections, r.Duration, r.WorkerCount)
		_, _ = fmt.Fprintf(os.Stdout, "\nProcessing Statistics:\n")
		_, _ = fmt.Fprintf(os.Stdout, "  Total files: %d\n", len(r.FilePaths))
		_, _ = fmt.Fprintf(os.Stdout, "  Processed: %d\n", stats.ProcessedTexts)
		_, _ = fmt.Fprintf(os.Stdout, "  Failed: %d\n", stats.FailedTexts)
		_, _ = fmt.Fprintf(os.Stdout, "  Workers: %d\n", stats.WorkerCount)
		_, _ = fmt.Fprintf(os.Stdout, "  Duration: %v\n", stats.TotalDuration.Round(time.Millisecond))
		_, _ = fmt.Fprintf(os.Stdout, "  Avg per file: %v\n", stats.AveragePerText.Round(time.Millisecond))
		_, _ = fmt.Fprintf(os.Stdout, "  Throughput: %.1f files/sec\n", stats.ThroughputPerSec)
	}
}
