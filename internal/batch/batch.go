// Package batch provides batch language detection over text files.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MeKo-Tech/langid/internal/pipeline"
)

// Run detects languages for a batch of text files with the given configuration.
func Run(ctx context.Context, paths []string, config *Config) (*Result, error) {
	files, err := discoverTextFiles(paths, config.Recursive, config.IncludePatterns, config.ExcludePatterns)
	if err != nil {
		return nil, fmt.Errorf("failed to discover text files: %w", err)
	}

	if len(files) == 0 {
		return nil, errors.New("no text files found")
	}

	var progressCallback pipeline.ProgressCallback
	if config.ShowProgress && !config.Quiet {
		progressCallback = pipeline.NewConsoleProgressCallback(
			os.Stdout,
			"Detecting: ",
		).WithUpdateInterval(config.ProgressInterval)
	}

	pl, err := buildPipeline(config, progressCallback)
	if err != nil {
		return nil, fmt.Errorf("failed to build detection pipeline: %w", err)
	}

	startTime := time.Now()
	detections, err := processFilesParallel(ctx, pl, files, config.Workers, progressCallback)
	duration := time.Since(startTime)

	if err != nil {
		return nil, fmt.Errorf("batch detection failed: %w", err)
	}

	return &Result{
		Detections:  detections,
		FilePaths:   files,
		Duration:    duration,
		WorkerCount: config.Workers,
	}, nil
}
