package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/MeKo-Tech/langid/internal/pipeline"
)

// Files larger than this are rejected rather than read into memory. The
// pipeline truncates text anyway, so huge inputs are almost certainly a
// misdirected glob.
const maxFileSize = 16 << 20 // 16 MiB

// readTextFile reads a text file and validates its size.
func readTextFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("cannot access %s: %w", path, err)
	}
	if info.Size() > maxFileSize {
		return "", fmt.Errorf("file too large: %s (%d bytes)", path, info.Size())
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: paths come from CLI arguments
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// processFilesParallel reads the files and detects their languages using
// the pipeline's worker pool.
func processFilesParallel(ctx context.Context, pl *pipeline.Pipeline, filePaths []string,
	workers int, progressCallback pipeline.ProgressCallback,
) ([]*pipeline.Detection, error) {
	texts := make([]string, len(filePaths))
	for i, path := range filePaths {
		text, err := readTextFile(path)
		if err != nil {
			return nil, err
		}
		texts[i] = text
	}

	cfg := pipeline.ParallelConfig{
		MaxWorkers:       workers,
		ProgressCallback: progressCallback,
		ErrorHandler: func(i int, _ string, err error) {
			slog.Warn("detection failed", "file", filePaths[i], "error", err)
		},
	}

	return pl.DetectBatchContext(ctx, texts, cfg)
}
