package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"
)

// ProgressCallback receives batch progress notifications.
type ProgressCallback interface {
	OnStart(total int)
	OnProgress(processed, total int)
	OnComplete()
}

// ParallelConfig holds configuration for batch detection.
type ParallelConfig struct {
	MaxWorkers       int                      // Number of parallel workers (0 = runtime.NumCPU())
	ProgressCallback ProgressCallback         // Optional progress reporting
	ErrorHandler     func(int, string, error) // Optional per-text error handler
}

// DefaultParallelConfig returns sensible defaults for batch detection.
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		MaxWorkers:       runtime.NumCPU(),
		ProgressCallback: nil,
		ErrorHandler:     nil,
	}
}

// textJob represents a single detection job.
type textJob struct {
	index int
	text  string
}

// textResult represents the result of detecting a single text.
type textResult struct {
	index  int
	result *Detection
	err    error
}

// DetectBatch detects languages for multiple texts in parallel using a
// worker pool. Returns results in the same order as the input texts.
func (p *Pipeline) DetectBatch(texts []string, config ParallelConfig) ([]*Detection, error) {
	return p.DetectBatchContext(context.Background(), texts, config)
}

// DetectBatchContext is DetectBatch with context cancellation support.
func (p *Pipeline) DetectBatchContext(ctx context.Context, texts []string, config ParallelConfig) ([]*Detection, error) {
	if len(texts) == 0 {
		return nil, errors.New("no texts provided")
	}
	if p == nil || p.ranker == nil {
		return nil, errors.New("pipeline not initialized")
	}

	if config.MaxWorkers <= 0 {
		config.MaxWorkers = runtime.NumCPU()
	}

	// For a single text or single worker, run sequentially.
	if len(texts) == 1 || config.MaxWorkers == 1 {
		return p.detectSequential(ctx, texts, config)
	}

	if config.ProgressCallback != nil {
		config.ProgressCallback.OnStart(len(texts))
		defer config.ProgressCallback.OnComplete()
	}

	jobs := make(chan textJob, len(texts))
	results := make(chan textResult, len(texts))

	var wg sync.WaitGroup
	for range config.MaxWorkers {
		wg.Add(1)
		go p.worker(ctx, jobs, results, &wg)
	}

	go func() {
		defer close(jobs)
		for i, text := range texts {
			select {
			case jobs <- textJob{index: i, text: text}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	resultMap := make(map[int]*Detection)
	errorMap := make(map[int]error)
	processedCount := 0

	for result := range results {
		resultMap[result.index] = result.result
		errorMap[result.index] = result.err
		processedCount++

		if config.ProgressCallback != nil {
			config.ProgressCallback.OnProgress(processedCount, len(texts))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ordered := make([]*Detection, len(texts))
	var firstError error

	for i := range texts {
		if err := errorMap[i]; err != nil {
			if firstError == nil {
				firstError = fmt.Errorf("text %d: %w", i, err)
			}
			if config.ErrorHandler != nil {
				config.ErrorHandler(i, texts[i], err)
			}
		} else {
			ordered[i] = resultMap[i]
		}
	}

	return ordered, firstError
}

func (p *Pipeline) detectSequential(ctx context.Context, texts []string, config ParallelConfig) ([]*Detection, error) {
	if config.ProgressCallback != nil {
		config.ProgressCallback.OnStart(len(texts))
		defer config.ProgressCallback.OnComplete()
	}

	ordered := make([]*Detection, len(texts))
	var firstError error
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		d, err := p.DetectAllContext(ctx, text)
		if err != nil {
			if firstError == nil {
				firstError = fmt.Errorf("text %d: %w", i, err)
			}
			if config.ErrorHandler != nil {
				config.ErrorHandler(i, text, err)
			}
			continue
		}
		ordered[i] = d
		if config.ProgressCallback != nil {
			config.ProgressCallback.OnProgress(i+1, len(texts))
		}
	}
	return ordered, firstError
}

// worker detects texts from the jobs channel.
func (p *Pipeline) worker(
	ctx context.Context,
	jobs <-chan textJob,
	results chan<- textResult,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for {
		select {
		case job, ok := <-jobs:
			if !ok {
				return
			}

			result, err := p.DetectAllContext(ctx, job.text)

			select {
			case results <- textResult{index: job.index, result: result, err: err}:
			case <-ctx.Done():
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

// ParallelStats holds statistics about batch detection performance.
type ParallelStats struct {
	TotalTexts       int           `json:"total_texts"`
	ProcessedTexts   int           `json:"processed_texts"`
	FailedTexts      int           `json:"failed_texts"`
	WorkerCount      int           `json:"worker_count"`
	TotalDuration    time.Duration `json:"total_duration_ns"`
	AveragePerText   time.Duration `json:"average_per_text_ns"`
	ThroughputPerSec float64       `json:"throughput_per_sec"`
}

// CalculateParallelStats calculates performance statistics for a batch run.
func CalculateParallelStats(
	texts []string,
	results []*Detection,
	duration time.Duration,
	workerCount int,
) ParallelStats {
	totalTexts := len(texts)
	processedTexts := 0
	failedTexts := 0

	for _, result := range results {
		if result != nil {
			processedTexts++
		} else {
			failedTexts++
		}
	}

	var avgPerText time.Duration
	var throughput float64

	if processedTexts > 0 {
		avgPerText = duration / time.Duration(processedTexts)
		throughput = float64(processedTexts) / duration.Seconds()
	}

	return ParallelStats{
		TotalTexts:       totalTexts,
		ProcessedTexts:   processedTexts,
		FailedTexts:      failedTexts,
		WorkerCount:      workerCount,
		TotalDuration:    duration,
		AveragePerText:   avgPerText,
		ThroughputPerSec: throughput,
	}
}
