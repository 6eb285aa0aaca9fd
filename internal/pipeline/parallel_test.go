package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProgress struct {
	mu        sync.Mutex
	started   int
	progress  int
	completed bool
}

func (r *recordingProgress) OnStart(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = total
}

func (r *recordingProgress) OnProgress(processed, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress = processed
}

func (r *recordingProgress) OnComplete() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed = true
}

func batchTexts() []string {
	return []string{
		"The quick brown fox jumps over the lazy dog.",
		"Le renard brun saute par dessus le chien paresseux.",
		"Быстрая лиса прыгает через ленивую собаку.",
		"The quick cat naps over the lazy fox and the dog.",
	}
}

func TestDetectBatchOrdering(t *testing.T) {
	p := testPipeline(t)

	results, err := p.DetectBatch(batchTexts(), ParallelConfig{MaxWorkers: 3})
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, "eng", results[0].Best().Language)
	assert.Equal(t, "fra", results[1].Best().Language)
	assert.Equal(t, "rus", results[2].Best().Language)
	assert.Equal(t, "eng", results[3].Best().Language)
}

func TestDetectBatchMatchesSequential(t *testing.T) {
	p := testPipeline(t)
	texts := batchTexts()

	parallel, err := p.DetectBatch(texts, ParallelConfig{MaxWorkers: 4})
	require.NoError(t, err)
	sequential, err := p.DetectBatch(texts, ParallelConfig{MaxWorkers: 1})
	require.NoError(t, err)

	require.Len(t, parallel, len(sequential))
	for i := range parallel {
		assert.Equal(t, sequential[i].Results, parallel[i].Results)
	}
}

func TestDetectBatchEmpty(t *testing.T) {
	p := testPipeline(t)

	_, err := p.DetectBatch(nil, DefaultParallelConfig())
	require.Error(t, err)
}

func TestDetectBatchProgress(t *testing.T) {
	p := testPipeline(t)
	progress := &recordingProgress{}

	_, err := p.DetectBatch(batchTexts(), ParallelConfig{
		MaxWorkers:       2,
		ProgressCallback: progress,
	})
	require.NoError(t, err)

	progress.mu.Lock()
	defer progress.mu.Unlock()
	assert.Equal(t, 4, progress.started)
	assert.Equal(t, 4, progress.progress)
	assert.True(t, progress.completed)
}

func TestDetectBatchContextCancelled(t *testing.T) {
	p := testPipeline(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.DetectBatchContext(ctx, batchTexts(), ParallelConfig{MaxWorkers: 2})
	require.Error(t, err)
}

func TestDetectBatchDefaultWorkers(t *testing.T) {
	p := testPipeline(t)

	// Zero workers falls back to NumCPU.
	results, err := p.DetectBatch(batchTexts(), ParallelConfig{})
	require.NoError(t, err)
	require.Len(t, results, 4)
	for _, d := range results {
		require.NotNil(t, d)
		assert.NotEmpty(t, d.Results)
	}
}

func TestCalculateParallelStats(t *testing.T) {
	texts := batchTexts()
	results := []*Detection{{}, {}, nil, {}}

	stats := CalculateParallelStats(texts, results, 2*time.Second, 3)
	assert.Equal(t, 4, stats.TotalTexts)
	assert.Equal(t, 3, stats.ProcessedTexts)
	assert.Equal(t, 1, stats.FailedTexts)
	assert.Equal(t, 3, stats.WorkerCount)
	assert.InDelta(t, 1.5, stats.ThroughputPerSec, 1e-9)
}
