package batch

import (
	"github.com/MeKo-Tech/langid/internal/pipeline"
)

// buildPipeline creates a detection pipeline from the batch configuration.
func buildPipeline(config *Config, progressCallback pipeline.ProgressCallback) (*pipeline.Pipeline, error) {
	b := pipeline.NewBuilder().
		WithModelsDir(config.ModelsDir).
		WithModelPath(config.ModelPath).
		WithParallelWorkers(config.Workers).
		WithProgressCallback(progressCallback)

	if config.Whitelist != nil {
		b = b.WithWhitelist(config.Whitelist)
	}
	if config.MinTextLength > 0 {
		b = b.WithMinTextLength(config.MinTextLength)
	}
	if config.MaxTextLength > 0 {
		b = b.WithMaxTextLength(config.MaxTextLength)
	}
	if config.TieBand > 0 {
		b = b.WithTieBand(config.TieBand)
	}

	return b.Build()
}
