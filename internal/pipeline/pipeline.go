package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/MeKo-Tech/langid/internal/detector"
	"github.com/MeKo-Tech/langid/internal/langmodel"
	"github.com/MeKo-Tech/langid/internal/models"
	"github.com/MeKo-Tech/langid/internal/script"
)

// Default text length bounds applied before detection. Inputs shorter
// than MinTextLength carry too little signal to rank reliably; inputs
// longer than MaxTextLength are truncated since additional text stops
// improving the profile.
const (
	DefaultMinTextLength = 10
	DefaultMaxTextLength = 2048
)

// Config holds configuration for the detection pipeline.
type Config struct {
	ModelsDir     string   // Directory searched for language model packs
	ModelPath     string   // Explicit pack file; takes precedence over ModelsDir
	MinTextLength int      // Inputs below this rune count return the fallback
	MaxTextLength int      // Inputs above this rune count are truncated (0 = no limit)
	TieBand       float64  // Relative script tie band in (0,1]
	Whitelist     []string // Candidate language codes (nil = default catalog)

	Parallel ParallelConfig // Configuration for batch processing
}

// DefaultConfig returns a default pipeline config.
func DefaultConfig() Config {
	return Config{
		ModelsDir:     models.GetModelsDir(""),
		MinTextLength: DefaultMinTextLength,
		MaxTextLength: DefaultMaxTextLength,
		TieBand:       script.DefaultTieBand,
		Whitelist:     nil,
		Parallel:      DefaultParallelConfig(),
	}
}

// Builder constructs a Pipeline with fluent configuration.
type Builder struct {
	cfg   Config
	store *langmodel.Store
}

// NewBuilder creates a new pipeline builder with defaults.
func NewBuilder() *Builder { return &Builder{cfg: DefaultConfig()} }

// WithModelsDir sets the directory searched for model packs.
func (b *Builder) WithModelsDir(dir string) *Builder {
	if dir != "" {
		b.cfg.ModelsDir = dir
	}
	return b
}

// WithModelPath overrides pack discovery with an explicit pack file.
func (b *Builder) WithModelPath(path string) *Builder {
	if path != "" {
		b.cfg.ModelPath = path
	}
	return b
}

// WithStore injects an already-loaded model store, skipping pack loading.
func (b *Builder) WithStore(store *langmodel.Store) *Builder {
	b.store = store
	return b
}

// WithWhitelist restricts ranking to the given language codes.
func (b *Builder) WithWhitelist(codes []string) *Builder {
	b.cfg.Whitelist = codes
	return b
}

// WithMinTextLength sets the minimum rune count for detection.
func (b *Builder) WithMinTextLength(n int) *Builder {
	if n >= 0 {
		b.cfg.MinTextLength = n
	}
	return b
}

// WithMaxTextLength sets the truncation length (0 disables truncation).
func (b *Builder) WithMaxTextLength(n int) *Builder {
	if n >= 0 {
		b.cfg.MaxTextLength = n
	}
	return b
}

// WithTieBand sets the script tie band.
func (b *Builder) WithTieBand(band float64) *Builder {
	if band > 0 && band <= 1.0 {
		b.cfg.TieBand = band
	}
	return b
}

// WithParallelWorkers sets the number of workers for batch detection.
func (b *Builder) WithParallelWorkers(workers int) *Builder {
	if workers > 0 {
		b.cfg.Parallel.MaxWorkers = workers
	}
	return b
}

// WithProgressCallback sets the progress callback for batch detection.
func (b *Builder) WithProgressCallback(callback ProgressCallback) *Builder {
	b.cfg.Parallel.ProgressCallback = callback
	return b
}

// Config returns a copy of the current config.
func (b *Builder) Config() Config { return b.cfg }

// Pipeline wires script classification, normalization, profiling and
// ranking into a single detection flow.
type Pipeline struct {
	cfg    Config
	ranker *detector.Ranker
}

// Build loads language models and initializes the pipeline. Model
// resolution order: injected store, explicit pack file, pack directory,
// embedded defaults.
func (b *Builder) Build() (*Pipeline, error) {
	store := b.store
	if store == nil {
		var err error
		store, err = loadStore(b.cfg)
		if err != nil {
			return nil, err
		}
	}

	ranker, err := detector.NewRanker(store)
	if err != nil {
		return nil, err
	}

	slog.Debug("pipeline initialized",
		"languages", store.Len(),
		"scripts", len(store.Scripts()),
		"min_text_length", b.cfg.MinTextLength,
		"max_text_length", b.cfg.MaxTextLength)

	return &Pipeline{cfg: b.cfg, ranker: ranker}, nil
}

func loadStore(cfg Config) (*langmodel.Store, error) {
	if cfg.ModelPath != "" {
		store, err := langmodel.LoadFile(cfg.ModelPath)
		if err != nil {
			return nil, fmt.Errorf("load model pack %s: %w", cfg.ModelPath, err)
		}
		return store, nil
	}
	if cfg.ModelsDir != "" && models.HasPacks(cfg.ModelsDir) {
		store, err := langmodel.LoadDir(cfg.ModelsDir)
		if err != nil {
			return nil, fmt.Errorf("load model packs from %s: %w", cfg.ModelsDir, err)
		}
		return store, nil
	}
	return langmodel.LoadDefault()
}

// Config returns the pipeline configuration.
func (p *Pipeline) Config() Config { return p.cfg }

// Languages returns the language codes covered by the loaded models.
func (p *Pipeline) Languages() []string { return p.ranker.Store().Languages() }

// Info returns a map with key pipeline properties.
func (p *Pipeline) Info() map[string]interface{} {
	store := p.ranker.Store()
	return map[string]interface{}{
		"models_dir":      p.cfg.ModelsDir,
		"model_path":      p.cfg.ModelPath,
		"languages":       store.Len(),
		"scripts":         store.Scripts(),
		"min_text_length": p.cfg.MinTextLength,
		"max_text_length": p.cfg.MaxTextLength,
		"tie_band":        p.cfg.TieBand,
		"parallel": map[string]interface{}{
			"max_workers":           p.cfg.Parallel.MaxWorkers,
			"has_progress_callback": p.cfg.Parallel.ProgressCallback != nil,
		},
	}
}
