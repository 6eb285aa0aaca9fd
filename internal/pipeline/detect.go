package pipeline

import (
	"context"
	"time"

	"github.com/MeKo-Tech/langid/internal/detector"
	"github.com/MeKo-Tech/langid/internal/langmodel"
	"github.com/MeKo-Tech/langid/internal/ngram"
	"github.com/MeKo-Tech/langid/internal/normalizer"
	"github.com/MeKo-Tech/langid/internal/script"
)

// Detection is the full outcome of running the pipeline on one input.
type Detection struct {
	Results    []detector.Result `json:"results"`
	Scripts    []string          `json:"scripts,omitempty"`
	NGramWidth int               `json:"ngram_width,omitempty"`
	DurationMs float64           `json:"duration_ms"`
}

// Best returns the top-ranked result.
func (d *Detection) Best() detector.Result { return d.Results[0] }

// DetectAll runs the full pipeline and returns every ranked candidate.
func (p *Pipeline) DetectAll(text string) (*Detection, error) {
	return p.DetectAllContext(context.Background(), text)
}

// DetectAllContext is DetectAll with context cancellation support.
func (p *Pipeline) DetectAllContext(ctx context.Context, text string) (*Detection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	runes := []rune(text)
	if len(runes) < p.cfg.MinTextLength {
		return fallbackDetection(start), nil
	}
	if p.cfg.MaxTextLength > 0 && len(runes) > p.cfg.MaxTextLength {
		text = string(runes[:p.cfg.MaxTextLength])
	}

	matches := script.Detect(text)
	scripts := script.Candidates(matches, p.cfg.TieBand)
	if len(scripts) == 0 {
		return fallbackDetection(start), nil
	}
	width := script.Width(scripts[0])

	// Models are keyed per n-gram width; a candidate script whose models use
	// a different width can never match the profile, so it is dropped here.
	candidates := scripts[:0]
	for _, s := range scripts {
		if script.Width(s) == width {
			candidates = append(candidates, s)
		}
	}
	scripts = candidates

	normalized := normalizer.Normalize(text)
	counts, err := ngram.BuildCounts(normalized, width)
	if err != nil {
		return nil, err
	}
	// Only language models are truncated to the top-K grams; the input
	// profile keeps every ranked gram.
	profile := counts.Ranked()
	if profile.Len() == 0 {
		return fallbackDetection(start), nil
	}

	whitelist := p.cfg.Whitelist
	if whitelist == nil {
		whitelist = langmodel.DefaultWhitelist
	}

	results := p.ranker.Rank(profile, scripts, whitelist)
	return &Detection{
		Results:    results,
		Scripts:    scripts,
		NGramWidth: width,
		DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
	}, nil
}

// Detect runs the full pipeline and returns only the best result.
func (p *Pipeline) Detect(text string) (detector.Result, error) {
	return p.DetectContext(context.Background(), text)
}

// DetectContext is Detect with context cancellation support.
func (p *Pipeline) DetectContext(ctx context.Context, text string) (detector.Result, error) {
	d, err := p.DetectAllContext(ctx, text)
	if err != nil {
		return detector.Result{}, err
	}
	return d.Best(), nil
}

func fallbackDetection(start time.Time) *Detection {
	return &Detection{
		Results:    detector.Fallback(),
		DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
	}
}
