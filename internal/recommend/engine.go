// Package recommend ranks catalog items against a career profile and explains each pick.
//
// Scoring combines TF-IDF cosine similarity with rule-based industry, career-stage,
// vibe, skill-depth and educational-value signals. Explanations are drawn from phrase
// pools in a seeded order, so a given profile always gets the same wording and no two
// results of one request open with the same sentence.
package recommend

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jonathan/moviefy/internal/catalog"
	"github.com/jonathan/moviefy/internal/logging"
	"github.com/jonathan/moviefy/internal/metrics"
	"github.com/jonathan/moviefy/internal/profile"
	"github.com/jonathan/moviefy/internal/textvec"
	"github.com/jonathan/moviefy/internal/types"
	"github.com/rs/zerolog"
)

// Engine is the recommendation entry point. It is safe for concurrent use.
type Engine struct {
	cache     *IndexCache
	weights   Weights
	explainer *Explainer
	logger    zerolog.Logger
}

type engineConfig struct {
	weights   Weights
	vecOpts   textvec.Options
	explainer *Explainer
	logger    *zerolog.Logger
}

// Option configures an Engine.
type Option func(*engineConfig)

// WithWeights sets the signal weights. Invalid weights are ignored.
func WithWeights(w Weights) Option {
	return func(c *engineConfig) {
		if w.Validate() == nil {
			c.weights = w
		}
	}
}

// WithVectorizerOptions sets how the TF-IDF index is fitted.
func WithVectorizerOptions(opts textvec.Options) Option {
	return func(c *engineConfig) {
		c.vecOpts = opts
	}
}

// WithExplainer replaces the explanation generator.
func WithExplainer(e *Explainer) Option {
	return func(c *engineConfig) {
		if e != nil {
			c.explainer = e
		}
	}
}

// WithLogger sets the engine logger.
//
//nolint:gocritic // zerolog.Logger is passed by value by convention
func WithLogger(l zerolog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = &l
	}
}

// NewEngine creates an Engine over store. The index is built lazily on first use.
func NewEngine(store catalog.Store, opts ...Option) *Engine {
	cfg := engineConfig{
		weights:   CanonicalWeights(),
		vecOpts:   textvec.DefaultOptions(),
		explainer: NewExplainer(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	logger := logging.Component("recommend")
	if cfg.logger != nil {
		logger = *cfg.logger
	}

	return &Engine{
		cache:     NewIndexCache(store, cfg.vecOpts, logger),
		weights:   cfg.weights,
		explainer: cfg.explainer,
		logger:    logger,
	}
}

// Weights returns the configured signal weights.
func (e *Engine) Weights() Weights {
	return e.weights
}

// Recommend normalizes a loosely typed profile and ranks the catalog against it.
func (e *Engine) Recommend(ctx context.Context, raw map[string]any, topN int) []types.Recommendation {
	return e.GenerateRecommendations(ctx, profile.Normalize(raw), topN)
}

// GenerateRecommendations returns up to topN explained recommendations, best first.
// topN <= 0 means DefaultTopN; larger values are capped at MaxRecommendations.
// It returns an empty list, never an error, when the catalog is unavailable or
// the profile carries no text to match on.
func (e *Engine) GenerateRecommendations(ctx context.Context, p types.CareerProfile, topN int) (recs []types.Recommendation) {
	start := time.Now()
	outcome := "ok"
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error().Interface("panic", r).Msg("recommendation scoring panicked")
			recs = []types.Recommendation{}
			outcome = "error"
		}
		if len(recs) == 0 && outcome == "ok" {
			outcome = "empty"
		}
		metrics.RecommendationRequests.WithLabelValues(outcome).Inc()
		metrics.ScoringDuration.Observe(time.Since(start).Seconds())
	}()

	p = profile.FromStruct(p)
	scored := e.Score(ctx, p)
	if len(scored) == 0 {
		return []types.Recommendation{}
	}

	ranked := Rank(scored, ClampTopN(topN))
	plan := e.explainer.plan(p)

	recs = make([]types.Recommendation, len(ranked))
	for i := range ranked {
		item := &ranked[i].Item
		recs[i] = types.Recommendation{
			ID:           item.ID,
			Title:        item.Title,
			Type:         ContentType(item.Title, item.Summary),
			CareerSkills: item.CareerSkills,
			Vibe:         p.Vibe,
			Industry:     item.Industry,
			Summary:      item.Summary,
			Explanation:  plan.explain(i, item),
			MatchScore:   roundScore(ranked[i].Score / 100),
		}
	}

	e.logger.Debug().
		Str("vibe", p.Vibe).
		Str("industry", p.Industry).
		Int("returned", len(recs)).
		Dur("duration", time.Since(start)).
		Msg("recommendations generated")
	return recs
}

// Score computes signals and normalized scores for every catalog item, in catalog
// order. It returns nil when there is no index or the profile yields an empty query.
func (e *Engine) Score(ctx context.Context, p types.CareerProfile) []ScoredItem {
	query := BuildQuery(p)
	if strings.TrimSpace(query) == "" {
		return nil
	}

	ix := e.cache.Get(ctx)
	if ix == nil {
		return nil
	}

	qv := ix.Vectorize(query)
	s := newScorer(p)
	entries := ix.Entries()
	scored := make([]ScoredItem, len(entries))
	for i := range entries {
		signals := s.score(&entries[i], qv)
		scored[i] = ScoredItem{
			Item:      entries[i].Item,
			Signals:   signals,
			Composite: e.weights.Combine(signals),
		}
	}
	normalizeScores(scored)
	return scored
}

// Warm builds the index if it has not been built yet and reports whether one is live.
func (e *Engine) Warm(ctx context.Context) bool {
	return e.cache.Get(ctx) != nil
}

// Rebuild reloads the catalog and atomically replaces the live index.
func (e *Engine) Rebuild(ctx context.Context) error {
	if err := e.cache.Rebuild(ctx); err != nil {
		return fmt.Errorf("failed to rebuild index: %w", err)
	}
	return nil
}

// Invalidate drops the live index so the next request rebuilds it.
func (e *Engine) Invalidate() {
	e.cache.Invalidate()
}

// Stats describes the live index.
func (e *Engine) Stats() types.CatalogStats {
	return e.cache.Stats()
}

func roundScore(x float64) float64 {
	return clamp01(math.Round(x*10000) / 10000)
}
