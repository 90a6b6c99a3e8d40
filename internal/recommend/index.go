package recommend

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonathan/moviefy/internal/catalog"
	"github.com/jonathan/moviefy/internal/metrics"
	"github.com/jonathan/moviefy/internal/textvec"
	"github.com/jonathan/moviefy/internal/types"
	"github.com/rs/zerolog"
)

// Entry pairs a catalog item with its TF-IDF vector. Entries of one Index always come
// from the same catalog snapshot.
type Entry struct {
	Item   types.CatalogItem
	Vector textvec.SparseVector
}

// Index is an immutable TF-IDF view of one catalog snapshot.
type Index struct {
	entries    []Entry
	vectorizer *textvec.Vectorizer
	builtAt    time.Time
}

// BuildIndex fits a vectorizer over the catalog and vectorizes every item.
// An empty catalog has no index and yields nil.
func BuildIndex(items []types.CatalogItem, opts textvec.Options) *Index {
	if len(items) == 0 {
		return nil
	}

	docs := make([]string, len(items))
	for i := range items {
		docs[i] = items[i].Document()
	}

	vectorizer := textvec.Fit(docs, opts)
	entries := make([]Entry, len(items))
	for i := range items {
		entries[i] = Entry{Item: items[i], Vector: vectorizer.Transform(docs[i])}
	}

	return &Index{entries: entries, vectorizer: vectorizer, builtAt: time.Now()}
}

// Len returns the number of indexed items.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Features returns the vocabulary size.
func (ix *Index) Features() int {
	return ix.vectorizer.Features()
}

// Entries returns the indexed entries in catalog order. Callers must not modify them.
func (ix *Index) Entries() []Entry {
	return ix.entries
}

// Vectorize maps query text into the index's vector space.
func (ix *Index) Vectorize(text string) textvec.SparseVector {
	return ix.vectorizer.Transform(text)
}

// IndexCache owns the live Index. The first Get builds it under a lock; afterwards
// reads are lock-free. Rebuild builds a replacement aside and swaps it in atomically,
// so in-flight queries keep a consistent snapshot.
type IndexCache struct {
	store  catalog.Store
	opts   textvec.Options
	logger zerolog.Logger

	mu        sync.Mutex // serializes builds
	current   atomic.Pointer[Index]
	attempted atomic.Bool
	lastErr   atomic.Pointer[string]
	builds    atomic.Int64
}

// NewIndexCache creates an empty cache over store.
//
//nolint:gocritic // zerolog.Logger is passed by value by convention
func NewIndexCache(store catalog.Store, opts textvec.Options, logger zerolog.Logger) *IndexCache {
	return &IndexCache{store: store, opts: opts, logger: logger}
}

// Get returns the live index, building it on first access. It returns nil when the
// catalog is empty or could not be loaded; a failed load is not retried until
// Rebuild or Invalidate.
func (c *IndexCache) Get(ctx context.Context) *Index {
	if ix := c.current.Load(); ix != nil {
		return ix
	}
	if c.attempted.Load() {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.attempted.Load() {
		return c.current.Load()
	}
	ix, _ := c.build(ctx)
	c.current.Store(ix)
	c.attempted.Store(true)
	return ix
}

// Rebuild loads a fresh snapshot and swaps it in. If loading fails the previous
// index stays live and the error is returned.
func (c *IndexCache) Rebuild(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ix, err := c.build(ctx)
	c.attempted.Store(true)
	if err != nil {
		return err
	}
	c.current.Store(ix)
	return nil
}

// Invalidate drops the live index; the next Get rebuilds it.
func (c *IndexCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current.Store(nil)
	c.attempted.Store(false)
	c.lastErr.Store(nil)
}

// LastError returns the most recent load failure, or "".
func (c *IndexCache) LastError() string {
	if p := c.lastErr.Load(); p != nil {
		return *p
	}
	return ""
}

// Stats describes the live index.
func (c *IndexCache) Stats() types.CatalogStats {
	stats := types.CatalogStats{
		LastError:  c.LastError(),
		BuildCount: c.builds.Load(),
	}
	if ix := c.current.Load(); ix != nil {
		stats.Ready = true
		stats.Items = ix.Len()
		stats.Features = ix.Features()
		stats.BuiltAt = ix.builtAt
	}
	return stats
}

// build must be called with mu held.
func (c *IndexCache) build(ctx context.Context) (*Index, error) {
	start := time.Now()
	c.builds.Add(1)

	items, err := c.store.LoadCatalog(ctx)
	if err != nil {
		msg := err.Error()
		c.lastErr.Store(&msg)
		metrics.IndexBuilds.WithLabelValues("error").Inc()
		c.logger.Error().Err(err).Msg("failed to load catalog")
		return nil, err
	}
	c.lastErr.Store(nil)

	ix := BuildIndex(items, c.opts)
	if ix == nil {
		metrics.IndexBuilds.WithLabelValues("empty").Inc()
		metrics.IndexItems.Set(0)
		metrics.IndexFeatures.Set(0)
		c.logger.Warn().Msg("catalog is empty, no index built")
		return nil, nil
	}

	metrics.IndexBuilds.WithLabelValues("ok").Inc()
	metrics.IndexItems.Set(float64(ix.Len()))
	metrics.IndexFeatures.Set(float64(ix.Features()))
	c.logger.Info().
		Int("items", ix.Len()).
		Int("features", ix.Features()).
		Dur("duration", time.Since(start)).
		Msg("TF-IDF index built")
	return ix, nil
}
