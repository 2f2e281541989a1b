package embed

import (
	"context"
	"log/slog"

	"github.com/wattbot/retrieval/core"
	"github.com/wattbot/retrieval/storage"
)

// CachedEmbedder decorates an Embedder with a persistent text-to-vector
// cache. Cache keys hash the namespace together with the text, so vectors
// from different models never collide. Only the text-to-vector mapping is
// cached; indexes built on top of it are always recomputed.
type CachedEmbedder struct {
	inner     Embedder
	cache     storage.EmbeddingCache
	namespace string
	logger    *slog.Logger
}

// CachedOption configures a CachedEmbedder.
type CachedOption func(*CachedEmbedder)

// WithCachedLogger sets a custom logger.
// Default is slog.Default().
func WithCachedLogger(logger *slog.Logger) CachedOption {
	return func(c *CachedEmbedder) {
		if logger == nil {
			logger = slog.Default()
		}
		c.logger = logger
	}
}

// NewCachedEmbedder wraps inner with cache. The namespace should identify
// the embedding model so a model change invalidates prior entries.
func NewCachedEmbedder(inner Embedder, cache storage.EmbeddingCache, namespace string, opts ...CachedOption) (*CachedEmbedder, error) {
	if inner == nil {
		return nil, ErrEmbedderRequired
	}
	if cache == nil {
		return nil, ErrCacheRequired
	}

	c := &CachedEmbedder{
		inner:     inner,
		cache:     cache,
		namespace: namespace,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var (
	_ Embedder       = (*CachedEmbedder)(nil)
	_ CorpusPreparer = (*CachedEmbedder)(nil)
)

// PrepareCorpus forwards corpus preparation to the wrapped embedder when it
// requires it. Preparation is never cached; only embedding results are.
func (c *CachedEmbedder) PrepareCorpus(texts []string) error {
	if preparer, ok := c.inner.(CorpusPreparer); ok {
		return preparer.PrepareCorpus(texts)
	}
	return nil
}

func (c *CachedEmbedder) key(text string) core.ID {
	return core.IDFromContent(c.namespace + "\x00" + text)
}

// EmbedText returns the cached vector for text, embedding and storing it on
// a miss.
func (c *CachedEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	key := c.key(text)
	if vector, ok, err := c.cache.Get(ctx, key); err != nil {
		return nil, err
	} else if ok {
		return vector, nil
	}

	vector, err := c.inner.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Put(ctx, key, vector); err != nil {
		return nil, err
	}
	return vector, nil
}

// EmbedTexts resolves cache hits first and forwards only the misses to the
// wrapped embedder in a single batch.
func (c *CachedEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	var missing []int

	for i, text := range texts {
		vector, ok, err := c.cache.Get(ctx, c.key(text))
		if err != nil {
			return nil, err
		}
		if ok {
			vectors[i] = vector
		} else {
			missing = append(missing, i)
		}
	}

	c.logger.Debug("embedding cache lookup",
		"texts", len(texts), "hits", len(texts)-len(missing))

	if len(missing) == 0 {
		return vectors, nil
	}

	batch := make([]string, len(missing))
	for i, idx := range missing {
		batch[i] = texts[idx]
	}
	embedded, err := c.inner.EmbedTexts(ctx, batch)
	if err != nil {
		return nil, err
	}

	for i, idx := range missing {
		vectors[idx] = embedded[i]
		if err := c.cache.Put(ctx, c.key(texts[idx]), embedded[i]); err != nil {
			return nil, err
		}
	}
	return vectors, nil
}
