package vector

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/wattbot/retrieval/core"
	"github.com/wattbot/retrieval/embed"
	"github.com/wattbot/retrieval/rank"
)

const defaultBatchSize = 32

// Engine is the embedding-based search engine. Construct it with NewEngine,
// build it once with BuildFromCorpus, then serve queries with Get.
type Engine struct {
	embedder  embed.Embedder
	batchSize int
	poolSize  int
	logger    *slog.Logger

	corpus  core.Corpus
	vectors [][]float32
	dim     int
	built   bool
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithBatchSize sets how many passages are embedded per batch during a
// build. Default is 32.
func WithBatchSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			return fmt.Errorf("%w: batch size must be >= 1", core.ErrInvalidArgument)
		}
		e.batchSize = size
		return nil
	}
}

// WithPoolSize sets the worker pool size for concurrent batch embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) error {
		if size < 1 {
			size = 1
		}
		e.poolSize = size
		return nil
	}
}

// NewEngine creates a new vector search engine using the given embedder.
func NewEngine(embedder embed.Embedder, opts ...Option) (*Engine, error) {
	if embedder == nil {
		return nil, embed.ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	e := &Engine{
		embedder:  embedder,
		batchSize: defaultBatchSize,
		poolSize:  poolSize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// BuildFromCorpus computes one embedding vector per passage. Batches are
// embedded concurrently on a worker pool; passages keep their corpus
// positions, so the result is independent of batch completion order.
// Building twice from the same corpus yields equivalent vectors.
func (e *Engine) BuildFromCorpus(ctx context.Context, corpus core.Corpus) error {
	texts := corpus.Texts()
	e.logger.Info("building vector index", "passages", len(texts))

	if preparer, ok := e.embedder.(embed.CorpusPreparer); ok && len(texts) > 0 {
		if err := preparer.PrepareCorpus(texts); err != nil {
			return fmt.Errorf("preparing embedder: %w", err)
		}
	}

	vectors := make([][]float32, len(texts))
	if len(texts) > 0 {
		if err := e.embedBatches(ctx, texts, vectors); err != nil {
			return err
		}
	}

	dim := 0
	for i, vec := range vectors {
		if i == 0 {
			dim = len(vec)
			continue
		}
		if len(vec) != dim {
			return fmt.Errorf("embedding dimension mismatch at passage %d: expected %d, got %d",
				i, dim, len(vec))
		}
	}

	// Swap in the finished index only once everything succeeded.
	e.corpus = corpus
	e.vectors = vectors
	e.dim = dim
	e.built = true
	e.logger.Info("vector index built", "passages", len(vectors), "dimension", dim)
	return nil
}

// embedBatches embeds texts in parallel batches, writing normalized vectors
// into their corpus positions.
func (e *Engine) embedBatches(ctx context.Context, texts []string, vectors [][]float32) error {
	pool, err := ants.NewPool(e.poolSize)
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for start := 0; start < len(texts); start += e.batchSize {
		end := start + e.batchSize
		if end > len(texts) {
			end = len(texts)
		}

		lo, hi := start, end
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			batch, err := e.embedder.EmbedTexts(ctx, texts[lo:hi])
			if err != nil {
				fail(fmt.Errorf("embedding passages %d-%d: %w", lo, hi-1, err))
				return
			}
			if len(batch) != hi-lo {
				fail(fmt.Errorf("embedding result mismatch: expected %d, received %d", hi-lo, len(batch)))
				return
			}
			for i, vec := range batch {
				vectors[lo+i] = NormalizeVector(vec)
			}
		}); err != nil {
			wg.Done()
			fail(err)
			break
		}
	}

	wg.Wait()
	return firstErr
}

// Get embeds the query, scores every passage by cosine similarity, and
// returns the top k results ordered by descending score with ties broken by
// ascending passage ID. If k exceeds the corpus size, all passages are
// returned. An empty corpus yields an empty result, not an error.
func (e *Engine) Get(ctx context.Context, query string, k int) ([]core.ScoredResult, error) {
	if err := core.ValidateLimit(k); err != nil {
		return nil, err
	}
	if !e.built {
		return nil, fmt.Errorf("%w: vector index has not been built", core.ErrInvalidArgument)
	}
	if len(e.corpus) == 0 {
		return []core.ScoredResult{}, nil
	}

	queryVec, err := e.embedder.EmbedText(ctx, query)
	if err != nil {
		e.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}
	queryVec = NormalizeVector(queryVec)
	if len(queryVec) != e.dim {
		return nil, fmt.Errorf("query embedding dimension %d does not match index dimension %d",
			len(queryVec), e.dim)
	}

	candidates := make([]core.ScoredResult, len(e.corpus))
	for i, passage := range e.corpus {
		candidates[i] = core.ScoredResult{
			Passage: passage,
			Score:   dotProduct(queryVec, e.vectors[i]),
		}
	}

	return rank.TopK(candidates, k), nil
}

// Search implements the engine-agnostic search contract; it is Get under
// the uniform name shared with the lexical engine.
func (e *Engine) Search(ctx context.Context, query string, k int) ([]core.ScoredResult, error) {
	return e.Get(ctx, query, k)
}

// Len returns the number of indexed passages.
func (e *Engine) Len() int {
	return len(e.vectors)
}

// Dimension returns the embedding dimensionality of the built index.
func (e *Engine) Dimension() int {
	return e.dim
}
