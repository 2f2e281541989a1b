package lexical

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/wattbot/retrieval/core"
	"github.com/wattbot/retrieval/rank"
)

// NounExtractor yields the nouns of a text with their term frequencies.
// *nlp.Resources is the production implementation; tests may substitute a
// stub with hand-defined noun maps.
type NounExtractor interface {
	Nouns(text string) (map[string]int, error)
}

// Engine is the noun-based search engine. Construct it with NewEngine,
// build it once with Build, then serve queries with Search.
type Engine struct {
	extractor NounExtractor
	poolSize  int
	logger    *slog.Logger

	corpus   core.Corpus
	postings map[string]map[core.ID]int
	byID     map[core.ID]*core.Passage
	built    bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// WithPoolSize sets the worker pool size for concurrent noun extraction
// during a build. Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(e *Engine) {
		if size < 1 {
			size = 1
		}
		e.poolSize = size
	}
}

// NewEngine creates a new lexical search engine using the given extractor.
func NewEngine(extractor NounExtractor, opts ...Option) (*Engine, error) {
	if extractor == nil {
		return nil, ErrExtractorRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	e := &Engine{
		extractor: extractor,
		poolSize:  poolSize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Build tokenizes every passage into nouns and constructs the inverted
// index. Extraction runs concurrently per passage; the merge is sequential,
// so the index is identical regardless of completion order. Deterministic
// for the same corpus and language resources.
func (e *Engine) Build(ctx context.Context, corpus core.Corpus) error {
	e.logger.Info("building noun index", "passages", len(corpus))

	nounCounts := make([]map[string]int, len(corpus))
	if len(corpus) > 0 {
		if err := e.extractAll(corpus, nounCounts); err != nil {
			return err
		}
	}

	postings := make(map[string]map[core.ID]int)
	byID := make(map[core.ID]*core.Passage, len(corpus))
	for i, passage := range corpus {
		byID[passage.Id] = passage
		for noun, tf := range nounCounts[i] {
			bucket, ok := postings[noun]
			if !ok {
				bucket = make(map[core.ID]int)
				postings[noun] = bucket
			}
			bucket[passage.Id] = tf
		}
	}

	// Swap in the finished index only once everything succeeded.
	e.corpus = corpus
	e.postings = postings
	e.byID = byID
	e.built = true
	e.logger.Info("noun index built", "passages", len(corpus), "terms", len(postings))
	return nil
}

// extractAll runs noun extraction for every passage on a worker pool.
func (e *Engine) extractAll(corpus core.Corpus, nounCounts []map[string]int) error {
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

	for i, passage := range corpus {
		idx, text := i, passage.Text
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()

			counts, err := e.extractor.Nouns(text)
			if err != nil {
				fail(fmt.Errorf("extracting nouns for passage %d: %w", idx, err))
				return
			}
			nounCounts[idx] = counts
		}); err != nil {
			wg.Done()
			fail(err)
			break
		}
	}

	wg.Wait()
	return firstErr
}

// Search tokenizes the query into nouns and scores every passage sharing at
// least one of them. Results are ordered by descending score with ties
// broken by ascending passage ID. A query with no nouns yields an empty
// result, since no lexical match is possible.
func (e *Engine) Search(ctx context.Context, query string, topK int) ([]core.ScoredResult, error) {
	if err := core.ValidateLimit(topK); err != nil {
		return nil, err
	}
	if !e.built {
		return nil, fmt.Errorf("%w: noun index has not been built", core.ErrInvalidArgument)
	}
	if len(e.corpus) == 0 {
		return []core.ScoredResult{}, nil
	}

	queryNouns, err := e.extractor.Nouns(query)
	if err != nil {
		e.logger.Error("error extracting nouns from query", "query", query, "err", err)
		return nil, err
	}
	if len(queryNouns) == 0 {
		e.logger.Debug("query has no nouns", "query", query)
		return []core.ScoredResult{}, nil
	}

	// Overlap-weighted frequency: each shared noun contributes its term
	// frequency in the passage.
	scores := make(map[core.ID]float32)
	for noun := range queryNouns {
		for id, tf := range e.postings[noun] {
			scores[id] += float32(tf)
		}
	}

	candidates := make([]core.ScoredResult, 0, len(scores))
	for id, score := range scores {
		candidates = append(candidates, core.ScoredResult{
			Passage: e.byID[id],
			Score:   score,
		})
	}

	return rank.TopK(candidates, topK), nil
}

// Len returns the number of indexed passages.
func (e *Engine) Len() int {
	return len(e.byID)
}

// Terms returns the number of distinct nouns in the inverted index.
func (e *Engine) Terms() int {
	return len(e.postings)
}
