// Copyright 2026 Wattbot Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package retrieval wires a JSON passage corpus to its two search engines:
// embedding-based (vector) and noun-based (lexical). Open loads the corpus,
// initializes the language resources, and builds both indexes; the engines
// are then read-only and safe for concurrent queries.
package retrieval

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wattbot/retrieval/core"
	"github.com/wattbot/retrieval/docstore"
	"github.com/wattbot/retrieval/embed"
	"github.com/wattbot/retrieval/embed/tfidf"
	"github.com/wattbot/retrieval/lexical"
	"github.com/wattbot/retrieval/nlp"
	"github.com/wattbot/retrieval/storage"
	"github.com/wattbot/retrieval/vector"
)

// SearchEngine is the uniform contract both engines expose: rank the corpus
// against a natural-language query and return at most k results ordered by
// descending score with ties broken by ascending passage ID. Scores are
// engine-specific and must not be compared across engines.
type SearchEngine interface {
	Search(ctx context.Context, query string, k int) ([]core.ScoredResult, error)
}

var (
	_ SearchEngine = (*vector.Engine)(nil)
	_ SearchEngine = (*lexical.Engine)(nil)
)

// Retriever owns a loaded corpus and both search engines built over it.
type Retriever struct {
	corpus    core.Corpus
	resources *nlp.Resources
	vector    *vector.Engine
	lexical   *lexical.Engine
	cache     storage.EmbeddingCache
	logger    *slog.Logger
}

// Option configures Open.
type Option func(*openOptions)

type openOptions struct {
	embedder  embed.Embedder
	model     string
	cache     storage.EmbeddingCache
	dedup     bool
	poolSize  int
	batchSize int
	logger    *slog.Logger
}

// WithEmbedder sets the embedding function for the vector engine. The model
// string identifies it for cache namespacing. Default is a corpus-prepared
// TF-IDF embedder, which needs no external services.
func WithEmbedder(embedder embed.Embedder, model string) Option {
	return func(o *openOptions) {
		o.embedder = embedder
		o.model = model
	}
}

// WithEmbeddingCache stores computed passage vectors so unchanged text is
// not re-embedded on the next run. The Retriever takes ownership and closes
// the cache in Close.
func WithEmbeddingCache(cache storage.EmbeddingCache) Option {
	return func(o *openOptions) {
		o.cache = cache
	}
}

// WithDeduplication drops passages with duplicate text during the load.
func WithDeduplication() Option {
	return func(o *openOptions) {
		o.dedup = true
	}
}

// WithPoolSize sets the worker pool size used by both index builds.
func WithPoolSize(size int) Option {
	return func(o *openOptions) {
		o.poolSize = size
	}
}

// WithBatchSize sets the embedding batch size for the vector build.
func WithBatchSize(size int) Option {
	return func(o *openOptions) {
		o.batchSize = size
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

// Open loads the corpus at corpusPath and builds both search engines over
// it. Everything is ready to serve queries when Open returns; any failure
// surfaces here rather than at query time.
func Open(ctx context.Context, corpusPath string, opts ...Option) (*Retriever, error) {
	o := &openOptions{
		model:  "tfidf",
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}

	resources, err := nlp.Load(nlp.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}

	loadOpts := []docstore.Option{docstore.WithLogger(o.logger)}
	if o.dedup {
		loadOpts = append(loadOpts, docstore.WithDeduplication())
	}
	corpus, err := docstore.Load(corpusPath, loadOpts...)
	if err != nil {
		return nil, err
	}

	embedder := o.embedder
	if embedder == nil {
		embedder = tfidf.NewEmbedder()
	}
	if o.cache != nil {
		cached, err := embed.NewCachedEmbedder(embedder, o.cache,
			cacheNamespace(o.model, embedder, corpus),
			embed.WithCachedLogger(o.logger))
		if err != nil {
			return nil, err
		}
		embedder = cached
	}

	vectorOpts := []vector.Option{vector.WithLogger(o.logger)}
	if o.poolSize > 0 {
		vectorOpts = append(vectorOpts, vector.WithPoolSize(o.poolSize))
	}
	if o.batchSize > 0 {
		vectorOpts = append(vectorOpts, vector.WithBatchSize(o.batchSize))
	}
	vectorEngine, err := vector.NewEngine(embedder, vectorOpts...)
	if err != nil {
		return nil, err
	}
	if err := vectorEngine.BuildFromCorpus(ctx, corpus); err != nil {
		return nil, fmt.Errorf("building vector index: %w", err)
	}

	lexicalOpts := []lexical.Option{lexical.WithLogger(o.logger)}
	if o.poolSize > 0 {
		lexicalOpts = append(lexicalOpts, lexical.WithPoolSize(o.poolSize))
	}
	lexicalEngine, err := lexical.NewEngine(resources, lexicalOpts...)
	if err != nil {
		return nil, err
	}
	if err := lexicalEngine.Build(ctx, corpus); err != nil {
		return nil, fmt.Errorf("building noun index: %w", err)
	}

	return &Retriever{
		corpus:    corpus,
		resources: resources,
		vector:    vectorEngine,
		lexical:   lexicalEngine,
		cache:     o.cache,
		logger:    o.logger,
	}, nil
}

// cacheNamespace derives the cache key namespace for an embedder. Corpus-
// prepared embedders get the corpus digest folded in, since their vector
// space changes with the corpus and stale entries would otherwise collide.
func cacheNamespace(model string, embedder embed.Embedder, corpus core.Corpus) string {
	if _, ok := embedder.(embed.CorpusPreparer); ok {
		digest := core.IDFromContent(strings.Join(corpus.Texts(), "\x1e"))
		return fmt.Sprintf("%s@%d", model, digest)
	}
	return model
}

// Vector returns the embedding-based engine.
func (r *Retriever) Vector() *vector.Engine {
	return r.vector
}

// Lexical returns the noun-based engine.
func (r *Retriever) Lexical() *lexical.Engine {
	return r.lexical
}

// Engine returns the engine with the given name: "vector" or "noun".
func (r *Retriever) Engine(name string) (SearchEngine, error) {
	switch name {
	case "vector":
		return r.vector, nil
	case "noun", "lexical":
		return r.lexical, nil
	default:
		return nil, fmt.Errorf("%w: unknown engine %q", core.ErrInvalidArgument, name)
	}
}

// Corpus returns the loaded corpus.
func (r *Retriever) Corpus() core.Corpus {
	return r.corpus
}

// Close releases resources held by the retriever.
func (r *Retriever) Close() error {
	if r.cache != nil {
		if err := r.cache.Close(); err != nil {
			r.logger.Error("error closing embedding cache", "err", err)
			return err
		}
	}
	return nil
}
