// Package tfidf implements a local, deterministic embed.Embedder backed by
// a TF-IDF vectorizer. The vector space is derived from the corpus itself
// during PrepareCorpus; no model download or network access is involved.
// Vectors are L2-normalized so cosine similarity reduces to a dot product.
package tfidf

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/wattbot/retrieval/nlp"
)

// Embedder is a corpus-prepared TF-IDF vectorizer.
// It is read-only after PrepareCorpus and safe for concurrent embedding.
type Embedder struct {
	vocabulary map[string]int
	idf        []float32
	dimension  int
	prepared   bool
}

// NewEmbedder creates an unprepared TF-IDF embedder.
func NewEmbedder() *Embedder {
	return &Embedder{vocabulary: make(map[string]int)}
}

// Dimension returns the dimensionality of the produced embedding vectors.
// Zero until PrepareCorpus has run.
func (e *Embedder) Dimension() int { return e.dimension }

// PrepareCorpus builds the vocabulary and IDF values from the passage
// texts. Vocabulary order is sorted so the same corpus always produces the
// same vector space.
func (e *Embedder) PrepareCorpus(texts []string) error {
	if len(texts) == 0 {
		return errors.New("tfidf: empty corpus")
	}

	df := make(map[string]int)
	for _, text := range texts {
		seen := make(map[string]struct{})
		for _, tok := range nlp.Normalize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	if len(terms) == 0 {
		return errors.New("tfidf: no tokens found in corpus")
	}

	e.vocabulary = make(map[string]int, len(terms))
	e.idf = make([]float32, len(terms))
	n := float64(len(texts))
	for i, term := range terms {
		e.vocabulary[term] = i
		// Smoothed IDF
		e.idf[i] = float32(math.Log((1+n)/(1+float64(df[term]))) + 1.0)
	}
	e.dimension = len(terms)
	e.prepared = true
	return nil
}

// EmbedText computes the TF-IDF embedding for the given text. Text with no
// in-vocabulary tokens embeds to the zero vector, which scores zero against
// everything.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if !e.prepared {
		return nil, errors.New("tfidf: embedder not prepared")
	}

	vec := make([]float32, e.dimension)
	tf := make(map[int]int)
	total := 0
	for _, tok := range nlp.Normalize(text) {
		if idx, ok := e.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec, nil
	}

	for idx, count := range tf {
		vec[idx] = float32(count) / float32(total) * e.idf[idx]
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		inv := float32(1.0 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= inv
		}
	}
	return vec, nil
}

// EmbedTexts computes embeddings for multiple texts.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := e.EmbedText(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = vec
	}
	return vectors, nil
}
