package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for a passage.
// IDs are either sequential positions in the source corpus or
// source-provided keys; either way they are stable across rebuilds.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs, which is what
// makes the embedding cache safe to share across runs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Passage is one retrievable unit of corpus text.
// It is immutable once loaded; the search engines never modify it.
type Passage struct {
	Id    ID
	Text  string
	Title string // Optional source title or caption
	URL   string // Optional source URL
}

// Corpus is an ordered sequence of passages loaded from a single JSON source.
// Insertion order is preserved and used as the tie-break basis during ranking.
type Corpus []*Passage

// Get returns the passage with the given ID, or nil if it is not present.
func (c Corpus) Get(id ID) *Passage {
	for _, p := range c {
		if p != nil && p.Id == id {
			return p
		}
	}
	return nil
}

// Texts returns the passage texts in corpus order.
func (c Corpus) Texts() []string {
	texts := make([]string, len(c))
	for i, p := range c {
		texts[i] = p.Text
	}
	return texts
}

// ScoredResult is a search hit: a passage and its engine-specific relevance
// score. Scores are not comparable across engines.
type ScoredResult struct {
	Passage *Passage
	Score   float32
}
