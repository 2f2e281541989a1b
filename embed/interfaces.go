package embed

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// search. Implementations must be thread-safe for concurrent use and
// deterministic: the same text always maps to the same vector for as long
// as the underlying model is unchanged.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a
	// batch. The returned slice contains embeddings in the same order as the
	// input texts. Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// CorpusPreparer is implemented by embedders that derive their vector space
// from the corpus itself (for example TF-IDF vocabularies). The vector
// engine calls PrepareCorpus with all passage texts before embedding any of
// them; embedders with a fixed model simply don't implement it.
type CorpusPreparer interface {
	PrepareCorpus(texts []string) error
}
