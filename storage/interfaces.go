package storage

import (
	"context"

	"github.com/wattbot/retrieval/core"
)

// EmbeddingCache persists computed embedding vectors keyed by a content
// hash. Implementations must be thread-safe and support concurrent access.
type EmbeddingCache interface {
	// Get retrieves the cached vector for key. The second result reports
	// whether the key was present; a miss is not an error.
	Get(ctx context.Context, key core.ID) ([]float32, bool, error)

	// Put stores a vector under key, replacing any previous value.
	Put(ctx context.Context, key core.ID, vector []float32) error

	// Close closes the cache backend and releases resources.
	Close() error
}
