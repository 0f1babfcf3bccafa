package storage

import (
	"context"

	"github.com/Ajaykumar12345677/lexilawbackend/core"
)

// VectorCache persists embeddings between process runs.
// Implementations must be thread-safe and support concurrent access.
type VectorCache interface {
	// Get retrieves the cached embedding for a content ID.
	// Returns ErrNotFound if no entry exists or if the entry was produced
	// by a different embedding model than the cache is configured for.
	Get(ctx context.Context, id core.ID) ([]float32, error)

	// Put stores the embedding for a content ID, overwriting any existing entry.
	Put(ctx context.Context, id core.ID, vector []float32) error

	// Close closes the cache and releases resources.
	Close() error
}
