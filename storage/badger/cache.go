package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ajaykumar12345677/lexilawbackend/core"
	"github.com/Ajaykumar12345677/lexilawbackend/storage"
	"github.com/dgraph-io/badger/v4"
)

// Key prefix for cached embeddings.
const embeddingPrefix = "embed"

// makeEmbeddingKey generates a key for a cached embedding by content ID.
func makeEmbeddingKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", embeddingPrefix, id))
}

// VectorCache implements storage.VectorCache on a BadgerDB backend.
type VectorCache struct {
	backend *Backend
	model   string
}

var _ storage.VectorCache = (*VectorCache)(nil)

// NewVectorCache creates an embedding cache bound to one embedding model.
// Entries written by a different model are treated as misses on read.
//
// Returns storage.VectorCache interface to enforce abstraction.
func NewVectorCache(backend *Backend, model string) (storage.VectorCache, error) {
	if backend == nil {
		return nil, storage.ErrBackendRequired
	}
	return &VectorCache{backend: backend, model: model}, nil
}

// Get retrieves the cached embedding for a content ID.
func (c *VectorCache) Get(ctx context.Context, id core.ID) ([]float32, error) {
	var vector []float32

	err := c.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEmbeddingKey(id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			entry, err := storage.UnmarshalCachedEmbedding(val)
			if err != nil {
				return err
			}
			if entry.Model != c.model {
				return storage.ErrNotFound
			}
			vector = entry.Vector
			return nil
		})
	}, false)

	if err != nil {
		return nil, err
	}
	return vector, nil
}

// Put stores the embedding for a content ID.
func (c *VectorCache) Put(ctx context.Context, id core.ID, vector []float32) error {
	entry := &storage.CachedEmbedding{Model: c.model, Vector: vector}
	data := storage.MarshalCachedEmbedding(entry)

	return c.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeEmbeddingKey(id), data); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close closes the underlying backend.
func (c *VectorCache) Close() error {
	return c.backend.Close()
}
