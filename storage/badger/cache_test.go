package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/Ajaykumar12345677/lexilawbackend/core"
	"github.com/Ajaykumar12345677/lexilawbackend/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorCache_PutGet(t *testing.T) {
	cache, err := NewMemoryVectorCache("all-minilm")
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	id := core.IDFromContent("theft of movable property")
	vector := []float32{0.1, 0.2, 0.3}

	require.NoError(t, cache.Put(ctx, id, vector))

	got, err := cache.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, vector, got)
}

func TestVectorCache_Miss(t *testing.T) {
	cache, err := NewMemoryVectorCache("all-minilm")
	require.NoError(t, err)
	defer cache.Close()

	_, err = cache.Get(context.Background(), core.ID(12345))
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestVectorCache_ModelMismatch(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	id := core.IDFromContent("arrest without warrant")

	writer, err := NewVectorCache(backend, "all-minilm")
	require.NoError(t, err)
	require.NoError(t, writer.Put(ctx, id, []float32{0.5, 0.5}))

	// Same backend, different model: read must miss
	reader, err := NewVectorCache(backend, "text-embedding-3-small")
	require.NoError(t, err)

	_, err = reader.Get(ctx, id)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestVectorCache_Overwrite(t *testing.T) {
	cache, err := NewMemoryVectorCache("all-minilm")
	require.NoError(t, err)
	defer cache.Close()

	ctx := context.Background()
	id := core.ID(7)

	require.NoError(t, cache.Put(ctx, id, []float32{1, 0}))
	require.NoError(t, cache.Put(ctx, id, []float32{0, 1}))

	got, err := cache.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1}, got)
}

func TestNewVectorCache_NilBackend(t *testing.T) {
	_, err := NewVectorCache(nil, "all-minilm")
	assert.Equal(t, storage.ErrBackendRequired, err)
}
