package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagertrack/wagertrack/internal/client/storage"
	"github.com/wagertrack/wagertrack/internal/client/storage/memory"
)

func TestComputeStorageSize(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	size, err := storage.ComputeStorageSize(ctx, store)
	require.NoError(t, err)
	assert.Zero(t, size)

	require.NoError(t, store.Set(ctx, "a", "xx"))     // "xx" -> 4 bytes
	require.NoError(t, store.Set(ctx, "b", 12345))    // 12345 -> 5 bytes
	require.NoError(t, store.Set(ctx, "c", []int{1})) // [1] -> 3 bytes

	size, err = storage.ComputeStorageSize(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, int64(12), size)
}

func TestComputeStorageSizeStoreError(t *testing.T) {
	ctx := context.Background()

	mock := &storage.KVStoreMock{
		ListKeysFunc: func(ctx context.Context) ([]string, error) {
			return nil, assert.AnError
		},
	}

	_, err := storage.ComputeStorageSize(ctx, mock)
	assert.ErrorIs(t, err, assert.AnError)
}
