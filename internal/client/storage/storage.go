package storage

import (
	"context"
	"encoding/json"
)

//go:generate moq -out kvstore_mock.go . KVStore

// KVStore is the flat, string-keyed durable map every other engine component
// is built on. Values are marshaled to and from JSON transparently. The store
// has no expiry and no multi-key transactions: callers that touch several
// keys together must tolerate partial application and design for idempotent
// replay.
type KVStore interface {
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value any) error

	// Get unmarshals the value stored under key into out.
	// Returns ErrKeyNotFound if the key is absent.
	Get(ctx context.Context, key string, out any) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Clear removes all keys.
	Clear(ctx context.Context) error

	// ListKeys returns every stored key.
	ListKeys(ctx context.Context) ([]string, error)

	// Close releases the underlying database.
	Close() error
}

// ComputeStorageSize sums the serialized length of every stored value, in
// bytes. The engine enforces no size limit; callers use this to surface
// storage pressure to the user.
func ComputeStorageSize(ctx context.Context, s KVStore) (int64, error) {
	keys, err := s.ListKeys(ctx)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, key := range keys {
		var raw json.RawMessage
		if err := s.Get(ctx, key, &raw); err != nil {
			// A key removed between listing and reading is not an error.
			continue
		}
		total += int64(len(raw))
	}
	return total, nil
}
