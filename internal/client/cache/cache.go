// Package cache adds per-entry expiration on top of the durable key-value
// store. Expiry is lazy: an expired entry is deleted the first time it is
// read, so no background sweep is required for correctness. ClearExpired
// exists only to bound storage growth.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wagertrack/wagertrack/internal/client/storage"
)

// keyPrefix namespaces cache entries inside the shared kv store, so the
// expiry sweep never touches queue or record keys.
const keyPrefix = "cache_"

// Outcome says why a Get returned what it did, so callers (and tests) can
// distinguish a hit from the several flavors of miss instead of getting a
// silent nil.
type Outcome int

const (
	// Hit means the entry existed and had not expired.
	Hit Outcome = iota
	// Miss means no entry exists under the key.
	Miss
	// Expired means the entry existed but its TTL had elapsed; the key has
	// been removed.
	Expired
	// StorageError means the underlying store failed; treated as a miss by
	// callers, but reported distinctly.
	StorageError
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Expired:
		return "expired"
	case StorageError:
		return "storage_error"
	default:
		return "unknown"
	}
}

// Entry wraps a cached value with its storage and expiry times. ExpiresAt nil
// means the entry never expires.
type Entry struct {
	Data      json.RawMessage `json:"data"`
	StoredAt  time.Time       `json:"stored_at"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
}

// expired reports whether the entry's TTL has elapsed at instant now.
func (e *Entry) expired(now time.Time) bool {
	return e.ExpiresAt != nil && now.After(*e.ExpiresAt)
}

// Cache is the TTL layer over a KVStore. It is agnostic of what is cached
// and for how long; TTL policy per data domain belongs to the caller.
type Cache struct {
	store  storage.KVStore
	logger *slog.Logger
	now    func() time.Time
}

// New creates a cache over the given store.
func New(store storage.KVStore, logger *slog.Logger) *Cache {
	return &Cache{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Set stores data under key with the given TTL. A non-positive TTL stores the
// entry without expiry.
func (c *Cache) Set(ctx context.Context, key string, data any, ttl time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data for %q: %w", key, err)
	}

	now := c.now()
	entry := Entry{
		Data:     raw,
		StoredAt: now,
	}
	if ttl > 0 {
		expiresAt := now.Add(ttl)
		entry.ExpiresAt = &expiresAt
	}

	if err := c.store.Set(ctx, keyPrefix+key, entry); err != nil {
		return fmt.Errorf("failed to store cache entry %q: %w", key, err)
	}
	return nil
}

// Get loads the entry under key into out. An expired entry is deleted before
// returning Expired. Storage failures are logged and reported as
// StorageError rather than propagated, so callers degrade to "no cached
// data" instead of failing.
func (c *Cache) Get(ctx context.Context, key string, out any) Outcome {
	var entry Entry
	err := c.store.Get(ctx, keyPrefix+key, &entry)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return Miss
		}
		c.logger.Warn("cache read failed", "key", key, "error", err)
		return StorageError
	}

	if entry.expired(c.now()) {
		if err := c.store.Remove(ctx, keyPrefix+key); err != nil {
			c.logger.Warn("failed to evict expired cache entry", "key", key, "error", err)
		}
		return Expired
	}

	if err := json.Unmarshal(entry.Data, out); err != nil {
		c.logger.Warn("cache entry is corrupt", "key", key, "error", err)
		return StorageError
	}
	return Hit
}

// Remove drops the entry under key, expired or not.
func (c *Cache) Remove(ctx context.Context, key string) error {
	return c.store.Remove(ctx, keyPrefix+key)
}

// RemoveByPrefix drops every cache entry whose key starts with prefix,
// expired or not. An empty prefix drops the whole cache.
func (c *Cache) RemoveByPrefix(ctx context.Context, prefix string) error {
	keys, err := c.store.ListKeys(ctx)
	if err != nil {
		return fmt.Errorf("failed to list keys for prefix removal: %w", err)
	}

	for _, key := range keys {
		if !strings.HasPrefix(key, keyPrefix+prefix) {
			continue
		}
		if err := c.store.Remove(ctx, key); err != nil {
			return fmt.Errorf("failed to remove cache entry %q: %w", key, err)
		}
	}
	return nil
}

// ClearExpired sweeps every cache entry and removes the expired ones.
// Returns the number of entries removed.
func (c *Cache) ClearExpired(ctx context.Context) (int, error) {
	keys, err := c.store.ListKeys(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list keys for expiry sweep: %w", err)
	}

	now := c.now()
	removed := 0
	for _, key := range keys {
		if !strings.HasPrefix(key, keyPrefix) {
			continue
		}

		var entry Entry
		if err := c.store.Get(ctx, key, &entry); err != nil {
			// Entry vanished or is unreadable; nothing to sweep.
			continue
		}
		if !entry.expired(now) {
			continue
		}

		if err := c.store.Remove(ctx, key); err != nil {
			c.logger.Warn("failed to remove expired cache entry", "key", key, "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}
