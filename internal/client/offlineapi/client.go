// Package offlineapi is the single entry point the rest of the application
// talks to. Every operation works offline when it can: reads fall back to
// cached and locally-created data, writes that cannot reach the server are
// queued for replay, and the caller never deals with connectivity directly.
package offlineapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/wagertrack/wagertrack/internal/client/api"
	"github.com/wagertrack/wagertrack/internal/client/auth"
	"github.com/wagertrack/wagertrack/internal/client/cache"
	"github.com/wagertrack/wagertrack/internal/client/netmon"
	"github.com/wagertrack/wagertrack/internal/client/offline"
	syncpkg "github.com/wagertrack/wagertrack/internal/client/sync"
	"github.com/wagertrack/wagertrack/internal/client/storage"
)

var (
	// ErrUnavailableOffline indicates an operation that needs the server
	// while the client is offline and no cached or local data can serve it.
	ErrUnavailableOffline = errors.New("unavailable offline")

	// ErrReceiptQueued indicates the receipt could not be uploaded now and
	// was queued for the next sync. The upload is not lost, just deferred.
	ErrReceiptQueued = errors.New("receipt queued for upload")

	// ErrProfileUpdateQueued indicates a profile update was queued offline
	// with no cached profile to patch. The change lands on the next sync.
	ErrProfileUpdateQueued = errors.New("profile update queued for sync")
)

// Retention windows for local maintenance.
const (
	// syncedRecordRetention is how long a synced local record is kept before
	// garbage collection. The server copy is authoritative by then.
	syncedRecordRetention = 30 * 24 * time.Hour

	// failedWriteRetention is how long a write that exhausted its retries may
	// linger (only possible after a crash mid-drain) before being pruned.
	failedWriteRetention = 7 * 24 * time.Hour
)

// Client is the offline-first façade over the API client, cache, queue and
// local record store.
type Client struct {
	apiClient   api.ClientAPI
	authService *auth.Service
	cache       *cache.Cache
	queue       *offline.Queue
	records     *offline.RecordStore
	coordinator *syncpkg.Coordinator
	monitor     *netmon.Monitor
	store       storage.KVStore
	logger      *slog.Logger
}

// Config carries the collaborators for New. All fields are required.
type Config struct {
	APIClient   api.ClientAPI
	AuthService *auth.Service
	Cache       *cache.Cache
	Queue       *offline.Queue
	Records     *offline.RecordStore
	Coordinator *syncpkg.Coordinator
	Monitor     *netmon.Monitor
	Store       storage.KVStore
	Logger      *slog.Logger
}

// New wires the façade together and subscribes the coordinator to
// connectivity transitions: regaining the connection starts a drain without
// any caller involvement.
func New(cfg Config) *Client {
	c := &Client{
		apiClient:   cfg.APIClient,
		authService: cfg.AuthService,
		cache:       cfg.Cache,
		queue:       cfg.Queue,
		records:     cfg.Records,
		coordinator: cfg.Coordinator,
		monitor:     cfg.Monitor,
		store:       cfg.Store,
		logger:      cfg.Logger,
	}

	c.monitor.OnTransition(func(online bool) {
		if !online {
			return
		}
		c.logger.Info("connection restored, starting sync")
		c.coordinator.SyncNow(context.Background())
	})

	return c
}

// Start launches background connectivity monitoring.
func (c *Client) Start(ctx context.Context) {
	c.monitor.Start(ctx)
}

// Close stops background work and releases the store.
func (c *Client) Close() error {
	c.monitor.Stop()
	return c.store.Close()
}

// Login authenticates, caches the user's profile so it survives an offline
// restart, and kicks off a drain of anything queued while logged out.
func (c *Client) Login(ctx context.Context, email, password string) (*auth.AuthData, error) {
	data, err := c.authService.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := c.refreshProfile(ctx); err != nil {
		c.logger.Warn("failed to cache profile after login", "error", err)
	}
	go c.coordinator.SyncNow(context.WithoutCancel(ctx))
	return data, nil
}

// Register creates an account and establishes a session.
func (c *Client) Register(ctx context.Context, email, password string) (*auth.AuthData, error) {
	return c.authService.Register(ctx, email, password)
}

// Logout ends the session and wipes the offline data with it: the cache,
// queued writes and local records all belong to the account that just left,
// and must not leak into the next one.
func (c *Client) Logout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		return err
	}
	return c.ClearOfflineData(ctx)
}

// RestoreSession reactivates a persisted session if one is still valid.
func (c *Client) RestoreSession(ctx context.Context) (*auth.AuthData, error) {
	return c.authService.Restore(ctx)
}

// SyncNow runs one drain pass immediately.
func (c *Client) SyncNow(ctx context.Context) *syncpkg.Result {
	return c.coordinator.SyncNow(ctx)
}

// GetSyncStatus returns the current sync snapshot.
func (c *Client) GetSyncStatus(ctx context.Context) (*syncpkg.Status, error) {
	return c.coordinator.Status(ctx)
}

// OnSyncComplete registers a callback fired after every drain pass that
// replayed or terminally failed at least one write.
func (c *Client) OnSyncComplete(callback func(syncpkg.Result)) {
	c.coordinator.OnComplete(callback)
}

// IsOnline reports the last known connectivity state.
func (c *Client) IsOnline() bool {
	return c.monitor.IsOnline()
}

// ForceFullSync drains the queue and refetches every cached domain from the
// server, replacing whatever TTLs were still running. Requires connectivity.
// Each domain refresh gets a couple of retries with backoff; a full refresh
// is an explicit user action and should ride out transient failures.
func (c *Client) ForceFullSync(ctx context.Context) error {
	if !c.monitor.IsOnline() {
		return ErrUnavailableOffline
	}

	c.coordinator.SyncNow(ctx)

	refreshers := []func(context.Context) error{
		c.refreshBets,
		c.refreshBetStats,
		c.refreshProfile,
		c.refreshAnalytics,
		c.refreshInsights,
	}
	var errs []error
	for _, refresh := range refreshers {
		backoff := retry.WithMaxRetries(2, retry.NewFibonacci(200*time.Millisecond))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			return retry.RetryableError(refresh(ctx))
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ClearOfflineData wipes the cache, the pending-write queue and the local
// record store. The session survives; use Logout for that.
func (c *Client) ClearOfflineData(ctx context.Context) error {
	if err := c.cache.RemoveByPrefix(ctx, ""); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	if err := c.queue.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear pending writes: %w", err)
	}
	if err := c.records.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear local records: %w", err)
	}
	c.logger.Info("cleared offline data")
	return nil
}

// StorageInfo describes what the engine currently keeps on disk.
type StorageInfo struct {
	UsedBytes     int64
	Used          string
	PendingWrites int
	LocalRecords  int
}

// GetStorageInfo reports local storage usage.
func (c *Client) GetStorageInfo(ctx context.Context) (*StorageInfo, error) {
	size, err := storage.ComputeStorageSize(ctx, c.store)
	if err != nil {
		return nil, fmt.Errorf("failed to compute storage size: %w", err)
	}
	pending, err := c.queue.Len(ctx)
	if err != nil {
		return nil, err
	}
	records, err := c.records.Records(ctx)
	if err != nil {
		return nil, err
	}

	return &StorageInfo{
		UsedBytes:     size,
		Used:          formatBytes(size),
		PendingWrites: pending,
		LocalRecords:  len(records),
	}, nil
}

// Maintain runs the periodic housekeeping: sweep expired cache entries,
// garbage-collect old synced records and prune orphaned failed writes.
func (c *Client) Maintain(ctx context.Context) error {
	swept, err := c.cache.ClearExpired(ctx)
	if err != nil {
		return fmt.Errorf("cache sweep failed: %w", err)
	}
	prunedRecords, err := c.records.PruneSynced(ctx, syncedRecordRetention)
	if err != nil {
		return fmt.Errorf("record gc failed: %w", err)
	}
	prunedWrites, err := c.queue.PruneFailed(ctx, failedWriteRetention, syncpkg.DefaultRetryLimit)
	if err != nil {
		return fmt.Errorf("queue prune failed: %w", err)
	}

	c.logger.Info("maintenance finished",
		"cache_swept", swept, "records_pruned", prunedRecords, "writes_pruned", prunedWrites)
	return nil
}

// readThrough serves a cacheable read: online it fetches from the server and
// refreshes the cache; offline (or when the fetch fails) it falls back to
// the cached copy. With neither, it reports ErrUnavailableOffline.
func readThrough[T any](ctx context.Context, c *Client, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	var fetchErr error
	if c.monitor.IsOnline() {
		value, err := fetch(ctx)
		if err == nil {
			if cacheErr := c.cache.Set(ctx, key, value, ttl); cacheErr != nil {
				c.logger.Warn("failed to cache fetched data", "key", key, "error", cacheErr)
			}
			return value, nil
		}
		fetchErr = err
		c.logger.Warn("fetch failed, falling back to cache", "key", key, "error", err)
	}

	var cached T
	if outcome := c.cache.Get(ctx, key, &cached); outcome == cache.Hit {
		return cached, nil
	}

	if fetchErr != nil {
		return zero, fmt.Errorf("%w: %v", ErrUnavailableOffline, fetchErr)
	}
	return zero, ErrUnavailableOffline
}

// formatBytes renders a byte count for humans.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
