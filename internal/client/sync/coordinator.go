// Package sync drains the pending-write queue against the backend. The
// coordinator is the only component that replays queued writes; everything
// else just enqueues and asks for status.
package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wagertrack/wagertrack/internal/client/api"
	"github.com/wagertrack/wagertrack/internal/client/cache"
	"github.com/wagertrack/wagertrack/internal/client/offline"
	"github.com/wagertrack/wagertrack/internal/client/storage"
	"github.com/wagertrack/wagertrack/internal/models"
)

// keyLastSync is the sentinel key the last completed sync time is stored under.
const keyLastSync = "last_sync"

// DefaultRetryLimit is the per-write retry ceiling. A write that fails this
// many times is dropped from the queue and surfaced as a terminal failure.
const DefaultRetryLimit = 3

// ConnectivitySource reports the last known connectivity state.
type ConnectivitySource interface {
	IsOnline() bool
}

// Result is the outcome of one drain pass.
type Result struct {
	// Success is true when the pass ran and nothing failed terminally.
	Success bool
	// Skipped is true when the pass did not run: offline, or another
	// drain was already in flight.
	Skipped bool
	// SyncedCount is the number of writes replayed and removed.
	SyncedCount int
	// FailedCount is the number of writes dropped at the retry ceiling.
	FailedCount int
	// Errors describes each terminal failure.
	Errors []string
}

// Status is a point-in-time snapshot of the engine's sync state.
type Status struct {
	LastSyncAt   *time.Time
	PendingCount int
	IsOnline     bool
	IsSyncing    bool
}

// Coordinator replays pending writes in FIFO order. At most one drain runs
// at a time; concurrent callers get a skipped result instead of blocking,
// which keeps replay strictly ordered and writes exactly-once per pass.
type Coordinator struct {
	apiClient    api.ClientAPI
	queue        *offline.Queue
	records      *offline.RecordStore
	cache        *cache.Cache
	connectivity ConnectivitySource
	store        storage.KVStore
	logger       *slog.Logger

	retryLimit int
	now        func() time.Time

	draining atomic.Bool

	mu        sync.Mutex
	listeners []func(Result)
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithRetryLimit overrides the per-write retry ceiling.
func WithRetryLimit(limit int) Option {
	return func(c *Coordinator) {
		if limit > 0 {
			c.retryLimit = limit
		}
	}
}

// NewCoordinator creates a coordinator over the queue, record store and cache.
func NewCoordinator(
	apiClient api.ClientAPI,
	queue *offline.Queue,
	records *offline.RecordStore,
	dataCache *cache.Cache,
	connectivity ConnectivitySource,
	store storage.KVStore,
	logger *slog.Logger,
	opts ...Option,
) *Coordinator {
	c := &Coordinator{
		apiClient:    apiClient,
		queue:        queue,
		records:      records,
		cache:        dataCache,
		connectivity: connectivity,
		store:        store,
		logger:       logger,
		retryLimit:   DefaultRetryLimit,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnComplete registers a callback invoked after every pass that replayed or
// terminally failed at least one write. Quiet passes stay silent.
func (c *Coordinator) OnComplete(callback func(Result)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, callback)
}

// SyncNow runs one drain pass. It never returns an error: per-write failures
// are retried on later passes or, at the ceiling, reported in the result.
// Offline or already-draining passes return immediately with Skipped set.
func (c *Coordinator) SyncNow(ctx context.Context) *Result {
	if !c.connectivity.IsOnline() {
		c.logger.Debug("sync skipped, offline")
		return &Result{Success: true, Skipped: true}
	}
	if !c.draining.CompareAndSwap(false, true) {
		c.logger.Debug("sync skipped, drain already in flight")
		return &Result{Success: true, Skipped: true}
	}
	defer c.draining.Store(false)

	result := c.drain(ctx)

	if result.SyncedCount+result.FailedCount > 0 {
		c.notify(*result)
	}
	return result
}

// IsSyncing reports whether a drain pass is in flight.
func (c *Coordinator) IsSyncing() bool {
	return c.draining.Load()
}

// Status returns the current sync snapshot.
func (c *Coordinator) Status(ctx context.Context) (*Status, error) {
	pending, err := c.queue.Len(ctx)
	if err != nil {
		return nil, err
	}

	status := &Status{
		PendingCount: pending,
		IsOnline:     c.connectivity.IsOnline(),
		IsSyncing:    c.draining.Load(),
	}

	var lastSync time.Time
	err = c.store.Get(ctx, keyLastSync, &lastSync)
	switch {
	case err == nil:
		status.LastSyncAt = &lastSync
	case errors.Is(err, storage.ErrKeyNotFound):
		// never synced
	default:
		return nil, fmt.Errorf("failed to load last sync time: %w", err)
	}
	return status, nil
}

// drain replays the queue snapshot in FIFO order. Writes enqueued while the
// pass runs wait for the next one.
func (c *Coordinator) drain(ctx context.Context) *Result {
	result := &Result{Success: true}

	items, err := c.queue.List(ctx)
	if err != nil {
		// Cannot even list the queue; nothing was attempted, so the
		// whole pass fails as one unit.
		c.logger.Error("failed to list pending writes", "error", err)
		result.Success = false
		result.Errors = append(result.Errors, fmt.Sprintf("failed to list pending writes: %v", err))
		return result
	}
	if len(items) == 0 {
		c.finishPass(ctx)
		return result
	}

	c.logger.Info("draining pending writes", "count", len(items))

	for _, item := range items {
		if ctx.Err() != nil {
			result.Success = false
			result.Errors = append(result.Errors, fmt.Sprintf("drain interrupted: %v", ctx.Err()))
			break
		}

		replayErr := c.replay(ctx, &item)
		if replayErr == nil {
			if err := c.queue.Remove(ctx, item.ID); err != nil {
				c.logger.Warn("failed to remove replayed write", "id", item.ID, "error", err)
			}
			result.SyncedCount++
			continue
		}

		c.logger.Warn("failed to replay pending write",
			"id", item.ID, "kind", item.Kind, "retry", item.RetryCount, "error", replayErr)

		retries, err := c.queue.IncrementRetry(ctx, item.ID)
		if err != nil {
			c.logger.Warn("failed to bump retry count", "id", item.ID, "error", err)
			continue
		}
		if retries >= c.retryLimit {
			// Terminal: drop the write so one poison item cannot wedge
			// the queue forever.
			if err := c.queue.Remove(ctx, item.ID); err != nil {
				c.logger.Warn("failed to remove failed write", "id", item.ID, "error", err)
			}
			result.Success = false
			result.FailedCount++
			result.Errors = append(result.Errors,
				fmt.Sprintf("%s %s failed after %d attempts: %v", item.Kind, item.ID, retries, replayErr))
		}
	}

	c.finishPass(ctx)

	c.logger.Info("drain finished",
		"synced", result.SyncedCount, "failed", result.FailedCount)
	return result
}

// replay dispatches one pending write to the API.
func (c *Coordinator) replay(ctx context.Context, item *offline.PendingWrite) error {
	switch item.Kind {
	case offline.KindCreateBet:
		return c.replayCreateBet(ctx, item)
	case offline.KindUploadReceipt:
		return c.replayUploadReceipt(ctx, item)
	case offline.KindUpdateProfile:
		return c.replayUpdateProfile(ctx, item)
	default:
		return fmt.Errorf("unknown pending write kind %q", item.Kind)
	}
}

func (c *Coordinator) replayCreateBet(ctx context.Context, item *offline.PendingWrite) error {
	var data models.CreateBetData
	if err := json.Unmarshal(item.Payload, &data); err != nil {
		return fmt.Errorf("failed to decode create payload: %w", err)
	}

	bet, err := c.apiClient.CreateBet(ctx, data, item.IdempotencyKey)
	if err != nil {
		return err
	}

	// The local record keeps its offline id; only the synced flag flips.
	// Readers translate through the merged view, so the server id never
	// needs to be written back.
	if err := c.records.MarkSynced(ctx, item.ID); err != nil && !errors.Is(err, offline.ErrRecordNotFound) {
		c.logger.Warn("failed to mark record synced", "id", item.ID, "error", err)
	}

	c.logger.Info("replayed offline bet", "local_id", item.ID, "server_id", bet.ID)
	return nil
}

func (c *Coordinator) replayUploadReceipt(ctx context.Context, item *offline.PendingWrite) error {
	var receipt models.ReceiptUpload
	if err := json.Unmarshal(item.Payload, &receipt); err != nil {
		return fmt.Errorf("failed to decode receipt payload: %w", err)
	}

	result, err := c.apiClient.UploadReceipt(ctx, receipt)
	if err != nil {
		return err
	}

	c.logger.Info("replayed receipt upload", "id", item.ID, "url", result.URL)
	return nil
}

func (c *Coordinator) replayUpdateProfile(ctx context.Context, item *offline.PendingWrite) error {
	var update models.ProfileUpdate
	if err := json.Unmarshal(item.Payload, &update); err != nil {
		return fmt.Errorf("failed to decode profile payload: %w", err)
	}

	if _, err := c.apiClient.UpdateProfile(ctx, update); err != nil {
		return err
	}

	c.logger.Info("replayed profile update", "id", item.ID)
	return nil
}

// finishPass records the completion time and sweeps expired cache entries.
// Both are best effort; a failure here never fails the pass.
func (c *Coordinator) finishPass(ctx context.Context) {
	if err := c.store.Set(ctx, keyLastSync, c.now()); err != nil {
		c.logger.Warn("failed to save last sync time", "error", err)
	}
	if _, err := c.cache.ClearExpired(ctx); err != nil {
		c.logger.Warn("failed to sweep expired cache entries", "error", err)
	}
}

func (c *Coordinator) notify(result Result) {
	c.mu.Lock()
	listeners := make([]func(Result), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, listener := range listeners {
		listener(result)
	}
}
