package offline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/wagertrack/wagertrack/internal/client/storage"
)

// keyQueue is the sentinel key the whole queue is persisted under.
const keyQueue = "sync_queue"

// Queue is the ordered, durable list of pending writes. Replay order is
// strictly FIFO by enqueue time; there is no priority. The store has no
// transactions, so every mutation is a read-modify-write of the full list,
// serialized by an in-process mutex.
type Queue struct {
	store  storage.KVStore
	logger *slog.Logger
	mu     sync.Mutex
	now    func() time.Time
}

// NewQueue creates a queue over the given store.
func NewQueue(store storage.KVStore, logger *slog.Logger) *Queue {
	return &Queue{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// load reads the persisted list. An absent key means an empty queue.
func (q *Queue) load(ctx context.Context) ([]PendingWrite, error) {
	var items []PendingWrite
	err := q.store.Get(ctx, keyQueue, &items)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load sync queue: %w", err)
	}
	return items, nil
}

func (q *Queue) save(ctx context.Context, items []PendingWrite) error {
	if err := q.store.Set(ctx, keyQueue, items); err != nil {
		return fmt.Errorf("failed to save sync queue: %w", err)
	}
	return nil
}

// Enqueue appends item to the tail of the queue. EnqueuedAt is stamped here
// if the caller left it zero.
func (q *Queue) Enqueue(ctx context.Context, item *PendingWrite) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if item.EnqueuedAt.IsZero() {
		item.EnqueuedAt = q.now()
	}

	items, err := q.load(ctx)
	if err != nil {
		return err
	}
	items = append(items, *item)
	if err := q.save(ctx, items); err != nil {
		return err
	}

	q.logger.Debug("enqueued pending write", "id", item.ID, "kind", item.Kind)
	return nil
}

// List returns a snapshot of the queue in FIFO order (oldest first).
func (q *Queue) List(ctx context.Context) ([]PendingWrite, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.load(ctx)
}

// Len returns the number of queued writes.
func (q *Queue) Len(ctx context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	items, err := q.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Remove deletes the write with the given id. Removing an absent id is a
// no-op: a crash between replay and removal must not fail the next drain.
func (q *Queue) Remove(ctx context.Context, id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	items, err := q.load(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return q.save(ctx, kept)
}

// UpdatePayload replaces the payload of the queued write with the given id,
// keeping its position and retry count. Returns ErrWriteNotFound if the id
// is not queued. Used when an unsynced record is edited: the queued create
// must carry the edited data, or the replay would resurrect the old version.
func (q *Queue) UpdatePayload(ctx context.Context, id string, payload json.RawMessage) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	items, err := q.load(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == id {
			items[i].Payload = payload
			return q.save(ctx, items)
		}
	}
	return fmt.Errorf("%w: %s", ErrWriteNotFound, id)
}

// IncrementRetry bumps the retry counter of the write with the given id and
// returns the new count. Returns ErrWriteNotFound if the id is not queued.
func (q *Queue) IncrementRetry(ctx context.Context, id string) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	items, err := q.load(ctx)
	if err != nil {
		return 0, err
	}

	for i := range items {
		if items[i].ID == id {
			items[i].RetryCount++
			if err := q.save(ctx, items); err != nil {
				return 0, err
			}
			return items[i].RetryCount, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrWriteNotFound, id)
}

// Clear drops every queued write.
func (q *Queue) Clear(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.save(ctx, nil)
}

// PruneFailed drops writes that already exhausted their retries and have
// been sitting in the queue longer than olderThan. They only exist when a
// crash interrupted a drain between the ceiling check and removal.
func (q *Queue) PruneFailed(ctx context.Context, olderThan time.Duration, retryLimit int) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	items, err := q.load(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := q.now().Add(-olderThan)
	kept := items[:0]
	pruned := 0
	for _, item := range items {
		if item.RetryCount >= retryLimit && item.EnqueuedAt.Before(cutoff) {
			pruned++
			continue
		}
		kept = append(kept, item)
	}
	if pruned == 0 {
		return 0, nil
	}
	if err := q.save(ctx, kept); err != nil {
		return 0, err
	}

	q.logger.Info("pruned failed pending writes", "count", pruned)
	return pruned, nil
}
