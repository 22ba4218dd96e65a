package offline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wagertrack/wagertrack/internal/client/storage"
	"github.com/wagertrack/wagertrack/internal/models"
)

// keyRecords is the sentinel key the local record list is persisted under.
const keyRecords = "offline_bets"

// RecordStore manages bets created while offline. Each record carries a
// locally-minted id (reserved prefix, so it can never collide with a server
// id) and a synced flag the coordinator flips once the matching pending
// write has been replayed.
type RecordStore struct {
	store  storage.KVStore
	queue  *Queue
	logger *slog.Logger
	mu     sync.Mutex
	now    func() time.Time
}

// NewRecordStore creates a record store. The queue is a hard dependency:
// record creation and queue enqueuement are one unit of work.
func NewRecordStore(store storage.KVStore, queue *Queue, logger *slog.Logger) *RecordStore {
	return &RecordStore{
		store:  store,
		queue:  queue,
		logger: logger,
		now:    time.Now,
	}
}

func (r *RecordStore) load(ctx context.Context) ([]models.LocalBet, error) {
	var records []models.LocalBet
	err := r.store.Get(ctx, keyRecords, &records)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load local records: %w", err)
	}
	return records, nil
}

func (r *RecordStore) save(ctx context.Context, records []models.LocalBet) error {
	if err := r.store.Set(ctx, keyRecords, records); err != nil {
		return fmt.Errorf("failed to save local records: %w", err)
	}
	return nil
}

// CreateRecord mints a local record for the payload and enqueues the
// matching create write as one unit of work. The two share an id; the write
// additionally carries a fresh idempotency key so retried replays cannot
// create duplicate server records. If the enqueue fails the record is rolled
// back, so the 1:1 pairing between records and create writes holds.
func (r *RecordStore) CreateRecord(ctx context.Context, payload models.CreateBetData) (*models.LocalBet, *PendingWrite, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	record := models.LocalBet{
		CreateBetData: payload,
		ID:            models.NewOfflineID(now),
		CreatedAt:     now,
		Synced:        false,
	}

	records, err := r.load(ctx)
	if err != nil {
		return nil, nil, err
	}
	records = append(records, record)
	if err := r.save(ctx, records); err != nil {
		return nil, nil, err
	}

	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal record payload: %w", err)
	}
	write := &PendingWrite{
		ID:             record.ID,
		Kind:           KindCreateBet,
		Payload:        rawPayload,
		IdempotencyKey: uuid.NewString(),
		EnqueuedAt:     now,
	}
	if err := r.queue.Enqueue(ctx, write); err != nil {
		// Roll the record back; a record without its replay job would never
		// reach the server.
		if rbErr := r.save(ctx, records[:len(records)-1]); rbErr != nil {
			r.logger.Warn("failed to roll back record after enqueue failure",
				"id", record.ID, "error", rbErr)
		}
		return nil, nil, fmt.Errorf("failed to enqueue create write: %w", err)
	}

	r.logger.Info("created offline record", "id", record.ID, "sport", payload.Sport)
	return &record, write, nil
}

// Records returns every local record, synced or not.
func (r *RecordStore) Records(ctx context.Context) ([]models.LocalBet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// UnsyncedRecords returns the records not yet acknowledged by the server.
// These are merged into collection reads so offline-created bets are visible
// immediately, never hidden until synced.
func (r *RecordStore) UnsyncedRecords(ctx context.Context) ([]models.LocalBet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	unsynced := make([]models.LocalBet, 0, len(records))
	for _, record := range records {
		if !record.Synced {
			unsynced = append(unsynced, record)
		}
	}
	return unsynced, nil
}

// UpdateRecord applies mutate to the record with the given id.
func (r *RecordStore) UpdateRecord(ctx context.Context, id string, mutate func(*models.LocalBet)) (*models.LocalBet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].ID == id {
			mutate(&records[i])
			if err := r.save(ctx, records); err != nil {
				return nil, err
			}
			updated := records[i]
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, id)
}

// MarkSynced flips the record's synced flag. The record stays in the list so
// the user keeps seeing their history; removal is a separate, explicit step.
func (r *RecordStore) MarkSynced(ctx context.Context, id string) error {
	_, err := r.UpdateRecord(ctx, id, func(record *models.LocalBet) {
		record.Synced = true
	})
	return err
}

// RemoveRecord deletes the record with the given id. Used both for
// user-initiated deletes of unsynced records and for GC of old synced ones.
func (r *RecordStore) RemoveRecord(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	found := false
	for _, record := range records {
		if record.ID == id {
			found = true
			continue
		}
		kept = append(kept, record)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrRecordNotFound, id)
	}
	return r.save(ctx, kept)
}

// Clear drops every local record.
func (r *RecordStore) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(ctx, nil)
}

// PruneSynced garbage-collects records that have been synced and aged past
// the retention window. Returns the number of records removed.
func (r *RecordStore) PruneSynced(ctx context.Context, olderThan time.Duration) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := r.now().Add(-olderThan)
	kept := records[:0]
	pruned := 0
	for _, record := range records {
		if record.Synced && record.CreatedAt.Before(cutoff) {
			pruned++
			continue
		}
		kept = append(kept, record)
	}
	if pruned == 0 {
		return 0, nil
	}
	if err := r.save(ctx, kept); err != nil {
		return 0, err
	}

	r.logger.Info("pruned synced records", "count", pruned)
	return pruned, nil
}
