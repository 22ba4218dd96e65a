package offline

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wagertrack/wagertrack/internal/client/storage/memory"
)

func newTestQueue(t *testing.T) (*Queue, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	q := NewQueue(memory.New(), slog.Default())
	q.now = clock.Now
	return q, clock
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func enqueue(t *testing.T, q *Queue, id string) *PendingWrite {
	t.Helper()

	write := &PendingWrite{
		ID:             id,
		Kind:           KindCreateBet,
		Payload:        json.RawMessage(`{}`),
		IdempotencyKey: id + "-key",
	}
	require.NoError(t, q.Enqueue(context.Background(), write))
	return write
}

func TestQueueFIFOOrder(t *testing.T) {
	ctx := context.Background()
	q, clock := newTestQueue(t)

	enqueue(t, q, "first")
	clock.Advance(time.Second)
	enqueue(t, q, "second")
	clock.Advance(time.Second)
	enqueue(t, q, "third")

	items, err := q.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "first", items[0].ID)
	assert.Equal(t, "second", items[1].ID)
	assert.Equal(t, "third", items[2].ID)
}

func TestQueueEnqueueStampsTime(t *testing.T) {
	ctx := context.Background()
	q, clock := newTestQueue(t)

	enqueue(t, q, "w1")

	items, err := q.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, clock.Now(), items[0].EnqueuedAt)
}

func TestQueueLen(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestQueue(t)

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	enqueue(t, q, "w1")
	enqueue(t, q, "w2")

	n, err = q.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestQueueRemove(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestQueue(t)

	enqueue(t, q, "w1")
	enqueue(t, q, "w2")

	require.NoError(t, q.Remove(ctx, "w1"))

	items, err := q.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "w2", items[0].ID)

	// Removing an absent id is a no-op.
	require.NoError(t, q.Remove(ctx, "w1"))
}

func TestQueueIncrementRetry(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestQueue(t)

	enqueue(t, q, "w1")

	for want := 1; want <= 3; want++ {
		retries, err := q.IncrementRetry(ctx, "w1")
		require.NoError(t, err)
		assert.Equal(t, want, retries)
	}

	_, err := q.IncrementRetry(ctx, "absent")
	assert.ErrorIs(t, err, ErrWriteNotFound)
}

func TestQueueUpdatePayload(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestQueue(t)

	enqueue(t, q, "w1")

	require.NoError(t, q.UpdatePayload(ctx, "w1", json.RawMessage(`{"amount":75}`)))

	items, err := q.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.JSONEq(t, `{"amount":75}`, string(items[0].Payload))

	err = q.UpdatePayload(ctx, "absent", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrWriteNotFound)
}

func TestQueueClear(t *testing.T) {
	ctx := context.Background()
	q, _ := newTestQueue(t)

	enqueue(t, q, "w1")
	enqueue(t, q, "w2")

	require.NoError(t, q.Clear(ctx))

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestQueuePruneFailed(t *testing.T) {
	ctx := context.Background()
	q, clock := newTestQueue(t)

	enqueue(t, q, "old-failed")
	for range 3 {
		_, err := q.IncrementRetry(ctx, "old-failed")
		require.NoError(t, err)
	}

	clock.Advance(8 * 24 * time.Hour)

	enqueue(t, q, "fresh-failed")
	for range 3 {
		_, err := q.IncrementRetry(ctx, "fresh-failed")
		require.NoError(t, err)
	}
	enqueue(t, q, "healthy")

	pruned, err := q.PruneFailed(ctx, 7*24*time.Hour, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	items, err := q.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "fresh-failed", items[0].ID)
	assert.Equal(t, "healthy", items[1].ID)
}
