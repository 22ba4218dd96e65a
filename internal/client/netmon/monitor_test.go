package netmon

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitorStartsOnline(t *testing.T) {
	m := New(&PingerMock{}, time.Minute, slog.Default())
	assert.True(t, m.IsOnline())
}

func TestMonitorSetOnlineFiresTransitions(t *testing.T) {
	m := New(&PingerMock{}, time.Minute, slog.Default())

	var mu sync.Mutex
	var seen []bool
	done := make(chan struct{}, 2)
	m.OnTransition(func(online bool) {
		mu.Lock()
		seen = append(seen, online)
		mu.Unlock()
		done <- struct{}{}
	})

	m.SetOnline(false)
	waitFor(t, done)
	assert.False(t, m.IsOnline())

	m.SetOnline(true)
	waitFor(t, done)
	assert.True(t, m.IsOnline())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []bool{false, true}, seen)
}

func TestMonitorNoCallbackWithoutChange(t *testing.T) {
	m := New(&PingerMock{}, time.Minute, slog.Default())

	fired := make(chan struct{}, 1)
	m.OnTransition(func(online bool) {
		fired <- struct{}{}
	})

	// Already online; setting online again is not a transition.
	m.SetOnline(true)

	select {
	case <-fired:
		t.Fatal("callback fired without a state change")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMonitorProbeLoop(t *testing.T) {
	pinger := &PingerMock{
		PingFunc: func(ctx context.Context) error {
			return assert.AnError
		},
	}
	m := New(pinger, 10*time.Millisecond, slog.Default())

	wentOffline := make(chan struct{}, 1)
	m.OnTransition(func(online bool) {
		if !online {
			wentOffline <- struct{}{}
		}
	})

	m.Start(context.Background())
	defer m.Stop()

	// The immediate probe fails, flipping the state to offline.
	waitFor(t, wentOffline)
	assert.False(t, m.IsOnline())
	assert.NotEmpty(t, pinger.PingCalls())
}

func TestMonitorRecovery(t *testing.T) {
	var mu sync.Mutex
	healthy := false
	pinger := &PingerMock{
		PingFunc: func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			if healthy {
				return nil
			}
			return assert.AnError
		},
	}
	m := New(pinger, 10*time.Millisecond, slog.Default())

	wentOffline := make(chan struct{}, 1)
	backOnline := make(chan struct{}, 1)
	m.OnTransition(func(online bool) {
		if online {
			select {
			case backOnline <- struct{}{}:
			default:
			}
		} else {
			select {
			case wentOffline <- struct{}{}:
			default:
			}
		}
	})

	m.Start(context.Background())
	defer m.Stop()

	waitFor(t, wentOffline)

	mu.Lock()
	healthy = true
	mu.Unlock()

	waitFor(t, backOnline)
	assert.True(t, m.IsOnline())
}

func TestMonitorStopIsIdempotent(t *testing.T) {
	m := New(&PingerMock{PingFunc: func(ctx context.Context) error { return nil }}, time.Minute, slog.Default())
	m.Start(context.Background())

	m.Stop()
	m.Stop()

	// Stop blocks until the loop exits, so done is closed by the time it
	// returns.
	select {
	case <-m.done:
	default:
		t.Fatal("Stop returned before the poll loop exited")
	}
}

func TestMonitorStopWithoutStart(t *testing.T) {
	m := New(&PingerMock{}, time.Minute, slog.Default())

	returned := make(chan struct{})
	go func() {
		m.Stop()
		close(returned)
	}()

	waitFor(t, returned)
}

func waitFor(t *testing.T, ch chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		require.Fail(t, "timed out waiting for transition")
	}
}
