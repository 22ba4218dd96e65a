// Package netmon tracks whether the backend is reachable. It wraps a health
// probe in a poll loop, keeps the last known state, and notifies subscribers
// on transitions. The offline-to-online edge is the trigger the sync
// coordinator drains on.
package netmon

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

//go:generate moq -out pinger_mock.go . Pinger

// Pinger reports whether the backend currently answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DefaultInterval is how often the monitor probes when none is configured.
const DefaultInterval = 30 * time.Second

// ProbeTimeout bounds a single probe so a hung probe never stalls the loop.
const ProbeTimeout = 5 * time.Second

// Monitor polls a Pinger and exposes the last known connectivity state.
// IsOnline never blocks; it reports whatever the last probe (or manual
// override) established.
type Monitor struct {
	pinger   Pinger
	logger   *slog.Logger
	interval time.Duration

	mu        sync.RWMutex
	online    bool
	callbacks []func(online bool)

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
	started  bool
}

// New creates a monitor. The state starts online: the engine assumes
// connectivity until a probe proves otherwise, matching the optimistic
// try-remote-first policy of the façade.
func New(pinger Pinger, interval time.Duration, logger *slog.Logger) *Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Monitor{
		pinger:   pinger,
		logger:   logger,
		interval: interval,
		online:   true,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the poll loop. It probes once immediately, then at the
// configured interval until Stop is called or ctx is cancelled.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	m.started = true
	m.mu.Unlock()

	go func() {
		defer close(m.done)

		m.probe(ctx)
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-m.stop:
				return
			case <-ticker.C:
				m.probe(ctx)
			}
		}
	}()
}

// Stop halts the poll loop and waits for it to exit. Safe to call more than
// once, and safe to call without Start: with no loop running there is
// nothing to wait for.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stop)
	})

	m.mu.RLock()
	started := m.started
	m.mu.RUnlock()
	if started {
		<-m.done
	}
}

// IsOnline returns the last known connectivity state without blocking.
func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// OnTransition registers a callback invoked on every state change. The
// callback runs on its own goroutine so a slow subscriber cannot stall the
// poll loop or sibling subscribers.
func (m *Monitor) OnTransition(callback func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// SetOnline overrides the connectivity state, firing transition callbacks as
// a real probe would. Used by tests and by callers that learn about
// connectivity out of band.
func (m *Monitor) SetOnline(online bool) {
	m.transition(online)
}

// probe runs one health check and records the result.
func (m *Monitor) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	err := m.pinger.Ping(pingCtx)
	m.transition(err == nil)
}

// transition records the new state and, if it changed, notifies subscribers.
// Only the offline-to-online edge matters to the sync engine; the reverse
// edge is recorded and reported but triggers no engine action, since
// in-flight requests are left to fail and fall back naturally.
func (m *Monitor) transition(online bool) {
	m.mu.Lock()
	was := m.online
	m.online = online
	callbacks := make([]func(bool), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	if was == online {
		return
	}

	m.logger.Info("connectivity changed", "online", online)
	for _, callback := range callbacks {
		go callback(online)
	}
}
