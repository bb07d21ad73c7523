// Package connectivity tracks backend reachability for the driver app. A
// periodic probe flips an online flag; subscribers are told about
// transitions only, never about steady state.
package connectivity

import (
	"context"
	"sync"
	"time"

	"github.com/logifrete/protocolos/internal/logging"
)

// Pinger probes the backend. The remote API client satisfies this.
type Pinger interface {
	Ping(ctx context.Context) error
}

const probeTimeout = 3 * time.Second

// Monitor is the reachability observer. It holds no retry logic of its own;
// subscribers decide what a transition means.
type Monitor struct {
	pinger   Pinger
	interval time.Duration
	log      logging.Logger

	mu          sync.Mutex
	online      bool
	nextID      int
	subscribers map[int]func(online bool)
}

func NewMonitor(pinger Pinger, interval time.Duration, log logging.Logger) *Monitor {
	return &Monitor{
		pinger:      pinger,
		interval:    interval,
		log:         log.With("component", "connectivity"),
		subscribers: make(map[int]func(online bool)),
	}
}

// Online reports the last observed reachability state.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribe registers a transition callback and returns an unsubscribe
// function. Callbacks run synchronously on the goroutine that observed the
// transition.
func (m *Monitor) Subscribe(fn func(online bool)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subscribers[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subscribers, id)
		m.mu.Unlock()
	}
}

// SetOnline records the reachability state and, on a transition, fires the
// subscribers. Exposed so tests and manual commands can force a state.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	subs := make([]func(bool), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	m.log.Info(context.Background(), "reachability changed", "online", online)
	for _, fn := range subs {
		fn(online)
	}
}

// Run probes the backend at the configured interval until ctx is done.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
			err := m.pinger.Ping(probeCtx)
			cancel()

			m.SetOnline(err == nil)

		case <-ctx.Done():
			return
		}
	}
}
