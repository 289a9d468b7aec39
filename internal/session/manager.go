package session

import (
	"context"
	"sync"
	"time"

	"health-chat/internal/kv"
)

// Manager keeps one loaded Store per device.  Stores are loaded lazily from
// the device's key namespace and evicted by Sweep when idle.
type Manager struct {
	mu       sync.Mutex
	store    kv.Store
	opts     Options
	sessions map[string]*Store
}

// NewManager returns a Manager persisting into store.
func NewManager(store kv.Store, opts Options) *Manager {
	return &Manager{
		store:    store,
		opts:     opts.withDefaults(),
		sessions: make(map[string]*Store),
	}
}

// Session returns the Store of deviceID, loading it on first use.
// initialLanguage applies only when the device has no persisted language.
// The returned store counts as active so Sweep does not unload it before the
// caller uses it.
func (m *Manager) Session(ctx context.Context, deviceID, initialLanguage string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[deviceID]; ok {
		s.markActive()
		return s
	}
	opts := m.opts
	opts.Log = m.opts.Log.With("device_id", deviceID)
	s := New(kv.NewNamespace(m.store, deviceID), opts)
	s.Load(ctx, initialLanguage)
	m.sessions[deviceID] = s
	return s
}

// Len returns the number of loaded sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep unloads sessions untouched for longer than idle that have no
// pending reply and no subscriber.  Their state stays in storage.
func (m *Manager) Sweep(idle time.Duration) int {
	threshold := m.opts.Now().Add(-idle)

	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.idleSince(threshold) {
			s.Close()
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// StartSweeper runs Sweep every interval until ctx is done.
func (m *Manager) StartSweeper(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		m.opts.Log.Info("Session sweeper started", "interval", interval, "idle", idle)
		for {
			select {
			case <-ticker.C:
				if n := m.Sweep(idle); n > 0 {
					m.opts.Log.Info("Unloaded idle sessions", "count", n)
				}
			case <-ctx.Done():
				m.opts.Log.Info("Session sweeper shutting down", "reason", ctx.Err())
				return
			}
		}
	}()
}

// Close tears down every loaded session, cancelling their pending replies.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, s := range m.sessions {
		s.Close()
		delete(m.sessions, id)
	}
	m.opts.Log.Debug("Session manager closed")
}
