package kv

import (
	"context"
	"sync"
)

// Memory is a process-local Store.  It loses everything on restart.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory { return &Memory{data: make(map[string]string)} }

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Ping(context.Context) error { return nil }

func (m *Memory) Close() error { return nil }
