package cache

import (
	"context"
	"sync"
)

// Memory is the default in-process Store. Values are copied on the way in
// and out so callers cannot alias cached documents.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

// Get returns the cached document for key, or ErrMiss.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[key]
	if !ok {
		return nil, ErrMiss
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores the document under key.
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	in := make([]byte, len(value))
	copy(in, value)

	m.mu.Lock()
	m.entries[key] = in
	m.mu.Unlock()
	return nil
}

// Len reports the number of cached documents.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Close is a no-op for the in-memory store.
func (m *Memory) Close() error {
	return nil
}
