package store

import "sync"

// memoryStore is a map-backed [KeyValueStore]. It backs the session-scoped
// cache: its contents live exactly as long as the process, mirroring
// browser session storage.
type memoryStore struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStore returns an empty in-memory [KeyValueStore].
func NewMemoryStore() KeyValueStore {
	return &memoryStore{items: make(map[string]string)}
}

// Get implements [KeyValueStore].
func (m *memoryStore) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.items[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set implements [KeyValueStore].
func (m *memoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = value
	return nil
}

// Remove implements [KeyValueStore].
func (m *memoryStore) Remove(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}
