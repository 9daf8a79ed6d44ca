package utils

import (
	"sync"
)

// SafeMap is a thread-safe generic map guarded by a sync.RWMutex.
type SafeMap[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// NewSafeMap creates a new SafeMap instance.
func NewSafeMap[K comparable, V any]() *SafeMap[K, V] {
	return &SafeMap[K, V]{
		items: make(map[K]V),
	}
}

// Set adds or updates a key-value pair.
func (sm *SafeMap[K, V]) Set(key K, value V) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.items[key] = value
}

// Store is an alias for Set.
func (sm *SafeMap[K, V]) Store(key K, value V) {
	sm.Set(key, value)
}

// Get retrieves the value for a key and whether it exists.
func (sm *SafeMap[K, V]) Get(key K) (V, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	value, exists := sm.items[key]
	return value, exists
}

// Delete removes the key-value pair for the given key.
func (sm *SafeMap[K, V]) Delete(key K) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.items, key)
}

// Len returns the number of stored pairs.
func (sm *SafeMap[K, V]) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.items)
}

// Range calls f for each key-value pair until f returns false.
// The callback runs under the read lock; it must not mutate the map.
func (sm *SafeMap[K, V]) Range(f func(key K, value V) bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	for k, v := range sm.items {
		if !f(k, v) {
			return
		}
	}
}

// Keys returns a snapshot of all keys.
func (sm *SafeMap[K, V]) Keys() []K {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	keys := make([]K, 0, len(sm.items))
	for k := range sm.items {
		keys = append(keys, k)
	}
	return keys
}
