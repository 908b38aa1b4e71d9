package utils

import "sync"

// TypedSyncMap is a type-safe wrapper around sync.Map.
type TypedSyncMap[K comparable, V any] struct {
	m sync.Map
}

// Load returns the value stored under key.
func (m *TypedSyncMap[K, V]) Load(key K) (V, bool) {
	value, ok := m.m.Load(key)
	if !ok {
		var zero V
		return zero, false
	}
	return value.(V), true
}

// Store sets the value for key.
func (m *TypedSyncMap[K, V]) Store(key K, value V) {
	m.m.Store(key, value)
}

// Delete removes key.
func (m *TypedSyncMap[K, V]) Delete(key K) {
	m.m.Delete(key)
}

// LoadOrStore returns the existing value for key when present, otherwise it
// stores and returns the given value.
func (m *TypedSyncMap[K, V]) LoadOrStore(key K, value V) (V, bool) {
	actual, loaded := m.m.LoadOrStore(key, value)
	return actual.(V), loaded
}

// Range iterates over the map, stopping when f returns false.
func (m *TypedSyncMap[K, V]) Range(f func(key K, value V) bool) {
	m.m.Range(func(k, v any) bool {
		return f(k.(K), v.(V))
	})
}
