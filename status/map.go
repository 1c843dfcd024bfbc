package status

import (
	"sort"
	"sync"
)

// Map is a thread-safe keyed set of metrics of type T
// Registration locks; access through a cached pointer does not
type Map[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

// NewMap creates an initialized Map
func NewMap[T any]() *Map[T] {
	return &Map[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, creating it on first use
func (m *Map[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Range visits every metric in sorted key order
func (m *Map[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fn(k, m.items[k])
	}
}

// Len returns the number of registered metrics
func (m *Map[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
