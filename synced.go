package evicache

import "sync"

// Synced wraps a Cache with a mutex so one instance can be shared across
// goroutines. Get takes the write lock because LRU and LFU reorder on read.
type Synced[K comparable, V any] struct {
	mu    sync.RWMutex
	inner Cache[K, V]
}

func Sync[K comparable, V any](inner Cache[K, V]) *Synced[K, V] {
	return &Synced[K, V]{inner: inner}
}

func (s *Synced[K, V]) Get(key K) (V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Get(key)
}

func (s *Synced[K, V]) Put(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Put(key, value)
}

func (s *Synced[K, V]) Remove(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Remove(key)
}

func (s *Synced[K, V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Clear()
}

func (s *Synced[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Len()
}

func (s *Synced[K, V]) Keys() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Keys()
}

func (s *Synced[K, V]) Capacity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Capacity()
}

func (s *Synced[K, V]) SetCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.SetCapacity(n)
}

func (s *Synced[K, V]) Metrics() MetricsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inner.Metrics()
}
