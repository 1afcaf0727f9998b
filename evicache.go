// Package evicache provides fixed-capacity in-memory caches with four
// eviction policies: FILO, FIFO, LRU and LFU. All operations are amortized
// O(1). Instances are not safe for concurrent use; wrap them with Sync or
// serialize access externally.
package evicache

// Cache is the contract shared by all eviction policies.
type Cache[K comparable, V any] interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	// LRU and LFU treat a hit as an access and reorder internally.
	Get(key K) (V, error)

	// Put inserts or updates key. When the cache is full and key is new,
	// the policy's victim is evicted first. A zero-capacity cache ignores
	// Put entirely. Put never fails.
	Put(key K, value V)

	// Remove deletes key if present and reports whether it existed.
	Remove(key K) bool

	// Clear drops every entry. Capacity is unchanged.
	Clear()

	Len() int

	// Keys returns the live keys in the policy's internal order; see each
	// implementation for what that order means.
	Keys() []K

	Capacity() int

	// SetCapacity replaces the capacity without evicting anything, even
	// when n is smaller than Len(). The excess is shed by the next Put of
	// a new key.
	SetCapacity(n int)

	Metrics() MetricsSnapshot
}

type Policy string

const (
	PolicyFILO Policy = "filo"
	PolicyFIFO Policy = "fifo"
	PolicyLRU  Policy = "lru"
	PolicyLFU  Policy = "lfu"
)

type Option[K comparable, V any] func(*options[K, V])

type options[K comparable, V any] struct {
	metrics *Metrics
	events  EventHandlers[K, V]
}

// WithMetrics makes the cache record its counters into m instead of a
// private Metrics value, so several caches can share one set of counters.
func WithMetrics[K comparable, V any](m *Metrics) Option[K, V] {
	return func(o *options[K, V]) { o.metrics = m }
}

func WithEventHandlers[K comparable, V any](handlers EventHandlers[K, V]) Option[K, V] {
	return func(o *options[K, V]) { o.events = handlers }
}

func newOptions[K comparable, V any](opts []Option[K, V]) options[K, V] {
	var o options[K, V]
	for _, opt := range opts {
		opt(&o)
	}
	if o.metrics == nil {
		o.metrics = &Metrics{}
	}
	return o
}

// New builds a cache for the given policy. Capacity must be non-negative.
func New[K comparable, V any](policy Policy, capacity int, opts ...Option[K, V]) (Cache[K, V], error) {
	switch policy {
	case PolicyFILO:
		return NewFILO[K, V](capacity, opts...)
	case PolicyFIFO:
		return NewFIFO[K, V](capacity, opts...)
	case PolicyLRU:
		return NewLRU[K, V](capacity, opts...)
	case PolicyLFU:
		return NewLFU[K, V](capacity, opts...)
	default:
		return nil, ErrUnknownPolicy
	}
}

// entry is the list node payload for the single-sequence policies.
type entry[K comparable, V any] struct {
	key   K
	value V
}
