package evicache

import "container/list"

// FIFO is a bounded queue: new entries are appended at the back of the
// insertion sequence and eviction removes the oldest entry at the front.
// Updating an existing key overwrites its value without touching its
// position, so the original insertion order decides eviction.
type FIFO[K comparable, V any] struct {
	capacity int
	order    *list.List // insertion order, oldest at the front
	index    map[K]*list.Element
	metrics  *Metrics
	events   EventHandlers[K, V]
}

func NewFIFO[K comparable, V any](capacity int, opts ...Option[K, V]) (*FIFO[K, V], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	o := newOptions(opts)
	return &FIFO[K, V]{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[K]*list.Element),
		metrics:  o.metrics,
		events:   o.events,
	}, nil
}

func (c *FIFO[K, V]) Get(key K) (V, error) {
	elem, ok := c.index[key]
	if !ok {
		c.metrics.Misses.Add(1)
		var zero V
		return zero, ErrKeyNotFound
	}
	ent := elem.Value.(*entry[K, V])
	c.metrics.Hits.Add(1)
	if c.events.OnHit != nil {
		c.events.OnHit(key, ent.value)
	}
	return ent.value, nil
}

func (c *FIFO[K, V]) Put(key K, value V) {
	if c.capacity == 0 {
		return
	}
	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry[K, V])
		old := ent.value
		ent.value = value
		c.metrics.Puts.Add(1)
		if c.events.OnUpdate != nil {
			c.events.OnUpdate(key, old, value)
		}
		return
	}
	for len(c.index) >= c.capacity {
		c.evictOldest()
	}
	c.index[key] = c.order.PushBack(&entry[K, V]{key: key, value: value})
	c.metrics.Puts.Add(1)
	if c.events.OnPut != nil {
		c.events.OnPut(key, value)
	}
}

func (c *FIFO[K, V]) evictOldest() {
	elem := c.order.Front()
	if elem == nil {
		return
	}
	ent := elem.Value.(*entry[K, V])
	c.order.Remove(elem)
	delete(c.index, ent.key)
	c.metrics.Evictions.Add(1)
	if c.events.OnEviction != nil {
		c.events.OnEviction(EvictionReasonCapacity, ent.key, ent.value)
	}
}

func (c *FIFO[K, V]) Remove(key K) bool {
	elem, ok := c.index[key]
	if !ok {
		return false
	}
	ent := elem.Value.(*entry[K, V])
	c.order.Remove(elem)
	delete(c.index, key)
	c.metrics.Deletes.Add(1)
	if c.events.OnEviction != nil {
		c.events.OnEviction(EvictionReasonRemoved, key, ent.value)
	}
	return true
}

func (c *FIFO[K, V]) Clear() {
	c.order.Init()
	c.index = make(map[K]*list.Element)
}

func (c *FIFO[K, V]) Len() int { return len(c.index) }

// Keys returns the keys oldest-insertion first; the first key is the next
// eviction victim.
func (c *FIFO[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.index))
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*entry[K, V]).key)
	}
	return keys
}

func (c *FIFO[K, V]) Capacity() int { return c.capacity }

func (c *FIFO[K, V]) SetCapacity(n int) {
	if n < 0 {
		n = 0
	}
	c.capacity = n
}

func (c *FIFO[K, V]) Metrics() MetricsSnapshot { return c.metrics.Snapshot() }
