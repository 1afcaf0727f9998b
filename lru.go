package evicache

import "container/list"

// LRU keeps entries ordered by recency of use, most recent at the front.
// Both Get and Put promote the touched entry to the front; eviction removes
// the entry at the back.
type LRU[K comparable, V any] struct {
	capacity int
	order    *list.List // most recently used at the front
	index    map[K]*list.Element
	metrics  *Metrics
	events   EventHandlers[K, V]
}

func NewLRU[K comparable, V any](capacity int, opts ...Option[K, V]) (*LRU[K, V], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	o := newOptions(opts)
	return &LRU[K, V]{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[K]*list.Element),
		metrics:  o.metrics,
		events:   o.events,
	}, nil
}

func (c *LRU[K, V]) Get(key K) (V, error) {
	elem, ok := c.index[key]
	if !ok {
		c.metrics.Misses.Add(1)
		var zero V
		return zero, ErrKeyNotFound
	}
	c.order.MoveToFront(elem)
	ent := elem.Value.(*entry[K, V])
	c.metrics.Hits.Add(1)
	if c.events.OnHit != nil {
		c.events.OnHit(key, ent.value)
	}
	return ent.value, nil
}

func (c *LRU[K, V]) Put(key K, value V) {
	if c.capacity == 0 {
		return
	}
	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry[K, V])
		old := ent.value
		ent.value = value
		c.order.MoveToFront(elem)
		c.metrics.Puts.Add(1)
		if c.events.OnUpdate != nil {
			c.events.OnUpdate(key, old, value)
		}
		return
	}
	for len(c.index) >= c.capacity {
		c.evictOldest()
	}
	c.index[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
	c.metrics.Puts.Add(1)
	if c.events.OnPut != nil {
		c.events.OnPut(key, value)
	}
}

func (c *LRU[K, V]) evictOldest() {
	elem := c.order.Back()
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

func (c *LRU[K, V]) Remove(key K) bool {
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

func (c *LRU[K, V]) Clear() {
	c.order.Init()
	c.index = make(map[K]*list.Element)
}

func (c *LRU[K, V]) Len() int { return len(c.index) }

// Keys returns the keys most-recently-used first; the last key is the next
// eviction victim.
func (c *LRU[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.index))
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*entry[K, V]).key)
	}
	return keys
}

func (c *LRU[K, V]) Capacity() int { return c.capacity }

func (c *LRU[K, V]) SetCapacity(n int) {
	if n < 0 {
		n = 0
	}
	c.capacity = n
}

func (c *LRU[K, V]) Metrics() MetricsSnapshot { return c.metrics.Snapshot() }
