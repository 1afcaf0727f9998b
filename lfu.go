package evicache

import (
	"container/list"
	"slices"
)

// LFU keeps one recency-ordered bucket per access frequency. Every Get or
// Put of a live key moves it from bucket f to the front of bucket f+1, so
// within a bucket the back holds the entry that reached that frequency
// longest ago. Eviction takes the back of the lowest populated bucket,
// which breaks frequency ties by least recent promotion.
//
// minFreq is maintained incrementally: a promotion that drains the minimal
// bucket bumps it by one, and inserting a new key resets it to 1. Only
// Remove can leave a hole below it, so only Remove rescans the buckets.
type LFU[K comparable, V any] struct {
	capacity int
	minFreq  int
	buckets  map[int]*list.List // frequency -> entries, most recently promoted at the front
	index    map[K]*list.Element
	metrics  *Metrics
	events   EventHandlers[K, V]
}

type lfuEntry[K comparable, V any] struct {
	key   K
	value V
	freq  int
}

func NewLFU[K comparable, V any](capacity int, opts ...Option[K, V]) (*LFU[K, V], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	o := newOptions(opts)
	return &LFU[K, V]{
		capacity: capacity,
		buckets:  make(map[int]*list.List),
		index:    make(map[K]*list.Element),
		metrics:  o.metrics,
		events:   o.events,
	}, nil
}

func (c *LFU[K, V]) Get(key K) (V, error) {
	elem, ok := c.index[key]
	if !ok {
		c.metrics.Misses.Add(1)
		var zero V
		return zero, ErrKeyNotFound
	}
	ent := c.promote(elem)
	c.metrics.Hits.Add(1)
	if c.events.OnHit != nil {
		c.events.OnHit(key, ent.value)
	}
	return ent.value, nil
}

func (c *LFU[K, V]) Put(key K, value V) {
	if c.capacity == 0 {
		return
	}
	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*lfuEntry[K, V])
		old := ent.value
		ent.value = value
		c.promote(elem)
		c.metrics.Puts.Add(1)
		if c.events.OnUpdate != nil {
			c.events.OnUpdate(key, old, value)
		}
		return
	}
	for len(c.index) >= c.capacity {
		c.evictLFU()
	}
	// A brand-new key has frequency 1, the lowest possible.
	c.minFreq = 1
	ent := &lfuEntry[K, V]{key: key, value: value, freq: 1}
	c.index[key] = c.bucket(1).PushFront(ent)
	c.metrics.Puts.Add(1)
	if c.events.OnPut != nil {
		c.events.OnPut(key, value)
	}
}

// promote moves elem from its current bucket to the front of the next one
// and returns its entry. The index is updated to the new list element.
func (c *LFU[K, V]) promote(elem *list.Element) *lfuEntry[K, V] {
	ent := elem.Value.(*lfuEntry[K, V])
	f := ent.freq
	bucket := c.buckets[f]
	bucket.Remove(elem)
	if bucket.Len() == 0 {
		delete(c.buckets, f)
		if c.minFreq == f {
			c.minFreq++
		}
	}
	ent.freq = f + 1
	c.index[ent.key] = c.bucket(f + 1).PushFront(ent)
	return ent
}

func (c *LFU[K, V]) bucket(freq int) *list.List {
	b, ok := c.buckets[freq]
	if !ok {
		b = list.New()
		c.buckets[freq] = b
	}
	return b
}

func (c *LFU[K, V]) evictLFU() {
	bucket, ok := c.buckets[c.minFreq]
	if !ok {
		// Stale after a capacity shrink evicted the whole minimal bucket.
		c.rescanMinFreq()
		if bucket, ok = c.buckets[c.minFreq]; !ok {
			return
		}
	}
	elem := bucket.Back()
	ent := elem.Value.(*lfuEntry[K, V])
	bucket.Remove(elem)
	if bucket.Len() == 0 {
		delete(c.buckets, c.minFreq)
	}
	delete(c.index, ent.key)
	c.metrics.Evictions.Add(1)
	if c.events.OnEviction != nil {
		c.events.OnEviction(EvictionReasonCapacity, ent.key, ent.value)
	}
}

func (c *LFU[K, V]) rescanMinFreq() {
	c.minFreq = 0
	for f := range c.buckets {
		if c.minFreq == 0 || f < c.minFreq {
			c.minFreq = f
		}
	}
}

func (c *LFU[K, V]) Remove(key K) bool {
	elem, ok := c.index[key]
	if !ok {
		return false
	}
	ent := elem.Value.(*lfuEntry[K, V])
	bucket := c.buckets[ent.freq]
	bucket.Remove(elem)
	if bucket.Len() == 0 {
		delete(c.buckets, ent.freq)
		if c.minFreq == ent.freq {
			c.rescanMinFreq()
		}
	}
	delete(c.index, key)
	c.metrics.Deletes.Add(1)
	if c.events.OnEviction != nil {
		c.events.OnEviction(EvictionReasonRemoved, key, ent.value)
	}
	return true
}

func (c *LFU[K, V]) Clear() {
	c.minFreq = 0
	c.buckets = make(map[int]*list.List)
	c.index = make(map[K]*list.Element)
}

func (c *LFU[K, V]) Len() int { return len(c.index) }

// Keys returns the keys in ascending frequency order, most recently
// promoted first within a frequency; the last key of the first group is the
// next eviction victim.
func (c *LFU[K, V]) Keys() []K {
	freqs := make([]int, 0, len(c.buckets))
	for f := range c.buckets {
		freqs = append(freqs, f)
	}
	slices.Sort(freqs)

	keys := make([]K, 0, len(c.index))
	for _, f := range freqs {
		for elem := c.buckets[f].Front(); elem != nil; elem = elem.Next() {
			keys = append(keys, elem.Value.(*lfuEntry[K, V]).key)
		}
	}
	return keys
}

func (c *LFU[K, V]) Capacity() int { return c.capacity }

func (c *LFU[K, V]) SetCapacity(n int) {
	if n < 0 {
		n = 0
	}
	c.capacity = n
}

func (c *LFU[K, V]) Metrics() MetricsSnapshot { return c.metrics.Snapshot() }
