// Package memo provides cache-aside memoization on top of an evicache
// cache, with singleflight suppression of duplicate loads.
package memo

import (
	"fmt"

	"golang.org/x/sync/singleflight"

	evicache "github.com/goelayush89/go-evicache"
)

type Loader[K comparable, V any] interface {
	Load(key K) (V, error)
}

type LoaderFunc[K comparable, V any] func(key K) (V, error)

func (f LoaderFunc[K, V]) Load(key K) (V, error) {
	return f(key)
}

// Memoizer answers Get from the cache and falls back to the loader on a
// miss. Concurrent misses on the same key share one loader call. Load
// errors are returned to every waiter and nothing is cached for them.
type Memoizer[K comparable, V any] struct {
	cache  *evicache.Synced[K, V]
	loader Loader[K, V]
	group  singleflight.Group
}

// New wraps cache for concurrent use; callers must not keep using it
// unsynchronized alongside the memoizer.
func New[K comparable, V any](cache evicache.Cache[K, V], loader Loader[K, V]) *Memoizer[K, V] {
	return &Memoizer[K, V]{
		cache:  evicache.Sync(cache),
		loader: loader,
	}
}

func (m *Memoizer[K, V]) Get(key K) (V, error) {
	if v, err := m.cache.Get(key); err == nil {
		return v, nil
	}

	strKey := fmt.Sprint(key)

	result, err, _ := m.group.Do(strKey, func() (interface{}, error) {
		// A concurrent load may have filled the cache while we waited.
		if v, err := m.cache.Get(key); err == nil {
			return v, nil
		}
		v, err := m.loader.Load(key)
		if err != nil {
			return nil, err
		}
		m.cache.Put(key, v)
		return v, nil
	})

	if err != nil {
		var zero V
		return zero, err
	}

	return result.(V), nil
}

// Forget drops key from the cache so the next Get reloads it.
func (m *Memoizer[K, V]) Forget(key K) bool {
	return m.cache.Remove(key)
}

func (m *Memoizer[K, V]) Metrics() evicache.MetricsSnapshot {
	return m.cache.Metrics()
}
