package evicache

type EvictionReason uint8

const (
	EvictionReasonRemoved EvictionReason = iota + 1
	EvictionReasonCapacity
)

func (r EvictionReason) String() string {
	switch r {
	case EvictionReasonRemoved:
		return "removed"
	case EvictionReasonCapacity:
		return "capacity"
	default:
		return "unknown"
	}
}

type EventHandlers[K comparable, V any] struct {
	OnPut      func(key K, value V)
	OnUpdate   func(key K, oldValue V, newValue V)
	OnEviction func(reason EvictionReason, key K, value V)
	OnHit      func(key K, value V)
}
