package evicache

import "errors"

var (
	ErrKeyNotFound      = errors.New("key not found")
	ErrNegativeCapacity = errors.New("capacity cannot be negative")
	ErrUnknownPolicy    = errors.New("unknown eviction policy")
)
