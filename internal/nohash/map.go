// Package nohash provides a hash table for keys whose hash is already
// uniformly distributed. Keys hash to their own Sum64 without any mixing.
package nohash

import (
	"github.com/cockroachdb/swiss"
)

// Enabled marks a key type as eligible for Map. Embed it as the first field.
type Enabled struct{}

func (Enabled) nohash() {}

// Key is a key type whose Sum64 can be used directly as the table hash.
type Key interface {
	comparable
	Sum64() uint64
	nohash()
}

// Map is a swiss table that skips re-hashing of its keys.
type Map[K Key, V any] struct {
	m *swiss.Map[K, V]
}

func New[K Key, V any](capacity int) *Map[K, V] {
	return &Map[K, V]{
		m: swiss.New[K, V](capacity, swiss.WithHash[K, V](identity[K])),
	}
}

// identity ignores the per-map seed.
func identity[K Key](key *K, _ uintptr) uintptr {
	return uintptr((*key).Sum64())
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.m.Get(key)
}

func (m *Map[K, V]) Put(key K, val V) {
	m.m.Put(key, val)
}

func (m *Map[K, V]) Len() int {
	return m.m.Len()
}
