package hasher

import (
	"math/bits"

	g "github.com/zyedidia/generic"
	"github.com/zyedidia/generic/hashmap"
)

// Map is an open addressing hash table hashing keys through a BuildHasher.
type Map[K Hashable, V any] struct {
	m *hashmap.Map[K, V]
}

func New[K Hashable, V any](capacity int, build BuildHasher) *Map[K, V] {
	hashFn := func(key K) uint64 {
		h := build()
		key.Hash(h)
		return h.Sum64()
	}
	return &Map[K, V]{
		m: hashmap.New[K, V](tableSize(capacity), g.Equals[K], hashFn),
	}
}

// tableSize keeps the load factor under one half for capacity keys.
// The table indexes by mask, so the size is a power of two.
func tableSize(capacity int) uint64 {
	if capacity < 1 {
		capacity = 1
	}
	return 1 << bits.Len(uint(2*capacity-1))
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.m.Get(key)
}

func (m *Map[K, V]) Put(key K, val V) {
	m.m.Put(key, val)
}

func (m *Map[K, V]) Len() int {
	return m.m.Size()
}
