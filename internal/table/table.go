// Package table defines the lookup table used by the trials.
package table

// Table maps keys to values. Implementations differ in how keys are hashed.
type Table[K comparable, V any] interface {
	Put(key K, val V)
	Get(key K) (V, bool)
	Len() int
}

var _ Table[string, int] = Builtin[string, int](nil)

// Builtin is the runtime map, hashed with the seeded runtime hash.
type Builtin[K comparable, V any] map[K]V

func NewBuiltin[K comparable, V any](capacity int) Builtin[K, V] {
	return make(Builtin[K, V], capacity)
}

func (m Builtin[K, V]) Put(key K, val V) {
	m[key] = val
}

func (m Builtin[K, V]) Get(key K) (V, bool) {
	val, ok := m[key]
	return val, ok
}

func (m Builtin[K, V]) Len() int {
	return len(m)
}
