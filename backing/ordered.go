package backing

import (
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// OrderedMap is a typed, insertion-ordered map built on gods'
// linkedhashmap. Re-setting an existing key keeps its position.
//
// OrderedMap satisfies [lookup.Mapper], so lookup.Of adapts it directly,
// and its Set method makes it a keyed target for lookup.Into. Use it where
// a deterministic enumeration order matters and a Go map would not give
// one.
type OrderedMap[K comparable, V any] struct {
	m *linkedhashmap.Map
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{m: linkedhashmap.New()}
}

// Set stores value under key.
func (o *OrderedMap[K, V]) Set(key K, value V) { o.m.Put(key, value) }

// Get returns the value stored under key.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	raw, ok := o.m.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return raw.(V), true
}

// Delete removes key.
func (o *OrderedMap[K, V]) Delete(key K) { o.m.Remove(key) }

// Len returns the number of entries.
func (o *OrderedMap[K, V]) Len() int { return o.m.Size() }

// All yields the entries in insertion order.
func (o *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := o.m.Iterator()
		for it.Next() {
			if !yield(it.Key().(K), it.Value().(V)) {
				return
			}
		}
	}
}
