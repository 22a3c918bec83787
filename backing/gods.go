package backing

import (
	"github.com/emirpasic/gods/lists"
	"github.com/emirpasic/gods/maps"
	"github.com/emirpasic/gods/sets"

	"github.com/hasbyte1/go-lookup/lookup"
)

// GodsMap returns a live source over a gods map. Keys of another type than
// K and values of another type than V are treated as absent. Enumeration
// follows the map's own Keys order: insertion order for linkedhashmap,
// key order for treemap.
func GodsMap[K comparable, V any](m maps.Map) lookup.Source[K, V] {
	return lookup.FromFuncs(
		func(key K) (V, bool) {
			raw, found := m.Get(key)
			if !found {
				var zero V
				return zero, false
			}
			v, ok := raw.(V)
			return v, ok
		},
		func(yield func(K, V) bool) {
			for _, rk := range m.Keys() {
				k, ok := rk.(K)
				if !ok {
					continue
				}
				raw, found := m.Get(rk)
				if !found {
					continue
				}
				v, ok := raw.(V)
				if !ok {
					continue
				}
				if !yield(k, v) {
					return
				}
			}
		},
	)
}

// GodsSet returns a live boolean source over a gods set.
func GodsSet[K comparable](s sets.Set) lookup.Source[K, bool] {
	return lookup.FromFuncs(
		func(key K) (bool, bool) {
			ok := s.Contains(key)
			return ok, ok
		},
		eachValue[K](s.Values),
	)
}

// GodsList returns a live boolean source over a gods list, treating it as
// a sequence: membership is Contains and enumeration is list order, each
// element listed once.
func GodsList[K comparable](l lists.List) lookup.Source[K, bool] {
	return lookup.FromFuncs(
		func(key K) (bool, bool) {
			ok := l.Contains(key)
			return ok, ok
		},
		eachValue[K](l.Values),
	)
}

// eachValue yields each value of type K once, at its first occurrence.
func eachValue[K comparable](values func() []interface{}) func(yield func(K, bool) bool) {
	return func(yield func(K, bool) bool) {
		seen := make(map[K]struct{})
		for _, rv := range values() {
			k, ok := rv.(K)
			if !ok {
				continue
			}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if !yield(k, true) {
				return
			}
		}
	}
}
