package lookup

import (
	"iter"
	"net/url"
	"slices"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sequence-like
// ─────────────────────────────────────────────────────────────────────────────

type sliceSource[K comparable] struct {
	items *[]K
}

func (s sliceSource[K]) Get(key K) (bool, bool) {
	ok := slices.Contains(*s.items, key)
	return ok, ok
}

func (sliceSource[K]) Missing() bool { return false }

func (s sliceSource[K]) Entries() iter.Seq2[K, bool] {
	return func(yield func(K, bool) bool) {
		seen := make(map[K]struct{}, len(*s.items))
		for _, item := range *s.items {
			if _, dup := seen[item]; dup {
				continue
			}
			seen[item] = struct{}{}
			if !yield(item, true) {
				return
			}
		}
	}
}

// FromSlice returns a boolean source over the slice p points to.
//
// The source is a live view: elements appended through p after
// construction are members of later point queries and enumerations.
// Containment is a linear scan. Enumeration lists each element once, at
// its first occurrence. A nil p is an empty slice that stays empty.
func FromSlice[K comparable](p *[]K) Source[K, bool] {
	if p == nil {
		p = new([]K)
	}
	return sliceSource[K]{items: p}
}

// FromValues returns a boolean source over items. In-place writes to the
// backing array are visible; appends made through another slice header
// are not (use [FromSlice] for that).
func FromValues[K comparable](items []K) Source[K, bool] {
	return sliceSource[K]{items: &items}
}

// ─────────────────────────────────────────────────────────────────────────────
// Set-like
// ─────────────────────────────────────────────────────────────────────────────

type setSource[K comparable] map[K]struct{}

func (s setSource[K]) Get(key K) (bool, bool) {
	_, ok := s[key]
	return ok, ok
}

func (setSource[K]) Missing() bool { return false }

func (s setSource[K]) Entries() iter.Seq2[K, bool] {
	return func(yield func(K, bool) bool) {
		for k := range s {
			if !yield(k, true) {
				return
			}
		}
	}
}

// FromSet returns a boolean live view over set. Enumeration order follows
// Go map iteration and is unspecified.
func FromSet[K comparable](set map[K]struct{}) Source[K, bool] {
	return setSource[K](set)
}

// ─────────────────────────────────────────────────────────────────────────────
// Map-like
// ─────────────────────────────────────────────────────────────────────────────

type mapSource[K comparable, V any] map[K]V

func (m mapSource[K, V]) Get(key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

func (mapSource[K, V]) Missing() V {
	var zero V
	return zero
}

func (m mapSource[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range m {
			if !yield(k, v) {
				return
			}
		}
	}
}

// FromMap returns a live view over m. A mapped zero value is still a
// member; misses report the zero value with ok == false.
func FromMap[K comparable, V any](m map[K]V) Source[K, V] {
	return mapSource[K, V](m)
}

// ─────────────────────────────────────────────────────────────────────────────
// Form-like
// ─────────────────────────────────────────────────────────────────────────────

type formSource url.Values

func (f formSource) Get(name string) (string, bool) {
	vs := f[name]
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func (formSource) Missing() string { return "" }

func (f formSource) Entries() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		names := make([]string, 0, len(f))
		for name, vs := range f {
			if len(vs) > 0 {
				names = append(names, name)
			}
		}
		slices.Sort(names)
		for _, name := range names {
			vs := f[name]
			if len(vs) == 0 {
				continue
			}
			if !yield(name, vs[0]) {
				return
			}
		}
	}
}

// FromForm returns a live view over form data. Point queries return the
// first value for a name; names are enumerated in sorted order, each with
// its first value.
func FromForm(form url.Values) Source[string, string] {
	return formSource(form)
}

// ─────────────────────────────────────────────────────────────────────────────
// Drained iterables
// ─────────────────────────────────────────────────────────────────────────────

type seqSource[K comparable] struct {
	index map[K]struct{}
	order []K
}

func (s *seqSource[K]) Get(key K) (bool, bool) {
	_, ok := s.index[key]
	return ok, ok
}

func (*seqSource[K]) Missing() bool { return false }

func (s *seqSource[K]) Entries() iter.Seq2[K, bool] {
	return func(yield func(K, bool) bool) {
		for _, k := range s.order {
			if !yield(k, true) {
				return
			}
		}
	}
}

// FromSeq drains seq once into an internal set and returns a boolean
// source over it. The result is frozen: later changes to whatever seq
// reads from are not visible. Enumeration follows first-seen order.
func FromSeq[K comparable](seq iter.Seq[K]) Source[K, bool] {
	s := &seqSource[K]{index: make(map[K]struct{})}
	for k := range seq {
		if _, dup := s.index[k]; dup {
			continue
		}
		s.index[k] = struct{}{}
		s.order = append(s.order, k)
	}
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Capability shapes
// ─────────────────────────────────────────────────────────────────────────────

// Mapper is a keyed container exposing a standard-library style iterator.
type Mapper[K, V any] interface {
	Get(key K) (V, bool)
	All() iter.Seq2[K, V]
}

// Ranger is a keyed container with a callback-driven Range, such as
// github.com/cornelk/hashmap.
type Ranger[K, V any] interface {
	Get(key K) (V, bool)
	Range(fn func(K, V) bool)
}

// ForEacher is a keyed container with a callback-driven ForEach, such as
// github.com/alphadose/haxmap.
type ForEacher[K, V any] interface {
	Get(key K) (V, bool)
	ForEach(fn func(K, V) bool)
}

// Container is a set-like container exposing membership and its members.
type Container[K any] interface {
	Has(key K) bool
	All() iter.Seq[K]
}

type keyed[K, V any] struct {
	get  func(K) (V, bool)
	each func(yield func(K, V) bool)
}

func (k keyed[K, V]) Get(key K) (V, bool) {
	if v, ok := k.get(key); ok {
		return v, true
	}
	var zero V
	return zero, false
}

func (keyed[K, V]) Missing() V {
	var zero V
	return zero
}

func (k keyed[K, V]) Entries() iter.Seq2[K, V] { return k.each }

// FromMapper returns a live view over m.
func FromMapper[K, V any](m Mapper[K, V]) Source[K, V] {
	return keyed[K, V]{
		get: m.Get,
		each: func(yield func(K, V) bool) {
			for k, v := range m.All() {
				if !yield(k, v) {
					return
				}
			}
		},
	}
}

// FromRanger returns a live view over m.
func FromRanger[K, V any](m Ranger[K, V]) Source[K, V] {
	return keyed[K, V]{
		get:  m.Get,
		each: func(yield func(K, V) bool) { m.Range(yield) },
	}
}

// FromForEacher returns a live view over m.
func FromForEacher[K, V any](m ForEacher[K, V]) Source[K, V] {
	return keyed[K, V]{
		get:  m.Get,
		each: func(yield func(K, V) bool) { m.ForEach(yield) },
	}
}

// FromContainer returns a boolean live view over c.
func FromContainer[K any](c Container[K]) Source[K, bool] {
	return keyed[K, bool]{
		get: func(key K) (bool, bool) {
			ok := c.Has(key)
			return ok, ok
		},
		each: func(yield func(K, bool) bool) {
			for k := range c.All() {
				if !yield(k, true) {
					return
				}
			}
		},
	}
}

// FromFuncs builds a source from a point query and an enumeration. It is
// the escape hatch for containers whose methods match none of the shapes
// above; the backing package uses it for third-party containers.
func FromFuncs[K, V any](get func(K) (V, bool), each func(yield func(K, V) bool)) Source[K, V] {
	return keyed[K, V]{get: get, each: each}
}
