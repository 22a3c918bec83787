package lookup

import "iter"

// ─────────────────────────────────────────────────────────────────────────────
// Complement
// ─────────────────────────────────────────────────────────────────────────────

type complement[K, V any] struct {
	of Getter[K, V]
}

func (c complement[K, V]) Get(key K) (bool, bool) {
	_, ok := c.of.Get(key)
	return !ok, !ok
}

func (complement[K, V]) Missing() bool { return false }

func (complement[K, V]) IsComplement() bool { return true }

// membership is the boolean view of a getter; it is what a double
// complement collapses to.
type membership[K, V any] struct {
	of Getter[K, V]
}

func (m membership[K, V]) Get(key K) (bool, bool) {
	_, ok := m.of.Get(key)
	return ok, ok
}

func (membership[K, V]) Missing() bool { return false }

func (c complement[K, V]) inverse() Getter[K, bool] { return membership[K, V](c) }

func (m membership[K, V]) inverse() Getter[K, bool] { return complement[K, V](m) }

// Complement returns the getter whose members are exactly the non-members
// of g. The result is boolean and never enumerable: the complement of a
// finite set has no finite enumeration.
//
// Complement(Complement(g)) reports the same membership as g but with
// boolean values.
func Complement[K, V any](g Getter[K, V]) Getter[K, bool] {
	if inv, ok := g.(interface{ inverse() Getter[K, bool] }); ok {
		return inv.inverse()
	}
	return complement[K, V]{of: g}
}

// ─────────────────────────────────────────────────────────────────────────────
// Union
// ─────────────────────────────────────────────────────────────────────────────

type union[K, V any] struct {
	a, b Getter[K, V]
}

func (u union[K, V]) Get(key K) (V, bool) {
	if v, ok := u.b.Get(key); ok {
		return v, true
	}
	return u.a.Get(key)
}

func (u union[K, V]) Missing() V { return u.a.Missing() }

type unionSource[K, V any] struct {
	union[K, V]
	as, bs Source[K, V]
}

func (u unionSource[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range u.as.Entries() {
			if bv, ok := u.b.Get(k); ok {
				v = bv
			}
			if !yield(k, v) {
				return
			}
		}
		for k, v := range u.bs.Entries() {
			if _, ok := u.a.Get(k); ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Union returns the getter whose members are the members of a or b.
//
// b takes priority: for a key both operands hold, the point query returns
// b's value. Misses report a's Missing value. The result is enumerable
// when both operands are; enumeration yields a's keys in a's order (with
// b's value where b has the key) followed by b's keys that a lacks, so no
// key is yielded twice.
//
// To supply a default for every key, pass [Always] as a:
//
//	cost := lookup.Union(lookup.Always[string](0), paidPlans)
func Union[K, V any](a, b Getter[K, V]) Getter[K, V] {
	u := union[K, V]{a: a, b: b}
	as, aok := a.(Source[K, V])
	bs, bok := b.(Source[K, V])
	if aok && bok {
		return unionSource[K, V]{union: u, as: as, bs: bs}
	}
	return u
}

// ─────────────────────────────────────────────────────────────────────────────
// Difference & Intersection
// ─────────────────────────────────────────────────────────────────────────────

// filter keeps a's members whose membership in b equals keep.
type filter[K, V, W any] struct {
	a    Getter[K, V]
	b    Getter[K, W]
	keep bool
}

func (f filter[K, V, W]) Get(key K) (V, bool) {
	if f.keep {
		// intersection: a is consulted first so b sees only a's members
		v, ok := f.a.Get(key)
		if ok {
			if _, inB := f.b.Get(key); inB {
				return v, true
			}
		}
		return f.a.Missing(), false
	}
	if _, inB := f.b.Get(key); inB {
		return f.a.Missing(), false
	}
	return f.a.Get(key)
}

func (f filter[K, V, W]) Missing() V { return f.a.Missing() }

type filterSource[K, V, W any] struct {
	filter[K, V, W]
	as Source[K, V]
}

func (f filterSource[K, V, W]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range f.as.Entries() {
			if _, inB := f.b.Get(k); inB != f.keep {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

func newFilter[K, V, W any](a Getter[K, V], b Getter[K, W], keep bool) Getter[K, V] {
	f := filter[K, V, W]{a: a, b: b, keep: keep}
	if as, ok := a.(Source[K, V]); ok {
		return filterSource[K, V, W]{filter: f, as: as}
	}
	return f
}

// Difference returns the getter whose members are a's members that are
// not members of b. Removed keys report a's Missing value, whatever
// sentinel a uses.
//
// b may have any value type; only its membership is consulted, once per
// candidate key. The result is enumerable when a is; enumeration is a
// single lazy pass over a's entries.
func Difference[K, V, W any](a Getter[K, V], b Getter[K, W]) Getter[K, V] {
	return newFilter(a, b, false)
}

// Intersection returns the getter whose members are a's members that are
// also members of b, carrying a's values.
//
// Only a is enumerated, so keys that only b holds are never visited. The
// result is enumerable when a is.
func Intersection[K, V, W any](a Getter[K, V], b Getter[K, W]) Getter[K, V] {
	return newFilter(a, b, true)
}
