package lookup

import "iter"

// ─────────────────────────────────────────────────────────────────────────────
// Constant adapters
// ─────────────────────────────────────────────────────────────────────────────

type emptySet[K any] struct{}

func (emptySet[K]) Get(K) (bool, bool) { return false, false }
func (emptySet[K]) Missing() bool      { return false }

func (emptySet[K]) Entries() iter.Seq2[K, bool] {
	return func(func(K, bool) bool) {}
}

// EmptySet returns the source with no members. It is the identity for
// [Union] and absorbing for [Intersection].
func EmptySet[K any]() Source[K, bool] { return emptySet[K]{} }

type universalSet[K any] struct{}

func (universalSet[K]) Get(K) (bool, bool) { return true, true }
func (universalSet[K]) Missing() bool      { return false }

// UniversalSet returns the getter that reports every key as a member.
// Its domain is unbounded so it cannot be enumerated.
func UniversalSet[K any]() Getter[K, bool] { return universalSet[K]{} }

type always[K, V any] struct{ value V }

func (a always[K, V]) Get(K) (V, bool) { return a.value, true }

func (always[K, V]) Missing() V {
	var zero V
	return zero
}

// Always returns a getter answering value for every key. Use it as the
// first operand of [Union] to supply a fallback:
//
//	cost := lookup.Union(lookup.Always[string](0), paidPlans)
func Always[K, V any](value V) Getter[K, V] { return always[K, V]{value: value} }

// ─────────────────────────────────────────────────────────────────────────────
// Single entry
// ─────────────────────────────────────────────────────────────────────────────

type single[K comparable, V any] struct {
	key   K
	value V
	miss  V
}

func (s single[K, V]) Get(key K) (V, bool) {
	if key == s.key {
		return s.value, true
	}
	return s.miss, false
}

func (s single[K, V]) Missing() V { return s.miss }

func (s single[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		yield(s.key, s.value)
	}
}

// Single returns a boolean source whose only member is key.
func Single[K comparable](key K) Source[K, bool] {
	return single[K, bool]{key: key, value: true}
}

// SingleValue returns a source holding exactly one key/value pair. Misses
// report the zero value of V.
func SingleValue[K comparable, V any](key K, value V) Source[K, V] {
	return single[K, V]{key: key, value: value}
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates
// ─────────────────────────────────────────────────────────────────────────────

type predicate[K any] func(K) bool

func (p predicate[K]) Get(key K) (bool, bool) {
	ok := p(key)
	return ok, ok
}

func (predicate[K]) Missing() bool { return false }

// Func adapts a predicate to a boolean Getter so it can be used as an
// operand of the combinators:
//
//	startsWithThe := lookup.Func(func(s string) bool { return strings.HasPrefix(s, "The ") })
//	rest := lookup.Difference(shows, startsWithThe)
//
// A panic raised by fn is not recovered.
func Func[K any](fn func(K) bool) Getter[K, bool] { return predicate[K](fn) }
