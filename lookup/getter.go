package lookup

import "iter"

// Getter is the point-query half of the adapter protocol.
//
// Accept Getter in your own functions when you only need membership or
// value-at-key answers; every adapter in this package satisfies it,
// including the ones that cannot be enumerated.
type Getter[K, V any] interface {
	// Get returns the value stored for key and true when key is a member.
	// For a miss it returns Missing() and false.
	Get(key K) (V, bool)

	// Missing returns the value this adapter reports for keys that are
	// not members (false for boolean adapters, the zero value for maps
	// and records, "" for form data).
	Missing() V
}

// Source is a Getter that can also enumerate its members.
//
// Entries builds a fresh, lazy, forward-only sequence on every call. A
// sequence is not restartable mid-consumption; call Entries again to
// re-run the enumeration against the current state of live views.
type Source[K, V any] interface {
	Getter[K, V]

	// Entries yields every (key, value) pair the adapter knows about.
	Entries() iter.Seq2[K, V]
}

// Complemented is implemented by getters returned from [Complement].
type Complemented interface {
	IsComplement() bool
}

// Has reports whether key is a member of g.
func Has[K, V any](g Getter[K, V], key K) bool {
	_, ok := g.Get(key)
	return ok
}

// Value returns only the value half of g.Get(key): the stored value for
// members and g.Missing() otherwise.
func Value[K, V any](g Getter[K, V], key K) V {
	v, _ := g.Get(key)
	return v
}

// Enumerable reports whether g has an enumeration mode.
func Enumerable[K, V any](g Getter[K, V]) bool {
	_, ok := g.(Source[K, V])
	return ok
}

// Entries returns the enumeration of g, or [ErrNonEnumerable] when g was
// built by Complement, Always, UniversalSet, Func or a union with one of
// those as an operand.
func Entries[K, V any](g Getter[K, V]) (iter.Seq2[K, V], error) {
	src, ok := g.(Source[K, V])
	if !ok {
		return nil, nonEnumerable(g)
	}
	return src.Entries(), nil
}

// Keys returns the keys of g's enumeration, in enumeration order.
func Keys[K, V any](g Getter[K, V]) (iter.Seq[K], error) {
	seq, err := Entries(g)
	if err != nil {
		return nil, err
	}
	return func(yield func(K) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}, nil
}
