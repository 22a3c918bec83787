package lookup

import (
	"fmt"
	"net/url"
	"reflect"

	"github.com/spf13/cast"
)

// Kind tags the collection [Create] builds.
type Kind int

const (
	// KindSet builds a map[K]struct{} of the keys.
	KindSet Kind = iota + 1
	// KindSlice builds a []K of the keys in enumeration order.
	KindSlice
	// KindMap builds a map[K]V.
	KindMap
	// KindRecord builds a map[string]V, converting keys to property names.
	KindRecord
	// KindEntries builds a []Pair[K, V] in enumeration order.
	KindEntries
)

var kindNames = map[Kind]string{
	KindSet:     "set",
	KindSlice:   "slice",
	KindMap:     "map",
	KindRecord:  "record",
	KindEntries: "entries",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ─────────────────────────────────────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────────────────────────────────────

// Create drains g's enumeration into a new collection of the given kind
// and returns it as an any holding the concrete type listed on the Kind
// constants. Prefer the typed helpers ([ToSet], [ToSlice], [ToMap],
// [ToRecord], [ToPairs]) when the kind is known statically.
//
// Create never mutates g or its backing collections.
func Create[K comparable, V any](g Getter[K, V], kind Kind) (any, error) {
	switch kind {
	case KindSet:
		return ToSet(g)
	case KindSlice:
		return ToSlice(g)
	case KindMap:
		return ToMap(g)
	case KindRecord:
		return ToRecord(g)
	case KindEntries:
		return ToPairs(g)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
}

// ToSet returns the set of g's keys.
func ToSet[K comparable, V any](g Getter[K, V]) (map[K]struct{}, error) {
	seq, err := Entries(g)
	if err != nil {
		return nil, err
	}
	out := make(map[K]struct{})
	for k := range seq {
		out[k] = struct{}{}
	}
	traceDrain(KindSet, len(out))
	return out, nil
}

// ToSlice returns g's keys in enumeration order.
func ToSlice[K comparable, V any](g Getter[K, V]) ([]K, error) {
	seq, err := Entries(g)
	if err != nil {
		return nil, err
	}
	out := []K{}
	for k := range seq {
		out = append(out, k)
	}
	traceDrain(KindSlice, len(out))
	return out, nil
}

// ToMap returns g's entries as a map. A key enumerated twice keeps the
// value enumerated last.
func ToMap[K comparable, V any](g Getter[K, V]) (map[K]V, error) {
	seq, err := Entries(g)
	if err != nil {
		return nil, err
	}
	out := make(map[K]V)
	for k, v := range seq {
		out[k] = v
	}
	traceDrain(KindMap, len(out))
	return out, nil
}

// ToRecord returns g's entries keyed by property name. Keys are converted
// with [cast.ToStringE]; a key with no string form fails with
// [ErrInvalidKey].
func ToRecord[K comparable, V any](g Getter[K, V]) (map[string]V, error) {
	seq, err := Entries(g)
	if err != nil {
		return nil, err
	}
	out := make(map[string]V)
	for k, v := range seq {
		name, err := propertyName(k)
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	traceDrain(KindRecord, len(out))
	return out, nil
}

// ToPairs returns g's entries in enumeration order.
func ToPairs[K comparable, V any](g Getter[K, V]) ([]Pair[K, V], error) {
	seq, err := Entries(g)
	if err != nil {
		return nil, err
	}
	out := []Pair[K, V]{}
	for k, v := range seq {
		out = append(out, Pair[K, V]{Key: k, Value: v})
	}
	traceDrain(KindEntries, len(out))
	return out, nil
}

func propertyName(key any) (string, error) {
	name, err := cast.ToStringE(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return name, nil
}

func traceDrain(kind Kind, n int) {
	log().Debug().Stringer("kind", kind).Int("entries", n).Msg("created")
}

// ─────────────────────────────────────────────────────────────────────────────
// Into
// ─────────────────────────────────────────────────────────────────────────────

// Into drains g's enumeration into target and returns target.
//
// The write operation is chosen by the target's capabilities, preferring
// keyed inserts, then appends, then property assignment:
//
//   - map[K]V, map[K]struct{}, map[K]bool, url.Values
//   - Set(K, V) (cornelk/hashmap, alphadose/haxmap, [Nested])
//   - Put(any, any) (gods maps)
//   - ReplaceOrInsert(K) (google/btree), Add(...any) (gods sets and lists)
//   - *[]K, Append(K)
//   - map[string]any and pointers to structs, assigning by property name
//
// Set-like and append-style targets receive keys only. The adapter is
// drained completely before Into returns. An unrecognised target, or a
// nil map or pointer, fails with [ErrUnsupportedTargetKind] before
// anything is written.
func Into[T any, K comparable, V any](target T, g Getter[K, V]) (T, error) {
	seq, err := Entries(g)
	if err != nil {
		return target, err
	}

	if rv := reflect.ValueOf(target); rv.IsValid() {
		switch rv.Kind() {
		case reflect.Map, reflect.Pointer:
			if rv.IsNil() {
				return target, unsupportedTarget(target)
			}
		}
	}

	var put func(K, V) error
	switch t := any(target).(type) {
	case map[K]V:
		put = func(k K, v V) error { t[k] = v; return nil }
	case map[K]struct{}:
		put = func(k K, _ V) error { t[k] = struct{}{}; return nil }
	case map[K]bool:
		put = func(k K, _ V) error { t[k] = true; return nil }
	case url.Values:
		put = func(k K, v V) error {
			name, err := propertyName(k)
			if err != nil {
				return err
			}
			val, err := cast.ToStringE(v)
			if err != nil {
				return fmt.Errorf("%w: value for %q: %v", ErrInvalidKey, name, err)
			}
			t.Add(name, val)
			return nil
		}
	case interface{ Set(K, V) }:
		put = func(k K, v V) error { t.Set(k, v); return nil }
	case interface{ Put(any, any) }:
		put = func(k K, v V) error { t.Put(k, v); return nil }
	case interface{ ReplaceOrInsert(K) (K, bool) }:
		put = func(k K, _ V) error { t.ReplaceOrInsert(k); return nil }
	case interface{ Add(...any) }:
		put = func(k K, _ V) error { t.Add(k); return nil }
	case *[]K:
		put = func(k K, _ V) error { *t = append(*t, k); return nil }
	case interface{ Append(K) }:
		put = func(k K, _ V) error { t.Append(k); return nil }
	case map[string]any:
		put = func(k K, v V) error {
			name, err := propertyName(k)
			if err != nil {
				return err
			}
			t[name] = v
			return nil
		}
	default:
		rv := reflect.ValueOf(target)
		if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
			return target, unsupportedTarget(target)
		}
		put = func(k K, v V) error {
			name, err := propertyName(k)
			if err != nil {
				return err
			}
			return assignField(rv, name, v)
		}
	}

	n := 0
	for k, v := range seq {
		if err := put(k, v); err != nil {
			return target, err
		}
		n++
	}
	log().Debug().Str("target", kindOf(target)).Int("entries", n).Msg("drained into target")
	return target, nil
}
