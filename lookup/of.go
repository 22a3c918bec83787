package lookup

import (
	"iter"
	"net/url"
	"reflect"
)

// Of adapts collection to a Source by matching it against a closed set of
// shapes, in this order:
//
//   - a Source[K, V] (returned unchanged)
//   - *[]K and []K (sequence-like, boolean)
//   - map[K]struct{} (set-like, boolean)
//   - map[K]V (map-like)
//   - url.Values (form-like, K and V string)
//   - [Mapper], [Ranger], [ForEacher] (map-like)
//   - [Container] (set-like, boolean)
//   - iter.Seq[K] (drained once, boolean)
//   - a struct or pointer to struct (record-like, K string and V any)
//
// Boolean shapes only match when V is bool; a shape whose key or value
// types differ from K and V is skipped and dispatch moves on to the next.
// A nil slice pointer matches nothing. Anything else fails with
// [ErrUnsupportedSourceKind] naming the runtime type.
//
//	src, err := lookup.Of[string, bool](&titles)
func Of[K comparable, V any](collection any) (Source[K, V], error) {
	src, name := match[K, V](collection)
	if src == nil {
		log().Debug().Str("kind", kindOf(collection)).Msg("no source shape matched")
		return nil, unsupportedSource(collection)
	}
	log().Debug().Str("shape", name).Str("kind", kindOf(collection)).Msg("source adapted")
	return src, nil
}

// MustOf is like Of but panics on error. Intended for package-level
// variables and tests.
func MustOf[K comparable, V any](collection any) Source[K, V] {
	src, err := Of[K, V](collection)
	if err != nil {
		panic(err)
	}
	return src
}

// shape is one entry of the dispatch table: adapt returns nil when
// collection does not have the shape, or has it with other key or value
// types than K and V.
type shape[K comparable, V any] struct {
	name  string
	adapt func(collection any) Source[K, V]
}

func shapes[K comparable, V any]() []shape[K, V] {
	return []shape[K, V]{
		{"source", func(c any) Source[K, V] {
			s, _ := c.(Source[K, V])
			return s
		}},
		{"sequence", func(c any) Source[K, V] {
			if p, ok := c.(*[]K); ok && p != nil {
				return as[K, V](FromSlice(p))
			}
			return nil
		}},
		{"sequence", func(c any) Source[K, V] {
			if items, ok := c.([]K); ok {
				return as[K, V](FromValues(items))
			}
			return nil
		}},
		{"set", func(c any) Source[K, V] {
			if set, ok := c.(map[K]struct{}); ok {
				return as[K, V](FromSet(set))
			}
			return nil
		}},
		{"map", func(c any) Source[K, V] {
			if m, ok := c.(map[K]V); ok {
				return FromMap(m)
			}
			return nil
		}},
		{"form", func(c any) Source[K, V] {
			if form, ok := c.(url.Values); ok {
				return as[K, V](FromForm(form))
			}
			return nil
		}},
		{"mapper", func(c any) Source[K, V] {
			if m, ok := c.(Mapper[K, V]); ok {
				return FromMapper(m)
			}
			return nil
		}},
		{"ranger", func(c any) Source[K, V] {
			if m, ok := c.(Ranger[K, V]); ok {
				return FromRanger(m)
			}
			return nil
		}},
		{"foreacher", func(c any) Source[K, V] {
			if m, ok := c.(ForEacher[K, V]); ok {
				return FromForEacher(m)
			}
			return nil
		}},
		{"container", func(c any) Source[K, V] {
			if set, ok := c.(Container[K]); ok {
				return as[K, V](FromContainer(set))
			}
			return nil
		}},
		{"seq", func(c any) Source[K, V] {
			switch seq := c.(type) {
			case iter.Seq[K]:
				return as[K, V](FromSeq(seq))
			case func(func(K) bool):
				return as[K, V](FromSeq(iter.Seq[K](seq)))
			}
			return nil
		}},
		{"record", func(c any) Source[K, V] {
			if !isRecord(c) {
				return nil
			}
			rec, err := FromRecord(c)
			if err != nil {
				return nil
			}
			return as[K, V](rec)
		}},
	}
}

// match returns the first shape that adapts collection. A shape matched
// with the wrong value type falls through to the later ones, so
// map[K]struct{} still adapts as a map when V is struct{}.
func match[K comparable, V any](collection any) (Source[K, V], string) {
	for _, sh := range shapes[K, V]() {
		if src := sh.adapt(collection); src != nil {
			return src, sh.name
		}
	}
	return nil, ""
}

// as converts src to Source[K, V] when the instantiation allows it, that is
// when src's key and value types are K and V. It returns nil otherwise.
func as[K, V any](src any) Source[K, V] {
	if s, ok := src.(Source[K, V]); ok {
		return s
	}
	return nil
}

func isRecord(v any) bool {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Struct
}
