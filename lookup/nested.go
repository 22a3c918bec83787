package lookup

import (
	"iter"
	"slices"
	"strings"

	"github.com/spf13/cast"
)

// Nested is a record of nested map[string]any values addressed with
// dot-notation paths:
//
//	n := lookup.Nested{
//	    "user": map[string]any{
//	        "name":    "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	}
//	n.Get("user.address.city") // "London", true
//
// Nested satisfies [Mapper], so [Of] accepts it, and it has a Put method,
// so [Into] can write flattened entries back into nested form.
type Nested map[string]any

// Get returns the value at the dot-notation path. At each level a key
// equal to the whole remaining path is preferred over splitting it at the
// first dot, so keys that contain dots stay addressable.
func (n Nested) Get(path string) (any, bool) {
	val, _, ok := n.resolve(path)
	return val, ok
}

// resolve is Get that also reports the depth, counted from 1, of the map
// holding the value.
func (n Nested) resolve(path string) (any, int, bool) {
	current := map[string]any(n)
	for depth := 1; ; depth++ {
		if val, ok := current[path]; ok {
			return val, depth, true
		}
		seg, rest, more := strings.Cut(path, ".")
		if !more {
			return nil, 0, false
		}
		nested, ok := current[seg].(map[string]any)
		if !ok {
			return nil, 0, false
		}
		current, path = nested, rest
	}
}

// All yields every leaf as a (path, value) pair, sorted by path segment at
// each level. Empty nested maps and maps stored under a dotted key are
// leaves. A path is yielded once, with the value Get returns for it.
func (n Nested) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		n.walk("", 1, n, yield)
	}
}

func (n Nested) walk(prefix string, depth int, m map[string]any, yield func(string, any) bool) bool {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		path := k
		if depth > 1 {
			path = prefix + "." + k
		}
		if sub, ok := m[k].(map[string]any); ok && len(sub) > 0 && !strings.Contains(k, ".") {
			if !n.walk(path, depth+1, sub, yield) {
				return false
			}
			continue
		}
		// A shallower key spelling the same path shadows this one.
		if _, at, _ := n.resolve(path); at != depth {
			continue
		}
		if !yield(path, m[k]) {
			return false
		}
	}
	return true
}

// Set writes value at the dot-notation path, creating intermediate maps
// and replacing non-map intermediates. An existing key equal to the
// remaining path is overwritten in place, so Get(path) returns value
// afterwards.
func (n Nested) Set(path string, value any) {
	current := map[string]any(n)
	for {
		if _, ok := current[path]; ok {
			current[path] = value
			return
		}
		seg, rest, more := strings.Cut(path, ".")
		if !more {
			current[seg] = value
			return
		}
		nested, ok := current[seg].(map[string]any)
		if !ok {
			nested = make(map[string]any)
			current[seg] = nested
		}
		current, path = nested, rest
	}
}

// Put is Set with the key converted to a string path. It lets [Into]
// drain sources with non-string keys into a Nested record.
func (n Nested) Put(key, value any) {
	n.Set(cast.ToString(key), value)
}

// FromNested returns a live view over m addressed by dot-notation paths.
func FromNested(m map[string]any) Source[string, any] {
	return FromMapper[string, any](Nested(m))
}
