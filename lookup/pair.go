package lookup

import "fmt"

// Pair is one enumerated entry. It is the element type produced by
// [ToPairs] and [KindEntries].
type Pair[K, V any] struct {
	Key   K
	Value V
}

// String returns "(key, value)".
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}
