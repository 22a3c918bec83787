package backing

import (
	"github.com/google/btree"

	"github.com/hasbyte1/go-lookup/lookup"
)

// DefaultDegree is the B-tree degree used by [NewBTree].
const DefaultDegree = 32

// NewBTree returns an empty ordered B-tree set of K.
func NewBTree[K btree.Ordered]() *btree.BTreeG[K] {
	return btree.NewOrderedG[K](DefaultDegree)
}

// BTree returns a live boolean source over a google/btree set, enumerated
// in ascending order. The tree is also a valid lookup.Into target: keys
// are inserted with ReplaceOrInsert.
func BTree[K any](t *btree.BTreeG[K]) lookup.Source[K, bool] {
	return lookup.FromFuncs(
		func(key K) (bool, bool) {
			ok := t.Has(key)
			return ok, ok
		},
		func(yield func(K, bool) bool) {
			t.Ascend(func(item K) bool { return yield(item, true) })
		},
	)
}
