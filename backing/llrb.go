package backing

import (
	"github.com/petar/GoLLRB/llrb"

	"github.com/hasbyte1/go-lookup/lookup"
)

// LLRB returns a live boolean source over a left-leaning red-black tree,
// enumerated in ascending order. Items of a type other than K are skipped.
func LLRB[K llrb.Item](t *llrb.LLRB) lookup.Source[K, bool] {
	return lookup.FromFuncs(
		func(key K) (bool, bool) {
			ok := t.Has(key)
			return ok, ok
		},
		func(yield func(K, bool) bool) {
			first := t.Min()
			if first == nil {
				return
			}
			t.AscendGreaterOrEqual(first, func(i llrb.Item) bool {
				k, ok := i.(K)
				if !ok {
					return true
				}
				return yield(k, true)
			})
		},
	)
}

type llrbTarget[K llrb.Item] struct{ t *llrb.LLRB }

func (l llrbTarget[K]) ReplaceOrInsert(key K) (K, bool) {
	old, ok := l.t.ReplaceOrInsert(key).(K)
	return old, ok
}

// IntoLLRB drains g's keys into t and returns t.
func IntoLLRB[K interface {
	comparable
	llrb.Item
}, V any](t *llrb.LLRB, g lookup.Getter[K, V]) (*llrb.LLRB, error) {
	if _, err := lookup.Into(llrbTarget[K]{t: t}, g); err != nil {
		return t, err
	}
	return t, nil
}
