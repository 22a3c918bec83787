package lookup_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-lookup/lookup"
)

// makeKeys creates n distinct string keys for benchmarks.
func makeKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}

func makeSet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

func BenchmarkUnionGet(b *testing.B) {
	keys := makeKeys(10_000)
	g := lookup.Union(lookup.FromSet(makeSet(keys[:5_000])), lookup.FromSet(makeSet(keys[5_000:])))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Get(keys[i%len(keys)])
	}
}

func BenchmarkDifferenceEntries(b *testing.B) {
	keys := makeKeys(10_000)
	a := lookup.FromSet(makeSet(keys))
	odd := lookup.Func(func(k string) bool { n, _ := strconv.Atoi(k); return n%2 == 1 })
	g := lookup.Difference(a, odd)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lookup.ToSet(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIntoMap(b *testing.B) {
	src := make(map[string]int, 10_000)
	for i, k := range makeKeys(10_000) {
		src[k] = i
	}
	g := lookup.FromMap(src)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lookup.Into(make(map[string]int, len(src)), g); err != nil {
			b.Fatal(err)
		}
	}
}
