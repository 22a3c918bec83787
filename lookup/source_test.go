package lookup_test

import (
	"errors"
	"iter"
	"maps"
	"net/url"
	"slices"
	"strings"
	"testing"

	"github.com/hasbyte1/go-lookup/lookup"
)

func TestFromSlice(t *testing.T) {
	items := []string{"first", "second"}
	g := lookup.FromSlice(&items)

	assertGet(t, g, "first", true, true)
	assertGet(t, g, "second", true, true)
	assertGet(t, g, "missing", false, false)
	if g.Missing() {
		t.Fatal("Missing should be false")
	}
	assertSlice(t, keysOf(t, g), []string{"first", "second"})

	items = append(items, "third")

	assertGet(t, g, "third", true, true)
	assertSlice(t, keysOf(t, g), []string{"first", "second", "third"})
}

func TestFromSliceEnumeratesDuplicatesOnce(t *testing.T) {
	items := []string{"x", "y", "x", "z", "y"}
	g := lookup.FromSlice(&items)

	assertGet(t, g, "x", true, true)
	assertSlice(t, keysOf(t, g), []string{"x", "y", "z"})
	assertSlice(t, keysOf(t, lookup.FromValues(items)), []string{"x", "y", "z"})
}

func TestFromSliceNil(t *testing.T) {
	g := lookup.FromSlice[string](nil)
	assertGet(t, g, "x", false, false)
	assertSlice(t, keysOf(t, g), []string{})
}

func TestFromValues(t *testing.T) {
	items := []string{"first", "second"}
	g := lookup.FromValues(items)
	items[1] = "changed"
	assertGet(t, g, "changed", true, true)
	assertGet(t, g, "second", false, false)
}

func TestFromSet(t *testing.T) {
	set := map[string]struct{}{"first": {}, "second": {}}
	g := lookup.FromSet(set)

	assertGet(t, g, "first", true, true)
	assertGet(t, g, "missing", false, false)
	assertMap(t, entries(t, g), map[string]bool{"first": true, "second": true})

	set["third"] = struct{}{}

	assertGet(t, g, "third", true, true)
	assertMap(t, entries(t, g), map[string]bool{"first": true, "second": true, "third": true})
}

func TestFromMap(t *testing.T) {
	m := map[string]int{"first": 1, "second": 2, "zero": 0}
	g := lookup.FromMap(m)

	assertGet(t, g, "first", 1, true)
	assertGet(t, g, "second", 2, true)
	assertGet(t, g, "zero", 0, true)
	assertGet(t, g, "missing", 0, false)
	if g.Missing() != 0 {
		t.Fatalf("Missing = %d; want 0", g.Missing())
	}
	assertMap(t, entries(t, g), m)

	delete(m, "zero")
	assertGet(t, g, "zero", 0, false)
}

func TestFromForm(t *testing.T) {
	form := url.Values{}
	form.Set("first", "ONE")
	form.Set("second", "TWO")
	form.Add("second", "DEUX")
	g := lookup.FromForm(form)

	assertGet(t, g, "first", "ONE", true)
	assertGet(t, g, "second", "TWO", true)
	assertGet(t, g, "missing", "", false)
	if g.Missing() != "" {
		t.Fatalf("Missing = %q; want empty", g.Missing())
	}

	pairs, err := lookup.ToPairs(g)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, pairs, []lookup.Pair[string, string]{
		{Key: "first", Value: "ONE"},
		{Key: "second", Value: "TWO"},
	})

	form["empty"] = nil
	assertGet(t, g, "empty", "", false)
	if n := len(keysOf(t, g)); n != 2 {
		t.Fatalf("names with no values must not be enumerated; got %d keys", n)
	}
}

type plan struct {
	Name    string
	Cost    int    `lookup:"cost"`
	Secret  string `lookup:"-"`
	private bool
}

func TestFromRecord(t *testing.T) {
	p := &plan{Name: "premium", Cost: 50, Secret: "s3cr3t", private: true}
	g, err := lookup.FromRecord(p)
	if err != nil {
		t.Fatal(err)
	}

	if v, ok := g.Get("Name"); !ok || v != "premium" {
		t.Fatalf("Get(Name) = (%v, %v)", v, ok)
	}
	if v, ok := g.Get("cost"); !ok || v != 50 {
		t.Fatalf("Get(cost) = (%v, %v)", v, ok)
	}
	for _, hidden := range []string{"Cost", "Secret", "private", "missing"} {
		if v, ok := g.Get(hidden); ok || v != nil {
			t.Fatalf("Get(%s) = (%v, %v); want (nil, false)", hidden, v, ok)
		}
	}
	assertSlice(t, keysOf(t, g), []string{"Name", "cost"})

	// frozen: later writes to the struct are not visible
	p.Cost = 99
	if v, _ := g.Get("cost"); v != 50 {
		t.Fatalf("record source should be frozen; Get(cost) = %v", v)
	}
}

func TestFromRecordRejectsNonStruct(t *testing.T) {
	for _, in := range []any{42, "text", map[string]int{}, nil, (*plan)(nil)} {
		_, err := lookup.FromRecord(in)
		if !errors.Is(err, lookup.ErrUnsupportedSourceKind) {
			t.Fatalf("FromRecord(%T) err = %v; want ErrUnsupportedSourceKind", in, err)
		}
	}
}

func TestFromNested(t *testing.T) {
	m := map[string]any{
		"user": map[string]any{
			"name":    "Alice",
			"address": map[string]any{"city": "London"},
		},
		"score": 42,
	}
	g := lookup.FromNested(m)

	if v, ok := g.Get("user.address.city"); !ok || v != "London" {
		t.Fatalf("Get(user.address.city) = (%v, %v)", v, ok)
	}
	if v, ok := g.Get("score"); !ok || v != 42 {
		t.Fatalf("Get(score) = (%v, %v)", v, ok)
	}
	if _, ok := g.Get("user.missing"); ok {
		t.Fatal("Get(user.missing) should miss")
	}
	if _, ok := g.Get("score.deeper"); ok {
		t.Fatal("Get through a leaf should miss")
	}
	assertSlice(t, keysOf(t, g), []string{"score", "user.address.city", "user.name"})

	lookup.Nested(m).Set("user.address.postcode", "EC1")
	if v, ok := g.Get("user.address.postcode"); !ok || v != "EC1" {
		t.Fatalf("nested source should be live; Get(postcode) = (%v, %v)", v, ok)
	}
}

func TestFromNestedDottedKeys(t *testing.T) {
	m := map[string]any{
		"a.b": 1,
		"a":   map[string]any{"b": 2, "c": 3},
		"x":   map[string]any{"y.z": 4},
	}
	g := lookup.FromNested(m)

	if v, ok := g.Get("a.b"); !ok || v != 1 {
		t.Fatalf("Get(a.b) = (%v, %v); want (1, true)", v, ok)
	}
	if v, ok := g.Get("x.y.z"); !ok || v != 4 {
		t.Fatalf("Get(x.y.z) = (%v, %v); want (4, true)", v, ok)
	}

	got := map[string]any{}
	for k, v := range g.Entries() {
		if _, dup := got[k]; dup {
			t.Fatalf("path %q enumerated twice", k)
		}
		got[k] = v
		if pv, ok := g.Get(k); !ok || pv != v {
			t.Fatalf("enumerated (%q, %v) but Get = (%v, %v)", k, v, pv, ok)
		}
	}
	if len(got) != 3 {
		t.Fatalf("enumerated %v; want a.b, a.c and x.y.z", got)
	}

	n := lookup.Nested(m)
	n.Set("a.b", 10)
	if v, _ := g.Get("a.b"); v != 10 {
		t.Fatalf("Set(a.b) should overwrite the dotted key; Get = %v", v)
	}
	n.Set("x.y.z", 40)
	if v, _ := g.Get("x.y.z"); v != 40 {
		t.Fatalf("Set(x.y.z) = %v; want 40", v)
	}
}

func TestFromSeq(t *testing.T) {
	backing := []string{"a", "b", "a", "c"}
	g := lookup.FromSeq(slices.Values(backing))

	assertGet(t, g, "a", true, true)
	assertGet(t, g, "z", false, false)
	assertSlice(t, keysOf(t, g), []string{"a", "b", "c"})

	backing[0] = "z"
	assertGet(t, g, "z", false, false)
}

// ─────────────────────────────────────────────────────────────────────────────
// Shapes
// ─────────────────────────────────────────────────────────────────────────────

type stdMap map[string]int

func (m stdMap) Get(k string) (int, bool) { v, ok := m[k]; return v, ok }
func (m stdMap) All() iter.Seq2[string, int] { return maps.All(map[string]int(m)) }

type rangeMap map[string]int

func (m rangeMap) Get(k string) (int, bool) { v, ok := m[k]; return v, ok }

func (m rangeMap) Range(fn func(string, int) bool) {
	for k, v := range m {
		if !fn(k, v) {
			return
		}
	}
}

type eachMap map[string]int

func (m eachMap) Get(k string) (int, bool) { v, ok := m[k]; return v, ok }

func (m eachMap) ForEach(fn func(string, int) bool) {
	for k, v := range m {
		if !fn(k, v) {
			return
		}
	}
}

type tagSet []string

func (s tagSet) Has(k string) bool     { return slices.Contains(s, k) }
func (s tagSet) All() iter.Seq[string] { return slices.Values(s) }

func TestShapes(t *testing.T) {
	want := map[string]int{"a": 1, "b": 2}

	for name, src := range map[string]lookup.Source[string, int]{
		"mapper":    lookup.FromMapper[string, int](stdMap{"a": 1, "b": 2}),
		"ranger":    lookup.FromRanger[string, int](rangeMap{"a": 1, "b": 2}),
		"foreacher": lookup.FromForEacher[string, int](eachMap{"a": 1, "b": 2}),
	} {
		t.Run(name, func(t *testing.T) {
			assertGet(t, src, "a", 1, true)
			assertGet(t, src, "z", 0, false)
			assertMap(t, entries(t, src), want)
		})
	}

	c := lookup.FromContainer[string](tagSet{"x", "y"})
	assertGet(t, c, "x", true, true)
	assertGet(t, c, "z", false, false)
	assertSlice(t, keysOf(t, c), []string{"x", "y"})
}

// ─────────────────────────────────────────────────────────────────────────────
// Of
// ─────────────────────────────────────────────────────────────────────────────

func TestOfDispatch(t *testing.T) {
	items := []string{"x", "y"}

	tests := []struct {
		name string
		in   any
		key  string
		want bool
	}{
		{"slice pointer", &items, "x", true},
		{"slice", []string{"x"}, "x", true},
		{"set", map[string]struct{}{"x": {}}, "x", true},
		{"bool map", map[string]bool{"x": false}, "x", false},
		{"container", tagSet{"x"}, "x", true},
		{"seq", slices.Values([]string{"x"}), "x", true},
		{"func", func(yield func(string) bool) { yield("x") }, "x", true},
		{"source", lookup.Single("x"), "x", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := lookup.Of[string, bool](tc.in)
			if err != nil {
				t.Fatalf("Of: %v", err)
			}
			got, ok := g.Get(tc.key)
			if got != tc.want || !ok {
				t.Fatalf("Get(%q) = (%v, %v); want (%v, true)", tc.key, got, ok, tc.want)
			}
		})
	}
}

func TestOfValued(t *testing.T) {
	m, err := lookup.Of[string, int](map[string]int{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	assertGet(t, m, "a", 1, true)

	f, err := lookup.Of[string, string](url.Values{"a": {"A"}})
	if err != nil {
		t.Fatal(err)
	}
	assertGet(t, f, "a", "A", true)

	r, err := lookup.Of[string, any](plan{Name: "basic", Cost: 20})
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := r.Get("cost"); !ok || v != 20 {
		t.Fatalf("record Get(cost) = (%v, %v)", v, ok)
	}

	n, err := lookup.Of[string, any](lookup.Nested{"a": map[string]any{"b": 1}})
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := n.Get("a.b"); !ok || v != 1 {
		t.Fatalf("nested Get(a.b) = (%v, %v)", v, ok)
	}

	for _, in := range []any{stdMap{"a": 1}, rangeMap{"a": 1}, eachMap{"a": 1}} {
		g, err := lookup.Of[string, int](in)
		if err != nil {
			t.Fatalf("Of(%T): %v", in, err)
		}
		assertGet(t, g, "a", 1, true)
	}
}

func TestOfUnsupported(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind string
	}{
		{"nil", nil, "nil"},
		{"int", 42, "int"},
		{"channel", make(chan string), "chan"},
		{"plain function", func() string { return "abc" }, "func"},
		{"slice for valued source", []string{"x"}, "[]string"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lookup.Of[string, int](tc.in)
			if !errors.Is(err, lookup.ErrUnsupportedSourceKind) {
				t.Fatalf("err = %v; want ErrUnsupportedSourceKind", err)
			}
			if !strings.Contains(err.Error(), tc.kind) {
				t.Fatalf("error %q should name %q", err, tc.kind)
			}
		})
	}
}

func TestOfNilSlicePointer(t *testing.T) {
	_, err := lookup.Of[string, bool]((*[]string)(nil))
	if !errors.Is(err, lookup.ErrUnsupportedSourceKind) {
		t.Fatalf("err = %v; want ErrUnsupportedSourceKind", err)
	}
	if !strings.Contains(err.Error(), "*[]string") {
		t.Fatalf("error %q should name *[]string", err)
	}
}

func TestOfFallsThroughOnValueType(t *testing.T) {
	g, err := lookup.Of[string, struct{}](map[string]struct{}{"x": {}})
	if err != nil {
		t.Fatalf("Of: %v", err)
	}
	assertGet(t, g, "x", struct{}{}, true)
	assertGet(t, g, "y", struct{}{}, false)

	set, err := lookup.Of[string, bool](map[string]struct{}{"x": {}})
	if err != nil {
		t.Fatalf("Of: %v", err)
	}
	assertGet(t, set, "x", true, true)
}

func TestMustOfPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustOf should panic on unsupported input")
		}
	}()
	lookup.MustOf[string, bool](3.14)
}
