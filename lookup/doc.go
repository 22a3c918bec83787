// Package lookup provides one membership/lookup abstraction over slices,
// sets, maps, form data and records, and a lazy algebra that composes
// those adapters without materializing intermediate results.
//
// # Adapters
//
// Every adapter is a [Getter]: it answers point queries with Get and
// reports its miss sentinel with Missing. Adapters that can list their
// members are also a [Source] and expose Entries, an [iter.Seq2] built
// fresh on every call:
//
//	titles := []string{"The Americans", "Breaking Bad"}
//	dramas := lookup.FromSlice(&titles)
//
//	dramas.Get("Breaking Bad") // true, true
//	dramas.Get("The Wire")     // false, false
//	for title := range dramas.Entries() { … }
//
// Adapters over slices (through a pointer), sets, maps and form data are
// live views of the backing collection. Adapters over records, drained
// iterators and single entries are frozen at construction.
//
// [Of] picks the right adapter for a collection by its shape and fails
// with [ErrUnsupportedSourceKind] for anything it does not recognise.
//
// # Algebra
//
// [Complement], [Union], [Difference] and [Intersection] take getters and
// return getters. They keep references to their operands and evaluate on
// demand, so a composed expression can be queried repeatedly and always
// reflects the current state of the live views it was built from:
//
//	comedies := lookup.FromValues([]string{"Flight of the Conchords"})
//	shows := lookup.Union(dramas, comedies)
//	the := lookup.Func(func(s string) bool { return strings.HasPrefix(s, "The ") })
//	picks := lookup.Intersection(shows, the)
//
// Membership replaces truthiness: a key is in a getter when Get returns
// ok == true, whatever the value. A mapped 0 or "" is still a member.
//
// Complement, Always, UniversalSet and Func have no enumeration; neither
// does a union with one of them as an operand.
//
// # Materializing
//
// [Create] and the typed helpers ([ToSet], [ToSlice], [ToMap], [ToRecord],
// [ToPairs]) drain an enumerable getter into a new collection. [Into]
// drains it into an existing one. Both fail with [ErrNonEnumerable] when
// the getter cannot be enumerated.
//
// # Concurrency
//
// Nothing in this package synchronises. Mutating a live view's backing
// collection while another goroutine enumerates it carries the same
// hazards as mutating the collection directly.
package lookup
