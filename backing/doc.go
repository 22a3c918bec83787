// Package backing adapts third-party containers to the lookup protocol.
//
// The containers here either predate generics (emirpasic/gods stores
// interface{} values) or use method names lookup's shapes do not cover
// (google/btree, petar/GoLLRB). Each adapter is a live view: changes to
// the container are visible through the source.
//
//	m := linkedhashmap.New()
//	m.Put("premium", 50)
//	plans := backing.GodsMap[string, int](m)
//	plans.Get("premium") // 50, true
//
// The concurrent maps from alphadose/haxmap and cornelk/hashmap already
// match [lookup.ForEacher] and [lookup.Ranger] and need no adapter beyond
// lookup.Of; this package only provides constructors for them.
package backing
