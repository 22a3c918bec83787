package backing

import (
	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"

	"github.com/hasbyte1/go-lookup/lookup"
)

var (
	_ lookup.ForEacher[string, any] = (*haxmap.Map[string, any])(nil)
	_ lookup.Ranger[string, any]    = (*hashmap.Map[string, any])(nil)
)

// NewHaxMap returns an empty string-keyed alphadose/haxmap. Pass it to
// lookup.FromForEacher (or lookup.Of) for a live source, or to lookup.Into
// as a keyed target.
func NewHaxMap[V any]() *haxmap.Map[string, V] {
	return haxmap.New[string, V]()
}

// NewHashMap returns an empty string-keyed cornelk/hashmap. Pass it to
// lookup.FromRanger (or lookup.Of) for a live source, or to lookup.Into as
// a keyed target.
func NewHashMap[V any]() *hashmap.Map[string, V] {
	return hashmap.New[string, V]()
}
