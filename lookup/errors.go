package lookup

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors returned by constructors, Entries and the materializers.
var (
	// ErrUnsupportedSourceKind is returned by [Of] and [FromRecord] when the
	// collection matches none of the recognised shapes.
	ErrUnsupportedSourceKind = errors.New("lookup: unsupported source kind")

	// ErrNonEnumerable is returned when enumeration is requested from a
	// getter that only answers point queries.
	ErrNonEnumerable = errors.New("lookup: getter is not enumerable")

	// ErrUnsupportedKind is returned by [Create] for an unknown [Kind].
	ErrUnsupportedKind = errors.New("lookup: unsupported collection kind")

	// ErrUnsupportedTargetKind is returned by [Into] when the target exposes
	// no insert, append or assignable-field capability.
	ErrUnsupportedTargetKind = errors.New("lookup: unsupported target kind")

	// ErrInvalidKey is returned when a key cannot be used as a record
	// property name or struct field.
	ErrInvalidKey = errors.New("lookup: invalid key")
)

// kindOf names the runtime type and kind of v, e.g. "chan int (chan)".
func kindOf(v any) string {
	if v == nil {
		return "nil"
	}
	t := reflect.TypeOf(v)
	return fmt.Sprintf("%s (%s)", t, t.Kind())
}

func unsupportedSource(v any) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedSourceKind, kindOf(v))
}

func unsupportedTarget(v any) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedTargetKind, kindOf(v))
}

func nonEnumerable(g any) error {
	return fmt.Errorf("%w: %T", ErrNonEnumerable, g)
}
