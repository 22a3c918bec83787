package lookup

import (
	"fmt"
	"iter"
	"reflect"
	"strings"
)

// TagName is the struct tag consulted for record field names. A tag value
// of "-" hides the field.
const TagName = "lookup"

type recordSource struct {
	names  []string
	values map[string]any
}

func (r *recordSource) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

func (*recordSource) Missing() any { return nil }

func (r *recordSource) Entries() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, name := range r.names {
			if !yield(name, r.values[name]) {
				return
			}
		}
	}
}

// FromRecord returns a source over the exported fields of a struct or
// pointer to struct, keyed by field name (or by its `lookup` tag) and
// enumerated in declaration order.
//
// Field values are copied at construction, so the source is frozen: later
// writes to rec are not visible. Any other input fails with
// [ErrUnsupportedSourceKind].
func FromRecord(rec any) (Source[string, any], error) {
	v := reflect.ValueOf(rec)
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, unsupportedSource(rec)
	}

	r := &recordSource{values: make(map[string]any)}
	for _, f := range reflect.VisibleFields(v.Type()) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		name, ok := fieldName(f)
		if !ok {
			continue
		}
		if _, dup := r.values[name]; dup {
			continue
		}
		fv, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			// promoted through a nil embedded pointer
			continue
		}
		r.names = append(r.names, name)
		r.values[name] = fv.Interface()
	}
	return r, nil
}

func fieldName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup(TagName)
	if !ok {
		return f.Name, true
	}
	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return "", false
	case "":
		return f.Name, true
	}
	return name, true
}

// assignField sets the exported field of *ptr addressed by name to val,
// converting val when its type is convertible to the field type.
func assignField(ptr reflect.Value, name string, val any) error {
	st := ptr.Elem()
	for _, f := range reflect.VisibleFields(st.Type()) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		fn, ok := fieldName(f)
		if !ok || fn != name {
			continue
		}
		field, err := st.FieldByIndexErr(f.Index)
		if err != nil || !field.CanSet() {
			return fmt.Errorf("%w: field %q of %s is not settable", ErrInvalidKey, name, st.Type())
		}
		if val == nil {
			field.SetZero()
			return nil
		}
		rv := reflect.ValueOf(val)
		switch {
		case rv.Type().AssignableTo(field.Type()):
			field.Set(rv)
		case convertible(rv.Type(), field.Type()):
			field.Set(rv.Convert(field.Type()))
		default:
			return fmt.Errorf("%w: cannot assign %s to field %q (%s)", ErrInvalidKey, rv.Type(), name, field.Type())
		}
		return nil
	}
	return fmt.Errorf("%w: %s has no field %q", ErrInvalidKey, st.Type(), name)
}

// convertible excludes integer-to-string conversions, which reflect
// allows but which produce a rune rather than the decimal text.
func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}
	return to.Kind() != reflect.String || from.Kind() == reflect.String
}
