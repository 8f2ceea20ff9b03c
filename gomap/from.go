package gomap

import (
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/jotfmt/jot/ir"
)

// FromStruct converts a struct (or pointer to one) into an object by
// scanning its exported fields. The member name is the field name with its
// leading rune lowered, unless the following rune is also upper case, which
// preserves acronym fields like "URL". A `jot:"name"` tag overrides the
// name and `jot:"-"` skips the field. A field whose value cannot be
// normalized is skipped; the conversion is best effort and only fails when
// v is not a struct at all.
func FromStruct(v any) (*ir.Object, error) {
	rv, err := structValue(v)
	if err != nil {
		return nil, err
	}
	res := ir.NewObject()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Tag.Get("jot")
		if name == "-" {
			continue
		}
		if name == "" {
			name = fieldKey(f.Name)
		}
		n := Wrap(rv.Field(i).Interface())
		if n == nil {
			continue
		}
		if err := res.Put(name, n); err != nil {
			continue
		}
	}
	return res, nil
}

// FromFields converts the named public fields of a struct into an object.
// Names that do not resolve to an exported field are silently skipped.
func FromFields(v any, names ...string) (*ir.Object, error) {
	rv, err := structValue(v)
	if err != nil {
		return nil, err
	}
	res := ir.NewObject()
	for _, name := range names {
		fv := rv.FieldByName(name)
		if !fv.IsValid() || !fv.CanInterface() {
			continue
		}
		n := Wrap(fv.Interface())
		if n == nil {
			continue
		}
		if err := res.Put(name, n); err != nil {
			continue
		}
	}
	return res, nil
}

// FromMap converts a key-value source into an object, passing every value
// through Wrap. Entries with nil or unrepresentable values are skipped.
func FromMap(m map[string]any) *ir.Object {
	res := ir.NewObject()
	for key, val := range m {
		if key == "" || val == nil {
			continue
		}
		n := Wrap(val)
		if n == nil {
			continue
		}
		if err := res.Put(key, n); err != nil {
			continue
		}
	}
	return res
}

func structValue(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return rv, &ConvertError{Message: "nil pointer"}
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return rv, &ConvertError{Message: "not a struct: " + rv.Kind().String()}
	}
	return rv, nil
}

func fieldKey(name string) string {
	r, sz := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	if next, _ := utf8.DecodeRuneInString(name[sz:]); unicode.IsUpper(next) {
		return name
	}
	return string(unicode.ToLower(r)) + name[sz:]
}
