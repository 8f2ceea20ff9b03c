package gomap

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	"github.com/jotfmt/jot/ir"
)

// Noder is the capability a host type implements to control its own
// conversion into the value model.
type Noder interface {
	ToIR() (*ir.Node, error)
}

var converters = map[reflect.Type]func(any) (*ir.Node, error){}

// Register installs a converter for T, consulted by Wrap before the
// reflective struct path. Not safe to call concurrently with Wrap; wire
// converters up during initialization.
func Register[T any](fn func(T) (*ir.Node, error)) {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	converters[t] = func(v any) (*ir.Node, error) {
		return fn(v.(T))
	}
}

// Wrap normalizes an arbitrary Go value into the model. It is idempotent
// on model values, nil becomes a null node, sequences become arrays, maps
// become objects with nil-valued entries skipped, values of standard
// library types render to their text form, and structs go through the
// exported-field path. A value that cannot be represented yields nil, the
// model's absence; Wrap never fails loudly.
func Wrap(v any) (res *ir.Node) {
	defer func() {
		if recover() != nil {
			res = nil
		}
	}()
	return wrap(v)
}

func wrap(v any) *ir.Node {
	if v == nil {
		return ir.Null()
	}
	switch t := v.(type) {
	case *ir.Node:
		return t
	case *ir.Object:
		return ir.FromObject(t)
	case *ir.Array:
		return ir.FromArray(t)
	case bool:
		return ir.FromBool(t)
	case string:
		return ir.FromString(t)
	case int:
		return ir.FromInt(int64(t))
	case int8:
		return ir.FromInt(int64(t))
	case int16:
		return ir.FromInt(int64(t))
	case int32:
		return ir.FromInt(int64(t))
	case int64:
		return ir.FromInt(t)
	case uint:
		return ir.FromInt(int64(t))
	case uint8:
		return ir.FromInt(int64(t))
	case uint16:
		return ir.FromInt(int64(t))
	case uint32:
		return ir.FromInt(int64(t))
	case uint64:
		return ir.FromInt(int64(t))
	case float32:
		return wrapFloat(float64(t))
	case float64:
		return wrapFloat(t)
	}

	if noder, ok := v.(Noder); ok {
		n, err := noder.ToIR()
		if err != nil {
			return nil
		}
		return n
	}
	rv := reflect.ValueOf(v)
	if fn, ok := converters[rv.Type()]; ok {
		n, err := fn(v)
		if err != nil {
			return nil
		}
		return n
	}
	if tm, ok := v.(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return nil
		}
		return ir.FromString(string(text))
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ir.Null()
		}
		return wrap(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		res := ir.NewArray()
		for i := 0; i < rv.Len(); i++ {
			n := wrap(rv.Index(i).Interface())
			if n == nil {
				return nil
			}
			res.Append(n)
		}
		return ir.FromArray(res)
	case reflect.Map:
		res := ir.NewObject()
		iter := rv.MapRange()
		for iter.Next() {
			mv := iter.Value()
			if isNilValue(mv) {
				continue
			}
			n := wrap(mv.Interface())
			if n == nil {
				continue
			}
			key := mapKey(iter.Key())
			if key == "" {
				continue
			}
			if err := res.Put(key, n); err != nil {
				continue
			}
		}
		return ir.FromObject(res)
	case reflect.Struct:
		if stdlibOwned(rv.Type().PkgPath()) {
			return ir.FromString(fmt.Sprint(v))
		}
		o, err := FromStruct(v)
		if err != nil {
			return nil
		}
		return ir.FromObject(o)
	case reflect.Bool:
		return ir.FromBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ir.FromInt(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return wrapFloat(rv.Float())
	case reflect.String:
		return ir.FromString(rv.String())
	default:
		return nil
	}
}

func wrapFloat(f float64) *ir.Node {
	if err := ir.CheckFinite(f); err != nil {
		return nil
	}
	return ir.FromFloat(f)
}

func isNilValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}

func mapKey(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	return fmt.Sprint(k.Interface())
}

// stdlibOwned reports whether pkgPath names a standard library package:
// the first path element of stdlib packages carries no dot, unlike any
// module-hosted package.
func stdlibOwned(pkgPath string) bool {
	if pkgPath == "" {
		return false
	}
	root, _, _ := strings.Cut(pkgPath, "/")
	return !strings.Contains(root, ".")
}
