package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Object maps unique string keys to nodes. Iteration follows insertion
// order and is stable for the lifetime of the instance, so repeated
// encodings of one object agree byte for byte.
//
// The empty string is not a valid key. A key never holds a Go nil: storing
// nil removes the key, storing a null node keeps it.
//
// An Object is not safe for concurrent mutation; callers synchronize.
type Object struct {
	keys []string
	vals map[string]*Node
}

func NewObject() *Object {
	return &Object{vals: map[string]*Node{}}
}

// Subset copies the named members into a new object, sharing values.
// Names missing from o are silently skipped.
func (o *Object) Subset(names ...string) *Object {
	res := NewObject()
	for _, name := range names {
		if n, ok := o.vals[name]; ok {
			res.set(name, n)
		}
	}
	return res
}

// FromDottedKeys expands a flat table of dotted-path keys into nested
// objects: "a.b.c" descends through objects at "a" and "b", creating them
// as needed, and stores the string value at "c". When two entries collide
// on a leaf, the later-processed one wins; table iteration order is
// unspecified.
func FromDottedKeys(table map[string]string) *Object {
	res := NewObject()
	for key, val := range table {
		if key == "" {
			continue
		}
		target := res
		path := strings.Split(key, ".")
		for _, seg := range path[:len(path)-1] {
			next := target.Opt(seg)
			if next == nil || next.Type != ObjectType {
				nested := NewObject()
				target.set(seg, FromObject(nested))
				target = nested
				continue
			}
			target = next.Object
		}
		target.set(path[len(path)-1], FromString(val))
	}
	return res
}

func (o *Object) Len() int {
	return len(o.keys)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	res := make([]string, len(o.keys))
	copy(res, o.keys)
	return res
}

func (o *Object) Has(key string) bool {
	_, ok := o.vals[key]
	return ok
}

// IsNull reports whether key holds a null node. A missing key is not null.
func (o *Object) IsNull(key string) bool {
	n, ok := o.vals[key]
	return ok && n.Type == NullType
}

func (o *Object) Get(key string) (*Node, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	n, ok := o.vals[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return n, nil
}

// Opt returns the value under key, or nil if absent.
func (o *Object) Opt(key string) *Node {
	return o.vals[key]
}

func (o *Object) GetBool(key string) (bool, error) {
	n, err := o.Get(key)
	if err != nil {
		return false, err
	}
	return coerceBool(n, key)
}

func (o *Object) GetInt(key string) (int64, error) {
	n, err := o.Get(key)
	if err != nil {
		return 0, err
	}
	return coerceInt(n, key)
}

func (o *Object) GetFloat(key string) (float64, error) {
	n, err := o.Get(key)
	if err != nil {
		return 0, err
	}
	return coerceFloat(n, key)
}

func (o *Object) GetString(key string) (string, error) {
	n, err := o.Get(key)
	if err != nil {
		return "", err
	}
	if n.Type != StringType {
		return "", fmt.Errorf("%w: %q holds %s, not a string", ErrTypeMismatch, key, n.Type)
	}
	return n.String, nil
}

func (o *Object) GetObject(key string) (*Object, error) {
	n, err := o.Get(key)
	if err != nil {
		return nil, err
	}
	if n.Type != ObjectType {
		return nil, fmt.Errorf("%w: %q holds %s, not an object", ErrTypeMismatch, key, n.Type)
	}
	return n.Object, nil
}

func (o *Object) GetArray(key string) (*Array, error) {
	n, err := o.Get(key)
	if err != nil {
		return nil, err
	}
	if n.Type != ArrayType {
		return nil, fmt.Errorf("%w: %q holds %s, not an array", ErrTypeMismatch, key, n.Type)
	}
	return n.Array, nil
}

func (o *Object) OptBool(key string, def bool) bool {
	n := o.vals[key]
	if n == nil {
		return def
	}
	v, err := coerceBool(n, key)
	if err != nil {
		return def
	}
	return v
}

func (o *Object) OptInt(key string, def int64) int64 {
	n := o.vals[key]
	if n == nil {
		return def
	}
	v, err := coerceInt(n, key)
	if err != nil {
		return def
	}
	return v
}

func (o *Object) OptFloat(key string, def float64) float64 {
	n := o.vals[key]
	if n == nil {
		return def
	}
	v, err := coerceFloat(n, key)
	if err != nil {
		return def
	}
	return v
}

// OptString renders any scalar under key to its literal text; containers
// and nulls yield def. Use the encoder to render containers.
func (o *Object) OptString(key string, def string) string {
	n := o.vals[key]
	if n == nil {
		return def
	}
	s, ok := scalarText(n)
	if !ok {
		return def
	}
	return s
}

func (o *Object) OptObject(key string) *Object {
	n := o.vals[key]
	if n == nil || n.Type != ObjectType {
		return nil
	}
	return n.Object
}

func (o *Object) OptArray(key string) *Array {
	n := o.vals[key]
	if n == nil || n.Type != ArrayType {
		return nil
	}
	return n.Array
}

// Put stores n under key. A nil n removes the key. Numbers are validated:
// a non-finite float never enters the object.
func (o *Object) Put(key string, n *Node) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if n == nil {
		o.Remove(key)
		return nil
	}
	if err := CheckValue(n); err != nil {
		return err
	}
	o.set(key, n)
	return nil
}

func (o *Object) PutBool(key string, v bool) error {
	return o.Put(key, FromBool(v))
}

func (o *Object) PutInt(key string, v int64) error {
	return o.Put(key, FromInt(v))
}

func (o *Object) PutFloat(key string, v float64) error {
	if err := CheckFinite(v); err != nil {
		return err
	}
	return o.Put(key, FromFloat(v))
}

func (o *Object) PutString(key, v string) error {
	return o.Put(key, FromString(v))
}

// PutOnce stores n under key, failing if key already holds a non-null
// value. A nil n is a no-op.
func (o *Object) PutOnce(key string, n *Node) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if n == nil {
		return nil
	}
	if cur, ok := o.vals[key]; ok && cur.Type != NullType {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	return o.Put(key, n)
}

// PutOpt is Put, except that an empty key or nil value is a no-op.
func (o *Object) PutOpt(key string, n *Node) error {
	if key == "" || n == nil {
		return nil
	}
	return o.Put(key, n)
}

// Accumulate gathers repeated values under one key. The first value is
// stored directly, unless it is itself an array, which is wrapped as the
// sole element of a new array to keep it distinguishable from accumulation.
// Later values extend an existing array, or convert a scalar into a
// two-element array of [existing, value].
func (o *Object) Accumulate(key string, n *Node) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if n == nil {
		n = Null()
	}
	if err := CheckValue(n); err != nil {
		return err
	}
	cur, ok := o.vals[key]
	switch {
	case !ok:
		if n.Type == ArrayType {
			o.set(key, FromArray(NewArray().Append(n)))
			return nil
		}
		o.set(key, n)
	case cur.Type == ArrayType:
		cur.Array.Append(n)
	default:
		o.set(key, FromArray(NewArray().Append(cur).Append(n)))
	}
	return nil
}

// AppendValue appends n to the array under key, creating a single-element
// array when the key is absent. A non-array value under key is an error.
func (o *Object) AppendValue(key string, n *Node) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if n == nil {
		n = Null()
	}
	if err := CheckValue(n); err != nil {
		return err
	}
	cur, ok := o.vals[key]
	switch {
	case !ok:
		o.set(key, FromArray(NewArray().Append(n)))
	case cur.Type == ArrayType:
		cur.Array.Append(n)
	default:
		return fmt.Errorf("%w: %q holds %s, cannot append", ErrTypeMismatch, key, cur.Type)
	}
	return nil
}

// Increment adds one to the number under key, preserving its int or float
// kind. An absent key becomes the integer 1.
func (o *Object) Increment(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	cur, ok := o.vals[key]
	if !ok {
		o.set(key, FromInt(1))
		return nil
	}
	if cur.Type != NumberType {
		return fmt.Errorf("%w: %q holds %s, cannot increment", ErrTypeMismatch, key, cur.Type)
	}
	if cur.Int64 != nil {
		o.set(key, FromInt(*cur.Int64+1))
		return nil
	}
	if cur.Float64 != nil {
		o.set(key, FromFloat(*cur.Float64+1))
		return nil
	}
	return fmt.Errorf("%w: %q holds a number without value", ErrInvalidNumber, key)
}

// Remove deletes key and returns its prior value, nil if absent.
func (o *Object) Remove(key string) *Node {
	n, ok := o.vals[key]
	if !ok {
		return nil
	}
	delete(o.vals, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return n
}

// Project maps an ordered name list to the corresponding values, absent
// names yielding nulls. An empty name list yields nil.
func (o *Object) Project(names []string) *Array {
	if len(names) == 0 {
		return nil
	}
	res := NewArray()
	for _, name := range names {
		res.Append(o.vals[name])
	}
	return res
}

// Similar reports whether other has the same key set with recursively
// similar values. Member order never matters; array element order does.
func (o *Object) Similar(other *Object) bool {
	if other == nil || len(o.keys) != len(other.keys) {
		return false
	}
	for key, n := range o.vals {
		on, ok := other.vals[key]
		if !ok || !Similar(n, on) {
			return false
		}
	}
	return true
}

func (o *Object) Clone() *Object {
	res := NewObject()
	for _, key := range o.keys {
		res.set(key, o.vals[key].Clone())
	}
	return res
}

func (o *Object) set(key string, n *Node) {
	if o.vals == nil {
		o.vals = map[string]*Node{}
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = n
}

func coerceBool(n *Node, key string) (bool, error) {
	switch n.Type {
	case BoolType:
		return n.Bool, nil
	case StringType:
		if strings.EqualFold(n.String, "true") {
			return true, nil
		}
		if strings.EqualFold(n.String, "false") {
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: %q is not a bool", ErrTypeMismatch, key)
}

func coerceInt(n *Node, key string) (int64, error) {
	switch n.Type {
	case NumberType:
		if n.Int64 != nil {
			return *n.Int64, nil
		}
		if n.Float64 != nil {
			return int64(*n.Float64), nil
		}
	case StringType:
		if i, err := strconv.ParseInt(n.String, 10, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(n.String, 64); err == nil {
			return int64(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not an int", ErrTypeMismatch, key)
}

func coerceFloat(n *Node, key string) (float64, error) {
	switch n.Type {
	case NumberType:
		if n.Float64 != nil {
			return *n.Float64, nil
		}
		if n.Int64 != nil {
			return float64(*n.Int64), nil
		}
	case StringType:
		if f, err := strconv.ParseFloat(n.String, 64); err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a float", ErrTypeMismatch, key)
}

// scalarText renders a leaf node to literal text. Containers and nulls
// report false.
func scalarText(n *Node) (string, bool) {
	switch n.Type {
	case StringType:
		return n.String, true
	case BoolType:
		return strconv.FormatBool(n.Bool), true
	case NumberType:
		s, err := NumberText(n)
		if err != nil {
			return "", false
		}
		return s, true
	case RawType:
		return n.Raw, true
	}
	return "", false
}
