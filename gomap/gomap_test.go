package gomap

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jotfmt/jot/ir"
)

func TestWrapScalars(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   any
		want *ir.Node
	}{
		{"nil", nil, ir.Null()},
		{"bool", true, ir.FromBool(true)},
		{"string", "x", ir.FromString("x")},
		{"int", 42, ir.FromInt(42)},
		{"int8", int8(-3), ir.FromInt(-3)},
		{"uint16", uint16(9), ir.FromInt(9)},
		{"int64", int64(1 << 40), ir.FromInt(1 << 40)},
		{"float64", 1.5, ir.FromFloat(1.5)},
		{"float32", float32(0.5), ir.FromFloat(0.5)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.in)
			if !ir.Similar(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWrapNonFinite(t *testing.T) {
	if Wrap(math.NaN()) != nil {
		t.Error("NaN should be unrepresentable")
	}
	if Wrap(math.Inf(1)) != nil {
		t.Error("Inf should be unrepresentable")
	}
}

func TestWrapIdempotent(t *testing.T) {
	n := ir.FromInt(1)
	if Wrap(n) != n {
		t.Error("node should pass through")
	}
	o := ir.NewObject()
	if got := Wrap(o); got.Type != ir.ObjectType || got.Object != o {
		t.Error("object should pass through")
	}
}

func TestWrapSlice(t *testing.T) {
	got := Wrap([]int{1, 2, 3})
	if got == nil || got.Type != ir.ArrayType || got.Array.Len() != 3 {
		t.Fatalf("slice: %+v", got)
	}
	// one bad element poisons the sequence
	if Wrap([]float64{1, math.NaN()}) != nil {
		t.Error("sequence with unrepresentable element should be nil")
	}
	// nested
	got = Wrap([][]string{{"a"}, {"b", "c"}})
	if got == nil || got.Array.Opt(1).Array.Len() != 2 {
		t.Errorf("nested slice: %+v", got)
	}
}

func TestWrapMap(t *testing.T) {
	got := Wrap(map[string]any{
		"a":   1,
		"b":   "x",
		"nil": nil,
	})
	if got == nil || got.Type != ir.ObjectType {
		t.Fatalf("map: %+v", got)
	}
	o := got.Object
	if v := o.OptInt("a", -1); v != 1 {
		t.Errorf("a: %v", v)
	}
	if o.Has("nil") {
		t.Error("nil-valued entry should be skipped")
	}
	// non-string keys render to text
	got = Wrap(map[int]string{7: "seven"})
	if v := got.Object.OptString("7", ""); v != "seven" {
		t.Errorf("int key: %q", v)
	}
}

func TestWrapPointer(t *testing.T) {
	i := 5
	if got := Wrap(&i); !ir.Similar(got, ir.FromInt(5)) {
		t.Errorf("pointer: %+v", got)
	}
	var p *int
	if got := Wrap(p); got == nil || got.Type != ir.NullType {
		t.Errorf("nil pointer: %+v", got)
	}
}

func TestWrapTextMarshaler(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	got := Wrap(ts)
	if got == nil || got.Type != ir.StringType {
		t.Fatalf("time: %+v", got)
	}
	if got.String != "2024-03-01T12:00:00Z" {
		t.Errorf("time text: %q", got.String)
	}
}

func TestWrapUnrepresentable(t *testing.T) {
	if Wrap(make(chan int)) != nil {
		t.Error("channel should be nil")
	}
	if Wrap(func() {}) != nil {
		t.Error("func should be nil")
	}
}

type server struct {
	Name    string
	URL     string
	MaxConn int
	Secret  string `jot:"-"`
	Renamed string `jot:"alias"`
	private string
}

func TestFromStruct(t *testing.T) {
	o, err := FromStruct(server{
		Name:    "s1",
		URL:     "http://x",
		MaxConn: 10,
		Secret:  "shh",
		Renamed: "r",
		private: "p",
	})
	if err != nil {
		t.Fatal(err)
	}
	if v := o.OptString("name", ""); v != "s1" {
		t.Errorf("name: %q", v)
	}
	// acronym fields keep their case
	if v := o.OptString("URL", ""); v != "http://x" {
		t.Errorf("URL: %q", v)
	}
	if v := o.OptInt("maxConn", -1); v != 10 {
		t.Errorf("maxConn: %v", v)
	}
	if o.Has("Secret") || o.Has("secret") {
		t.Error("jot:\"-\" field should be skipped")
	}
	if v := o.OptString("alias", ""); v != "r" {
		t.Errorf("alias: %q", v)
	}
	if o.Has("private") {
		t.Error("unexported field should be skipped")
	}
}

func TestFromStructPointer(t *testing.T) {
	o, err := FromStruct(&server{Name: "p"})
	if err != nil {
		t.Fatal(err)
	}
	if v := o.OptString("name", ""); v != "p" {
		t.Errorf("name: %q", v)
	}
	var cerr *ConvertError
	if _, err := FromStruct((*server)(nil)); !errors.As(err, &cerr) {
		t.Errorf("nil pointer: %v", err)
	}
	if _, err := FromStruct(42); !errors.As(err, &cerr) {
		t.Errorf("non-struct: %v", err)
	}
}

func TestFromFields(t *testing.T) {
	o, err := FromFields(server{Name: "s", MaxConn: 3}, "Name", "MaxConn", "NoSuch")
	if err != nil {
		t.Fatal(err)
	}
	if v := o.OptString("Name", ""); v != "s" {
		t.Errorf("Name: %q", v)
	}
	if v := o.OptInt("MaxConn", -1); v != 3 {
		t.Errorf("MaxConn: %v", v)
	}
	if o.Has("NoSuch") {
		t.Error("unknown field name should be skipped")
	}
}

func TestFromMap(t *testing.T) {
	o := FromMap(map[string]any{
		"a":  []int{1, 2},
		"":   "dropped",
		"ch": make(chan int),
	})
	if o.Len() != 1 || !o.Has("a") {
		t.Errorf("members: %v", o.Keys())
	}
}

type dur time.Duration

func TestRegister(t *testing.T) {
	Register(func(d dur) (*ir.Node, error) {
		return ir.FromString(time.Duration(d).String()), nil
	})
	got := Wrap(dur(90 * time.Second))
	if got == nil || got.String != "1m30s" {
		t.Errorf("registered converter: %+v", got)
	}
}

type noderVal struct{ n int }

func (v noderVal) ToIR() (*ir.Node, error) {
	if v.n < 0 {
		return nil, errors.New("negative")
	}
	return ir.FromInt(int64(v.n)), nil
}

func TestNoder(t *testing.T) {
	if got := Wrap(noderVal{n: 7}); !ir.Similar(got, ir.FromInt(7)) {
		t.Errorf("noder: %+v", got)
	}
	if Wrap(noderVal{n: -1}) != nil {
		t.Error("failing noder should yield nil")
	}
}
