package parse

import (
	"errors"
	"testing"

	"github.com/jotfmt/jot/ir"
	"github.com/jotfmt/jot/token"
)

func TestParseOK(t *testing.T) {
	for _, in := range []string{
		`{}`,
		`{"a":1}`,
		`{"a":1,"b":2}`,
		`{"a":1,"b":2,}`,
		`{"a":1;"b":2;}`,
		`{a:1}`,
		`{a: hello world}`,
		`{"a"=1}`,
		`{"a"=>1}`,
		`{'a':'b c'}`,
		`{42: x}`,
		`{true: 1}`,
		`{null: 1}`,
		`{"a":{"b":{"c":[]}}}`,
		`{"a":[1,2,3]}`,
		`{"a":[1,,2]}`,
		`{"a":[]}`,
		`{"a":null,"b":true,"c":false}`,
		`{"a":-1.5e3}`,
		"{\n  \"a\" : 1 ,\n  \"b\" : 2\n}",
	} {
		if _, err := Parse([]byte(in)); err != nil {
			t.Errorf("Parse(%q): %v", in, err)
		}
	}
}

func TestParseErr(t *testing.T) {
	for _, tt := range []struct {
		in string
		e  error
	}{
		{``, token.ErrSyntax},
		{`x`, token.ErrSyntax},
		{`[1,2]`, token.ErrSyntax},
		{`{`, token.ErrSyntax},
		{`{"a":1`, token.ErrSyntax},
		{`{"a":1 "b":2}`, token.ErrSyntax},
		{`{"a" 1}`, token.ErrSyntax},
		{`{"a":}`, token.ErrSyntax},
		{`{"a":"unterminated}`, token.ErrSyntax},
		{`{"a":[1}`, token.ErrSyntax},
		{`{[1]:2}`, token.ErrSyntax},
		{`{"a":1,"a":2}`, ir.ErrDuplicateKey},
	} {
		_, err := Parse([]byte(tt.in))
		if err == nil {
			t.Errorf("Parse(%q): no error", tt.in)
			continue
		}
		if !errors.Is(err, tt.e) {
			t.Errorf("Parse(%q): %v does not wrap %v", tt.in, err, tt.e)
		}
	}
}

func TestParseTypes(t *testing.T) {
	o, err := Parse([]byte(`{"s":"x","i":3,"f":1.5,"b":true,"n":null,"bare":word}`))
	if err != nil {
		t.Fatal(err)
	}
	if v, err := o.GetString("s"); err != nil || v != "x" {
		t.Errorf("s: %q %v", v, err)
	}
	if n := o.Opt("i"); n.Int64 == nil || *n.Int64 != 3 {
		t.Errorf("i: %+v", n)
	}
	if n := o.Opt("f"); n.Float64 == nil || *n.Float64 != 1.5 {
		t.Errorf("f: %+v", n)
	}
	if v, err := o.GetBool("b"); err != nil || !v {
		t.Errorf("b: %v %v", v, err)
	}
	if !o.Has("n") || !o.IsNull("n") {
		t.Errorf("n: Has=%v IsNull=%v", o.Has("n"), o.IsNull("n"))
	}
	if v, err := o.GetString("bare"); err != nil || v != "word" {
		t.Errorf("bare: %q %v", v, err)
	}
}

func TestParseBareNumbers(t *testing.T) {
	o, err := Parse([]byte(`{a:007, b:42, c:1e14}`))
	if err != nil {
		t.Fatal(err)
	}
	// leading zeros do not round-trip, so the text stays a string
	if n := o.Opt("a"); n.Type != ir.StringType || n.String != "007" {
		t.Errorf("a: %+v", n)
	}
	if n := o.Opt("b"); n.Int64 == nil || *n.Int64 != 42 {
		t.Errorf("b: %+v", n)
	}
	if n := o.Opt("c"); n.Float64 == nil || *n.Float64 != 1e14 {
		t.Errorf("c: %+v", n)
	}
}

func TestParseElidedElements(t *testing.T) {
	o, err := Parse([]byte(`{"a":[1,,2]}`))
	if err != nil {
		t.Fatal(err)
	}
	arr, err := o.GetArray("a")
	if err != nil || arr.Len() != 3 {
		t.Fatalf("array: %v %v", arr, err)
	}
	if n := arr.Opt(1); n.Type != ir.NullType {
		t.Errorf("elided element: %v", n.Type)
	}
}

func TestParseEscapes(t *testing.T) {
	o, err := Parse([]byte(`{"k":"\u0041\n\"\\","p":"\ud83d\ude00"}`))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := o.GetString("k"); v != "A\n\"\\" {
		t.Errorf("k: %q", v)
	}
	if v, _ := o.GetString("p"); v != "😀" {
		t.Errorf("p: %q", v)
	}
}

func TestParseKeyOrder(t *testing.T) {
	o, err := Parse([]byte(`{"z":1,"a":2,"m":3}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	got := o.Keys()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("document order lost: %v", got)
		}
	}
}

func TestParseErrPosition(t *testing.T) {
	_, err := Parse([]byte("{\"a\":1\n\"b\":2}"))
	if err == nil {
		t.Fatal("no error")
	}
	var serr *token.SyntaxErr
	if !errors.As(err, &serr) {
		t.Fatalf("not a syntax error: %v", err)
	}
	if line, _ := serr.Pos.LineCol(); line != 1 {
		t.Errorf("error line: %d (%v)", line, serr)
	}
}
