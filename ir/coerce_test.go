package ir

import (
	"errors"
	"math"
	"testing"
)

func TestInfer(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Type
	}{
		{"true", BoolType},
		{"FALSE", BoolType},
		{"null", NullType},
		{"NULL", NullType},
		{"0", NumberType},
		{"42", NumberType},
		{"-5", NumberType},
		{"1.5", NumberType},
		{"1e14", NumberType},
		{"", StringType},
		{"hello", StringType},
		{"007", StringType},
		{"1.2.3", StringType},
		{"12abc", StringType},
		{"truely", StringType},
	} {
		n := Infer(tt.in)
		if n.Type != tt.want {
			t.Errorf("Infer(%q): got %v, want %v", tt.in, n.Type, tt.want)
		}
	}
}

func TestInferKinds(t *testing.T) {
	if n := Infer("42"); n.Int64 == nil || *n.Int64 != 42 {
		t.Errorf("whole number should be integral: %+v", n)
	}
	if n := Infer("1.5"); n.Float64 == nil || *n.Float64 != 1.5 {
		t.Errorf("decimal should be floating: %+v", n)
	}
	if n := Infer("1e14"); n.Float64 == nil || *n.Float64 != 1e14 {
		t.Errorf("exponent should be floating: %+v", n)
	}
	// overflow beyond the exact range stays textual
	if n := Infer("99999999999999999999999999"); n.Type != StringType {
		t.Errorf("overflow: %v", n.Type)
	}
}

func TestFloatText(t *testing.T) {
	for _, tt := range []struct {
		in   float64
		want string
	}{
		{1.5, "1.5"},
		{1.50, "1.5"},
		{2.0, "2"},
		{100.0, "100"},
		{0.5, "0.5"},
		{-3.25, "-3.25"},
		{1e21, "1e+21"},
	} {
		got, err := FloatText(tt.in)
		if err != nil {
			t.Errorf("FloatText(%v): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FloatText(%v): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFloatTextNonFinite(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := FloatText(f); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("FloatText(%v): %v", f, err)
		}
	}
}

func TestNumberText(t *testing.T) {
	if got, err := NumberText(FromInt(-7)); err != nil || got != "-7" {
		t.Errorf("int: %q %v", got, err)
	}
	if got, err := NumberText(FromFloat(2.5)); err != nil || got != "2.5" {
		t.Errorf("float: %q %v", got, err)
	}
	if _, err := NumberText(FromString("x")); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("non-number: %v", err)
	}
}
