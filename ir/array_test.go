package ir

import (
	"errors"
	"testing"
)

func TestArrayGetOpt(t *testing.T) {
	a := NewArray().Append(FromInt(1)).Append(FromString("x"))
	if n, err := a.Get(0); err != nil || *n.Int64 != 1 {
		t.Errorf("Get(0): %v %v", n, err)
	}
	if _, err := a.Get(2); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(2): %v", err)
	}
	if _, err := a.Get(-1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(-1): %v", err)
	}
	if a.Opt(5) != nil {
		t.Error("Opt out of range should be nil")
	}
}

func TestArrayAppendNil(t *testing.T) {
	a := NewArray().Append(nil)
	if n := a.Opt(0); n == nil || n.Type != NullType {
		t.Errorf("nil append: %v", n)
	}
}

func TestArraySetPads(t *testing.T) {
	a := NewArray()
	if err := a.Set(2, FromInt(9)); err != nil {
		t.Fatal(err)
	}
	if a.Len() != 3 {
		t.Fatalf("length after padded set: %d", a.Len())
	}
	for i := 0; i < 2; i++ {
		if n := a.Opt(i); n.Type != NullType {
			t.Errorf("pad %d: %v", i, n.Type)
		}
	}
	if n := a.Opt(2); *n.Int64 != 9 {
		t.Errorf("set value: %v", n)
	}
	if err := a.Set(-1, FromInt(1)); !errors.Is(err, ErrNotFound) {
		t.Errorf("negative index: %v", err)
	}
}

func TestFromSlice(t *testing.T) {
	a := FromSlice([]*Node{FromInt(1), nil, FromBool(true)})
	if a.Len() != 3 {
		t.Fatalf("length: %d", a.Len())
	}
	if n := a.Opt(1); n.Type != NullType {
		t.Errorf("nil entry: %v", n.Type)
	}
}

func TestArrayClone(t *testing.T) {
	a := NewArray().Append(FromObject(NewObject()))
	c := a.Clone()
	c.Opt(0).Object.PutInt("x", 1)
	if a.Opt(0).Object.Has("x") {
		t.Error("clone shares member objects")
	}
}
