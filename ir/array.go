package ir

import "fmt"

// Array is the ordered counterpart of Object: a sequence of nodes with
// positional access. Element order is significant for Similar.
type Array struct {
	vals []*Node
}

func NewArray() *Array {
	return &Array{}
}

// FromSlice builds an array over nodes; nil entries become nulls.
func FromSlice(nodes []*Node) *Array {
	a := &Array{vals: make([]*Node, len(nodes))}
	for i, n := range nodes {
		if n == nil {
			n = Null()
		}
		a.vals[i] = n
	}
	return a
}

func (a *Array) Len() int {
	return len(a.vals)
}

func (a *Array) Get(i int) (*Node, error) {
	if i < 0 || i >= len(a.vals) {
		return nil, fmt.Errorf("%w: index %d out of [0,%d)", ErrNotFound, i, len(a.vals))
	}
	return a.vals[i], nil
}

// Opt returns the element at i, or nil if out of range.
func (a *Array) Opt(i int) *Node {
	if i < 0 || i >= len(a.vals) {
		return nil
	}
	return a.vals[i]
}

func (a *Array) Append(n *Node) *Array {
	if n == nil {
		n = Null()
	}
	a.vals = append(a.vals, n)
	return a
}

// Set places n at index i, padding any gap with nulls.
func (a *Array) Set(i int, n *Node) error {
	if i < 0 {
		return fmt.Errorf("%w: negative index %d", ErrNotFound, i)
	}
	if err := CheckValue(n); err != nil {
		return err
	}
	if n == nil {
		n = Null()
	}
	for len(a.vals) <= i {
		a.vals = append(a.vals, Null())
	}
	a.vals[i] = n
	return nil
}

// Values returns the backing slice; callers must not grow it.
func (a *Array) Values() []*Node {
	return a.vals
}

func (a *Array) Clone() *Array {
	res := &Array{vals: make([]*Node, len(a.vals))}
	for i, n := range a.vals {
		res.vals[i] = n.Clone()
	}
	return res
}

// Similar reports whether other has the same length and pairwise similar
// elements, in order.
func (a *Array) Similar(other *Array) bool {
	if other == nil || len(a.vals) != len(other.vals) {
		return false
	}
	for i, n := range a.vals {
		if !Similar(n, other.vals[i]) {
			return false
		}
	}
	return true
}
