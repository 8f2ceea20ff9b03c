package ir

// Similar reports whether two nodes are structurally equivalent: same
// type, equal scalar values, recursively similar members. It never fails;
// anything it cannot compare is dissimilar.
func Similar(a, b *Node) bool {
	if a == nil || b == nil {
		return a.IsNull() && b.IsNull()
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		return similarNumbers(a, b)
	case StringType:
		return a.String == b.String
	case RawType:
		return a.Raw == b.Raw
	case ArrayType:
		if a.Array == nil || b.Array == nil {
			return a.Array == b.Array
		}
		return a.Array.Similar(b.Array)
	case ObjectType:
		if a.Object == nil || b.Object == nil {
			return a.Object == b.Object
		}
		return a.Object.Similar(b.Object)
	}
	return false
}

// similarNumbers requires matching numeric kind: an int is never similar
// to a float, even at equal magnitude.
func similarNumbers(a, b *Node) bool {
	if a.Int64 != nil && b.Int64 != nil {
		return *a.Int64 == *b.Int64
	}
	if a.Float64 != nil && b.Float64 != nil {
		return *a.Float64 == *b.Float64
	}
	return false
}
