package ir

// Node is a single value in the model, a tagged union over Type. Exactly
// the fields for the node's Type are meaningful; the rest hold zero values.
//
// Numbers are carried in Int64 or Float64, never both. Raw nodes carry
// pre-rendered text in Raw which the encoder emits verbatim.
type Node struct {
	Type Type

	Bool    bool
	String  string
	Int64   *int64
	Float64 *float64
	Raw     string

	Object *Object
	Array  *Array
}

// Null returns a null node. Null is a value: an object key holding a null
// node exists, unlike a removed key. Nulls compare equal by tag, so every
// value returned here is interchangeable with every other.
func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

// FromRaw wraps pre-rendered value text. The encoder writes it without
// quoting or validation, so the caller owns its well-formedness.
func FromRaw(text string) *Node {
	return &Node{
		Type: RawType,
		Raw:  text,
	}
}

func FromObject(o *Object) *Node {
	return &Node{
		Type:   ObjectType,
		Object: o,
	}
}

func FromArray(a *Array) *Node {
	return &Node{
		Type:  ArrayType,
		Array: a,
	}
}

func (n *Node) IsNull() bool {
	return n == nil || n.Type == NullType
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{
		Type:   n.Type,
		Bool:   n.Bool,
		String: n.String,
		Raw:    n.Raw,
	}
	if n.Int64 != nil {
		i := *n.Int64
		res.Int64 = &i
	}
	if n.Float64 != nil {
		f := *n.Float64
		res.Float64 = &f
	}
	if n.Object != nil {
		res.Object = n.Object.Clone()
	}
	if n.Array != nil {
		res.Array = n.Array.Clone()
	}
	return res
}
