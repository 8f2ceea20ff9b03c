package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jotfmt/jot/ir"
	"github.com/jotfmt/jot/token"
)

type EncState struct {
	indent int
	depth  int

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

// Encode writes node as strict JSON text. With Indent(0), the default,
// output is compact; with a positive factor, containers with more than one
// member break across lines indented by that many spaces per level. A
// single-member object or array stays inline regardless.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if node == nil {
		node = ir.Null()
	}
	es.colorType = node.Type
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node.Object, w, es)
	case ir.ArrayType:
		return encodeArray(node.Array, w, es)
	case ir.StringType:
		return writeValue(w, es, ir.StringType, token.Quote(node.String))
	case ir.NumberType:
		v, err := ir.NumberText(node)
		if err != nil {
			return err
		}
		return writeValue(w, es, ir.NumberType, v)
	case ir.BoolType:
		return writeValue(w, es, ir.BoolType, strconv.FormatBool(node.Bool))
	case ir.NullType:
		return writeValue(w, es, ir.NullType, "null")
	case ir.RawType:
		if node.Raw == "" {
			return fmt.Errorf("%w: raw value without text", ErrEncoding)
		}
		return writeValue(w, es, ir.RawType, node.Raw)
	default:
		return fmt.Errorf("%w: unknown type %d", ErrEncoding, int(node.Type))
	}
}

func encodeObject(o *ir.Object, w io.Writer, es *EncState) error {
	if o == nil {
		return fmt.Errorf("%w: object node without object", ErrEncoding)
	}
	if err := writeSep(w, es, "{"); err != nil {
		return err
	}
	keys := o.Keys()
	switch len(keys) {
	case 0:
	case 1:
		if err := writeMember(o, keys[0], w, es); err != nil {
			return err
		}
	default:
		newDepth := es.depth + es.indent
		for i, key := range keys {
			if i > 0 {
				if err := writeSep(w, es, ","); err != nil {
					return err
				}
			}
			if err := writeNL(w, es, newDepth); err != nil {
				return err
			}
			es.depth = newDepth
			err := writeMember(o, key, w, es)
			es.depth = newDepth - es.indent
			if err != nil {
				return err
			}
		}
		if err := writeNL(w, es, es.depth); err != nil {
			return err
		}
	}
	es.colorType = ir.ObjectType
	return writeSep(w, es, "}")
}

func writeMember(o *ir.Object, key string, w io.Writer, es *EncState) error {
	if err := writeField(w, es, key); err != nil {
		return err
	}
	if es.indent > 0 {
		if err := writeString(w, " "); err != nil {
			return err
		}
	}
	return encode(o.Opt(key), w, es)
}

func encodeArray(a *ir.Array, w io.Writer, es *EncState) error {
	if a == nil {
		return fmt.Errorf("%w: array node without array", ErrEncoding)
	}
	if err := writeSep(w, es, "["); err != nil {
		return err
	}
	vals := a.Values()
	switch len(vals) {
	case 0:
	case 1:
		if err := encode(vals[0], w, es); err != nil {
			return err
		}
	default:
		newDepth := es.depth + es.indent
		for i, v := range vals {
			if i > 0 {
				if err := writeSep(w, es, ","); err != nil {
					return err
				}
			}
			if err := writeNL(w, es, newDepth); err != nil {
				return err
			}
			es.depth = newDepth
			err := encode(v, w, es)
			es.depth = newDepth - es.indent
			if err != nil {
				return err
			}
		}
		if err := writeNL(w, es, es.depth); err != nil {
			return err
		}
	}
	es.colorType = ir.ArrayType
	return writeSep(w, es, "]")
}

// Write helpers

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// writeNL breaks the line and indents to depth spaces, only when
// pretty-printing.
func writeNL(w io.Writer, es *EncState, depth int) error {
	if es.indent <= 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", depth))
}

func writeField(w io.Writer, es *EncState, key string) error {
	f := token.Quote(key)
	sep := ":"
	if es.Color != nil {
		f = es.Color(ir.ObjectType, FieldColor, f)
		sep = es.Color(ir.ObjectType, SepColor, sep)
	}
	return writeString(w, f+sep)
}

func writeSep(w io.Writer, es *EncState, sep string) error {
	if es.Color != nil {
		sep = es.Color(es.colorType, SepColor, sep)
	}
	return writeString(w, sep)
}

func writeValue(w io.Writer, es *EncState, t ir.Type, v string) error {
	if es.Color != nil {
		v = es.Color(t, ValueColor, v)
	}
	return writeString(w, v)
}
