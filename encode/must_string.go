package encode

import (
	"bytes"

	"github.com/jotfmt/jot/ir"
)

// String renders node compactly, swallowing any failure into the empty
// string. Safe for diagnostics and logging.
func String(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		return ""
	}
	return buf.String()
}

// MustString is String for values known to be encodable; it panics on
// failure.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
