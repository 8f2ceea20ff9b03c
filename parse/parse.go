// Package parse provides lenient parsing of jot object text.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jotfmt/jot/ir"
	"github.com/jotfmt/jot/token"
)

// Parse reads object text into an ir.Object. The grammar is a lenient
// superset of JSON: pairs may be separated by ',' or ';', a trailing
// separator before '}' is tolerated, keys and bare values may be unquoted
// (resolved through ir.Infer), strings may use single quotes, and '=' or
// '=>' is accepted for ':'. A repeated key is a hard failure, not an
// overwrite.
func Parse(d []byte) (*ir.Object, error) {
	return parseObject(token.NewScanner(d))
}

func parseObject(s *token.Scanner) (*ir.Object, error) {
	if c := s.NextClean(); c != '{' {
		return nil, s.SyntaxError("text must begin with '{'")
	}
	res := ir.NewObject()
	for {
		switch c := s.NextClean(); c {
		case 0:
			return nil, s.SyntaxError("text must end with '}'")
		case '}':
			return res, nil
		default:
			s.Back()
		}
		keyNode, err := nextValue(s)
		if err != nil {
			return nil, err
		}
		key, ok := keyText(keyNode)
		if !ok {
			return nil, s.SyntaxError("key must be a scalar")
		}

		switch c := s.NextClean(); c {
		case ':':
		case '=':
			// '=' and '=>' leniency
			if s.Next() != '>' {
				s.Back()
			}
		default:
			return nil, s.SyntaxError(fmt.Sprintf("expected ':' after key %q", key))
		}

		val, err := nextValue(s)
		if err != nil {
			return nil, err
		}
		if err := res.PutOnce(key, val); err != nil {
			return nil, fmt.Errorf("%w at %s", err, s.Pos())
		}

		switch c := s.NextClean(); c {
		case ',', ';':
			switch s.NextClean() {
			case '}':
				return res, nil
			case 0:
				return nil, s.SyntaxError("text must end with '}'")
			}
			s.Back()
		case '}':
			return res, nil
		case 0:
			return nil, s.SyntaxError("text must end with '}'")
		default:
			return nil, s.SyntaxError("expected ',' or ';' after value")
		}
	}
}

func parseArray(s *token.Scanner) (*ir.Array, error) {
	if c := s.NextClean(); c != '[' {
		return nil, s.SyntaxError("array must begin with '['")
	}
	res := ir.NewArray()
	if c := s.NextClean(); c == ']' {
		return res, nil
	} else if c == 0 {
		return nil, s.SyntaxError("array must end with ']'")
	}
	s.Back()
	for {
		if c := s.NextClean(); c == ',' {
			// elided element
			s.Back()
			res.Append(ir.Null())
		} else {
			s.Back()
			v, err := nextValue(s)
			if err != nil {
				return nil, err
			}
			res.Append(v)
		}
		switch c := s.NextClean(); c {
		case ',', ';':
			switch s.NextClean() {
			case ']':
				return res, nil
			case 0:
				return nil, s.SyntaxError("array must end with ']'")
			}
			s.Back()
		case ']':
			return res, nil
		case 0:
			return nil, s.SyntaxError("array must end with ']'")
		default:
			return nil, s.SyntaxError("expected ',' or ';' after array element")
		}
	}
}

// nextValue reads the next self-contained value: a quoted string, a nested
// object or array, or a bare literal resolved through ir.Infer.
func nextValue(s *token.Scanner) (*ir.Node, error) {
	c := s.NextClean()
	switch c {
	case '"', '\'':
		v, err := s.NextString(c)
		if err != nil {
			return nil, err
		}
		return ir.FromString(v), nil
	case '{':
		s.Back()
		o, err := parseObject(s)
		if err != nil {
			return nil, err
		}
		return ir.FromObject(o), nil
	case '[':
		s.Back()
		a, err := parseArray(s)
		if err != nil {
			return nil, err
		}
		return ir.FromArray(a), nil
	case 0:
		return nil, s.SyntaxError("missing value")
	}

	b := &strings.Builder{}
	for c >= ' ' && !strings.ContainsRune(",:]}/\\\"[{;=#", rune(c)) {
		b.WriteByte(c)
		c = s.Next()
	}
	if c != 0 {
		s.Back()
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return nil, s.SyntaxError("missing value")
	}
	return ir.Infer(text), nil
}

// keyText renders a parsed key to its member-name text. Containers cannot
// be keys.
func keyText(n *ir.Node) (string, bool) {
	switch n.Type {
	case ir.StringType:
		return n.String, true
	case ir.BoolType:
		return strconv.FormatBool(n.Bool), true
	case ir.NullType:
		return "null", true
	case ir.NumberType:
		s, err := ir.NumberText(n)
		if err != nil {
			return "", false
		}
		return s, true
	}
	return "", false
}
