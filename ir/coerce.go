package ir

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Infer converts bare value text to the node it most plausibly denotes.
// "true", "false" and "null" (any case) become bool and null nodes. Text
// with a leading digit or '-' is tried as a number; integer text must
// round-trip to its canonical rendering, so "007" stays a string. Anything
// that fails to convert, including the empty string, remains string text.
func Infer(text string) *Node {
	if text == "" {
		return FromString(text)
	}
	switch strings.ToLower(text) {
	case "true":
		return FromBool(true)
	case "false":
		return FromBool(false)
	case "null":
		return Null()
	}
	c := text[0]
	if (c >= '0' && c <= '9') || c == '-' {
		if strings.ContainsAny(text, ".eE") {
			f, err := strconv.ParseFloat(text, 64)
			if err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
				return FromFloat(f)
			}
		} else {
			i, err := strconv.ParseInt(text, 10, 64)
			if err == nil && strconv.FormatInt(i, 10) == text {
				return FromInt(i)
			}
		}
	}
	return FromString(text)
}

// FloatText renders f as minimal decimal text: no trailing zero digits, no
// bare trailing decimal point. Non-finite values are unrepresentable.
func FloatText(f float64) (string, error) {
	if err := CheckFinite(f); err != nil {
		return "", err
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.Contains(s, ".") && !strings.ContainsAny(s, "eE") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s, nil
}

// NumberText renders a number node canonically.
func NumberText(n *Node) (string, error) {
	if n == nil || n.Type != NumberType {
		return "", fmt.Errorf("%w: %s is not a number", ErrTypeMismatch, n.Type)
	}
	if n.Int64 != nil {
		return strconv.FormatInt(*n.Int64, 10), nil
	}
	if n.Float64 != nil {
		return FloatText(*n.Float64)
	}
	return "", fmt.Errorf("%w: number node without value", ErrInvalidNumber)
}

func CheckFinite(f float64) error {
	if math.IsNaN(f) {
		return fmt.Errorf("%w: NaN", ErrInvalidNumber)
	}
	if math.IsInf(f, 0) {
		return fmt.Errorf("%w: infinite", ErrInvalidNumber)
	}
	return nil
}

// CheckValue validates a node before it enters an object or array. Only
// floating point numbers can be invalid; everything else passes.
func CheckValue(n *Node) error {
	if n == nil || n.Type != NumberType || n.Float64 == nil {
		return nil
	}
	return CheckFinite(*n.Float64)
}
