package token

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax       = errors.New("syntax error")
	ErrUnterminated = errors.New("unterminated")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode")
)

// SyntaxErr is a syntax failure at a position. It unwraps to ErrSyntax so
// callers can match with errors.Is.
type SyntaxErr struct {
	Msg string
	Pos *Pos
}

func (e *SyntaxErr) Unwrap() error {
	return ErrSyntax
}

func (e *SyntaxErr) Error() string {
	if e.Pos == nil {
		return fmt.Sprintf("%s: %s", ErrSyntax, e.Msg)
	}
	return fmt.Sprintf("%s: %s %s", ErrSyntax, e.Msg, e.Pos)
}
