package token

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Scanner walks raw document bytes one character at a time, with a single
// step of pushback. It reports ends of input as the zero byte, which the
// grammar never contains.
type Scanner struct {
	d   []byte
	i   int
	doc *PosDoc
}

func NewScanner(d []byte) *Scanner {
	return &Scanner{
		d:   d,
		doc: &PosDoc{d: d},
	}
}

func (s *Scanner) More() bool {
	return s.i < len(s.d)
}

// Next consumes and returns the next character, 0 at end of input.
func (s *Scanner) Next() byte {
	if s.i >= len(s.d) {
		return 0
	}
	c := s.d[s.i]
	if c == '\n' {
		s.doc.nl(s.i)
	}
	s.i++
	return c
}

// Back un-consumes one character. Backing up past the start is pinned.
func (s *Scanner) Back() {
	if s.i > 0 {
		s.i--
	}
}

// NextClean consumes and returns the next significant character, skipping
// whitespace. Returns 0 at end of input.
func (s *Scanner) NextClean() byte {
	for {
		c := s.Next()
		if c == 0 || c > ' ' {
			return c
		}
	}
}

// NextString consumes a string body up to the closing quote character,
// decoding backslash escapes. The opening quote must already be consumed.
func (s *Scanner) NextString(quote byte) (string, error) {
	b := &strings.Builder{}
	for {
		c := s.Next()
		switch c {
		case 0, '\n', '\r':
			return "", &SyntaxErr{Msg: ErrUnterminated.Error() + " string", Pos: s.Pos()}
		case '\\':
			if err := s.nextEscape(b); err != nil {
				return "", err
			}
		case quote:
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}
}

func (s *Scanner) nextEscape(b *strings.Builder) error {
	c := s.Next()
	switch c {
	case 'b':
		b.WriteByte('\b')
	case 't':
		b.WriteByte('\t')
	case 'n':
		b.WriteByte('\n')
	case 'f':
		b.WriteByte('\f')
	case 'r':
		b.WriteByte('\r')
	case 'u':
		r, err := s.nextHex4()
		if err != nil {
			return err
		}
		if utf16.IsSurrogate(r) {
			r = s.nextSurrogatePair(r)
		}
		b.WriteRune(r)
	case '"', '\'', '\\', '/':
		b.WriteByte(c)
	default:
		return &SyntaxErr{Msg: ErrBadEscape.Error(), Pos: s.Pos()}
	}
	return nil
}

func (s *Scanner) nextHex4() (rune, error) {
	if s.i+4 > len(s.d) {
		return 0, &SyntaxErr{Msg: ErrUnterminated.Error() + " \\u escape", Pos: s.Pos()}
	}
	u, err := strconv.ParseUint(string(s.d[s.i:s.i+4]), 16, 32)
	if err != nil {
		return 0, &SyntaxErr{Msg: ErrBadUnicode.Error(), Pos: s.Pos()}
	}
	s.i += 4
	return rune(u), nil
}

// nextSurrogatePair joins hi with a following \u low surrogate when one is
// present; otherwise hi decodes to the replacement character.
func (s *Scanner) nextSurrogatePair(hi rune) rune {
	if s.i+6 <= len(s.d) && s.d[s.i] == '\\' && s.d[s.i+1] == 'u' {
		u, err := strconv.ParseUint(string(s.d[s.i+2:s.i+6]), 16, 32)
		if err == nil {
			if r := utf16.DecodeRune(hi, rune(u)); r != utf8.RuneError {
				s.i += 6
				return r
			}
		}
	}
	return utf8.RuneError
}

func (s *Scanner) Pos() *Pos {
	return s.doc.Pos(s.i)
}

// SyntaxError builds a syntax failure at the current position.
func (s *Scanner) SyntaxError(msg string) error {
	return &SyntaxErr{
		Msg: msg,
		Pos: s.Pos(),
	}
}
