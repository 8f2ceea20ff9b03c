package token

import (
	"strconv"
	"unicode/utf8"
)

// Quote renders v as a strict JSON string literal. Backslash and the
// double quote get a leading backslash, the short escapes cover the usual
// control characters, and a forward slash is escaped only directly after
// '<' to keep "</" out of embedded HTML. Characters below U+0020, in
// U+0080-U+009F, or in U+2000-U+2100 become \u escapes with four lowercase
// hex digits. Everything else passes through.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	var prev rune
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '/':
			if prev == '<' {
				d = append(d, '\\')
			}
			d = append(d, '/')
		case '\b':
			d = append(d, '\\', 'b')
		case '\t':
			d = append(d, '\\', 't')
		case '\n':
			d = append(d, '\\', 'n')
		case '\f':
			d = append(d, '\\', 'f')
		case '\r':
			d = append(d, '\\', 'r')
		default:
			if r < ' ' || (r >= 0x80 && r < 0xa0) || (r >= 0x2000 && r < 0x2100) {
				d = appendU(d, r)
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
		prev = r
	}
	d = append(d, '"')
	return string(d)
}

func appendU(d []byte, r rune) []byte {
	d = append(d, '\\', 'u')
	hex := strconv.FormatInt(int64(r), 16)
	for i := len(hex); i < 4; i++ {
		d = append(d, '0')
	}
	return append(d, hex...)
}
