package token

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// escCode maps a raw character to its escape code; escape codes are
// also exactly the characters allowed after a backslash on input.
var escCode = map[byte]byte{
	'"':  '"',
	'\\': '\\',
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	'/':  '/',
}

func isEscCode(c byte) bool {
	switch c {
	case '"', '\\', 'b', 'f', 'n', 'r', 't', '/':
		return true
	}
	return false
}

// Quote renders v as a quoted jot string. Characters in the escape
// table become two-character escapes. A backslash already followed by
// an escape code is copied through as a pair, so pre-escaped content
// is not escaped twice.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == '\\' && i+1 < len(v) && isEscCode(v[i+1]) {
			d = append(d, '\\', v[i+1])
			i++
			continue
		}
		if code, ok := escCode[c]; ok {
			d = append(d, '\\', code)
			continue
		}
		d = append(d, c)
	}
	d = append(d, '"')
	return string(d)
}

// Unquote decodes a quoted token, quotes included. It is lenient:
// malformed input decodes as far as possible and the first problem is
// returned alongside the result.
func Unquote(d []byte) (string, error) {
	var firstErr error
	keep := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}
	b := &strings.Builder{}
	if len(d) == 0 || d[0] != '"' {
		return string(d), ErrUnterminated
	}
	i := 1
	closed := false
	for i < len(d) {
		c := d[i]
		if c == '"' {
			closed = true
			i++
			break
		}
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(d) {
			keep(ErrBadEscape)
			b.WriteByte(c)
			i++
			continue
		}
		code := d[i+1]
		switch code {
		case '"', '\\', '/':
			b.WriteByte(code)
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'u':
			r, n, err := decodeUnicode(d[i:])
			if err != nil {
				keep(err)
				b.WriteByte(c)
				i++
				continue
			}
			b.WriteRune(r)
			i += n
		default:
			keep(ErrBadEscape)
			b.WriteByte(c)
			b.WriteByte(code)
			i += 2
		}
	}
	if !closed {
		keep(ErrUnterminated)
	} else if i != len(d) {
		keep(ErrUnterminated)
	}
	return b.String(), firstErr
}

// decodeUnicode reads a \uXXXX escape at the start of d, consuming a
// following low-surrogate escape when the first is a high surrogate.
func decodeUnicode(d []byte) (rune, int, error) {
	r, ok := hex4(d)
	if !ok {
		return 0, 0, ErrBadUnicode
	}
	if !utf16.IsSurrogate(r) {
		return r, 6, nil
	}
	r2, ok := hex4(d[6:])
	if !ok {
		return utf8.RuneError, 6, ErrBadUnicode
	}
	r = utf16.DecodeRune(r, r2)
	if r == utf8.RuneError {
		return r, 12, ErrBadUnicode
	}
	return r, 12, nil
}

// hex4 decodes the XXXX of a \uXXXX escape; d starts at the backslash.
func hex4(d []byte) (rune, bool) {
	if len(d) < 6 || d[0] != '\\' || d[1] != 'u' {
		return 0, false
	}
	var r rune
	for _, c := range d[2:6] {
		var v byte
		switch {
		case c >= '0' && c <= '9':
			v = c - '0'
		case c >= 'a' && c <= 'f':
			v = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v = c - 'A' + 10
		default:
			return 0, false
		}
		r = r<<4 | rune(v)
	}
	return r, true
}
