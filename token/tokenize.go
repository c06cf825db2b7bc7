package token

import (
	"errors"
	"unicode/utf8"
)

// Tokenize scans src, appending to dst. It does not stop at the first
// problem: bad input is reported and skipped, and the token stream
// continues. The returned error joins every TokenizeErr found.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	doc := NewPosDoc(src)
	var errs []error
	keep := func(err error) {
		errs = append(errs, err)
	}
	one := func(tt TokenType, i int) {
		dst = append(dst, Token{Type: tt, Pos: doc.Pos(i), Bytes: src[i : i+1]})
	}
	i := 0
	n := len(src)
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\r', '\n':
			i++
		case '/':
			if i+1 < n && src[i+1] == '/' {
				for i < n && src[i] != '\n' {
					i++
				}
				continue
			}
			keep(UnexpectedErr("'/'", doc.Pos(i)))
			i++
		case '{':
			one(TLCurl, i)
			i++
		case '}':
			one(TRCurl, i)
			i++
		case '[':
			one(TLSquare, i)
			i++
		case ']':
			one(TRSquare, i)
			i++
		case ':':
			one(TColon, i)
			i++
		case ',':
			one(TComma, i)
			i++
		case '"':
			ln, err := scanQuoted(src[i:])
			if err != nil {
				keep(NewTokenizeErr(err, doc.Pos(i)))
			}
			dst = append(dst, Token{Type: TString, Pos: doc.Pos(i), Bytes: src[i : i+ln]})
			i += ln
		case '-':
			ln, isFloat, err := number(src[i+1:])
			if err != nil {
				keep(NewTokenizeErr(err, doc.Pos(i)))
			}
			if ln == 0 {
				i++
				continue
			}
			tt := TInteger
			if isFloat {
				tt = TFloat
			}
			dst = append(dst, Token{Type: tt, Pos: doc.Pos(i), Bytes: src[i : i+1+ln]})
			i += 1 + ln
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			ln, isFloat, err := number(src[i:])
			if err != nil {
				keep(NewTokenizeErr(err, doc.Pos(i)))
			}
			tt := TInteger
			if isFloat {
				tt = TFloat
			}
			dst = append(dst, Token{Type: tt, Pos: doc.Pos(i), Bytes: src[i : i+ln]})
			i += ln
		default:
			if isLetter(c) {
				ln := word(src[i:])
				switch string(src[i : i+ln]) {
				case "null":
					dst = append(dst, Token{Type: TNull, Pos: doc.Pos(i), Bytes: src[i : i+ln]})
				case "true":
					dst = append(dst, Token{Type: TTrue, Pos: doc.Pos(i), Bytes: src[i : i+ln]})
				case "false":
					dst = append(dst, Token{Type: TFalse, Pos: doc.Pos(i), Bytes: src[i : i+ln]})
				default:
					keep(NewTokenizeErr(ErrLiteral, doc.Pos(i)))
					dst = append(dst, Token{Type: TLiteral, Pos: doc.Pos(i), Bytes: src[i : i+ln]})
				}
				i += ln
				continue
			}
			r, sz := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && sz == 1 {
				keep(NewTokenizeErr(ErrBadUTF8, doc.Pos(i)))
			} else {
				keep(UnexpectedErr(string(r), doc.Pos(i)))
			}
			i += sz
		}
	}
	if len(errs) != 0 {
		return dst, errors.Join(errs...)
	}
	return dst, nil
}

// scanQuoted finds the extent of a quoted string starting at d[0],
// validating escapes along the way. An unescaped newline or the end
// of input terminates an unclosed string.
func scanQuoted(d []byte) (int, error) {
	var firstErr error
	keep := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}
	i := 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, firstErr
		case c == '\n':
			keep(ErrUnterminated)
			return i, firstErr
		case c == '\\':
			if i+1 >= len(d) {
				keep(ErrBadEscape)
				i++
				continue
			}
			nx := d[i+1]
			if isEscCode(nx) {
				i += 2
				continue
			}
			if nx == 'u' {
				_, sz, err := decodeUnicode(d[i:])
				if err != nil {
					keep(ErrBadUnicode)
					i += 2
					continue
				}
				i += sz
				continue
			}
			keep(ErrBadEscape)
			i += 2
		case c < 0x20:
			keep(ErrUnicodeControl)
			i++
		case c >= utf8.RuneSelf:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				keep(ErrBadUTF8)
			}
			i += sz
		default:
			i++
		}
	}
	keep(ErrUnterminated)
	return len(d), firstErr
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func word(d []byte) int {
	i := 0
	for i < len(d) && isLetter(d[i]) {
		i++
	}
	return i
}
