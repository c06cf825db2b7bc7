package token

import (
	"fmt"
)

type TokenType int

const (
	TNull TokenType = iota
	TTrue
	TFalse
	TInteger
	TFloat
	TString
	// TLiteral is an unquoted word that is not a keyword. It is
	// always reported as an error, but keeping the token lets the
	// parser recover the text.
	TLiteral
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNull:    "TNull",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TString:  "TString",
		TLiteral: "TLiteral",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TComma:   "TComma",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String gives the decoded text of the token. For TString that is the
// unescaped value; malformed escapes decode leniently since the
// tokenizer already reported them.
func (t *Token) String() string {
	if t.Type == TString {
		s, _ := Unquote(t.Bytes)
		return s
	}
	return string(t.Bytes)
}
