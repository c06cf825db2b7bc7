package encode

import (
	"bytes"
	"strings"

	"github.com/jot-format/go-jot/ir"
)

// MustString renders node without the trailing newline Encode
// appends. It panics on sink errors, which a buffer does not produce.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

// MustBytes is the byte form of MustString.
func MustBytes(node *ir.Node, opts ...EncodeOption) []byte {
	return []byte(MustString(node, opts...))
}
