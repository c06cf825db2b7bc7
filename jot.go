package jot

import (
	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
	"github.com/jot-format/go-jot/resource"
)

// Load reads name through l and parses it with name as the source
// label, so every node carries its provenance in Meta. Like
// parse.Parse it returns a best-effort document alongside any syntax
// error; loader failures (resource.ErrNotFound included) pass through
// untouched with a nil node.
func Load(l resource.Loader, name string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := l.Load(name)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, append([]parse.ParseOption{parse.Source(name)}, opts...)...)
}

// ToJSON renders node as text, single-line when compact.
func ToJSON(node *ir.Node, compact bool) string {
	return encode.MustString(node, encode.Compact(compact))
}

// ToBytes is the byte form of ToJSON.
func ToBytes(node *ir.Node, compact bool) []byte {
	return encode.MustBytes(node, encode.Compact(compact))
}
