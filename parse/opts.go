package parse

import (
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/token"
)

// DefaultMaxDepth bounds container nesting when MaxDepth is not given.
const DefaultMaxDepth = 512

type parseOpts struct {
	source    string
	positions map[*ir.Node]token.Pos
	maxDepth  int
}

type ParseOption func(*parseOpts)

// Source labels the parse for provenance: the label lands in the Meta
// of every parsed node and prefixes every reported error.
func Source(label string) ParseOption {
	return func(o *parseOpts) { o.source = label }
}

// Positions records the starting position of every parsed node in m.
func Positions(m map[*ir.Node]token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// MaxDepth overrides DefaultMaxDepth. Values below 1 leave the
// default in place.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}
