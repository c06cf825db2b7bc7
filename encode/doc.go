// Package encode renders document trees as jot text.
//
// Pretty output is the default: one tab of indentation per nesting
// level, object entries as `"key" : value` pairs, and provenance
// comment lines built from each node's Meta and flags. Subtrees for
// which ir.IsCompact holds render on a single line even in pretty
// output. Compact(true) puts the whole document on one line and
// suppresses comments.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//		"name": ir.FromString("alice"),
//		"age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// single line
//	s := encode.MustString(node, encode.Compact(true))
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/ir - document tree representation
//   - github.com/jot-format/go-jot/parse - parse jot text
package encode
