// Package parse parses jot text into document trees.
//
// Parsing is best effort: problems are collected rather than fatal,
// and Parse always returns a usable (possibly partial) tree. A nil
// error means the input was fully valid.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{ "name" : "alice" }`))
//	if err != nil {
//	    // the tree is still usable; err lists what was wrong
//	}
//
//	node, err = parse.ParseString(`[1, 2, 3]`, parse.Source("config.jot"))
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/ir - document tree representation
//   - github.com/jot-format/go-jot/encode - encode trees to text
//   - github.com/jot-format/go-jot/token - tokenization
package parse
