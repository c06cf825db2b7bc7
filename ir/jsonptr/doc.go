// Package jsonptr provides slash-delimited pointer parsing for
// addressing nodes in a document tree.
//
// A pointer is either the empty string, which addresses the root
// itself, or a sequence of entries each introduced by '/':
//
//	""            // the root
//	"/a/b"        // field "b" of field "a"
//	"/items/0"    // first element of the "items" sequence
//
// Entries are taken literally: there is no escaping, so a key that
// itself contains '/' cannot be addressed. Sequence entries must be
// decimal indices with no leading zeros.
//
// # Usage
//
//	entry, rest, err := jsonptr.Split("/a/b") // "a", "/b", nil
//	i, err := jsonptr.SeqIndex("12")          // 12, nil
//	ptr := jsonptr.Join("a", "b")             // "/a/b"
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/ir - document tree representation
package jsonptr
