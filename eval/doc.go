// Package eval runs expressions against documents.
//
// Query evaluates one expr-lang expression with the document's
// top-level entries as variables; Expand interpolates $[expr] spans
// inside a document's strings for configuration templating. Both make
// the get, has, meta and getenv functions available to expressions.
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/ir - document model
//   - github.com/jot-format/go-jot/encode - result rendering
package eval
