// Package format names the document formats the tools read and write.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//
//	// pick a format from a file name
//	f, ok := format.DetectPath("creature.jot")
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/parse - Parse text to document trees
//   - github.com/jot-format/go-jot/encode - Encode document trees to text
//   - github.com/jot-format/go-jot/yamlconv - YAML bridge
package format
