// Package jot ties the document model together: loading through a
// resource.Loader, layered merging with provenance, RFC 6902 patches,
// and structural diffs. The subpackages hold the model itself.
//
// # Usage
//
//	doc, err := jot.Load(resource.Dir("config"), "creature.jot")
//	hp, err := doc.Resolve("/stats/hp")
//
//	base, _ := jot.Load(loader, "base.jot")
//	mod, _ := jot.Load(loader, "mod.jot")
//	jot.Merge(base, mod, jot.MergeMeta(true))
//	fmt.Println(jot.ToJSON(base, false))
//
// # Related Packages
//
//   - github.com/jot-format/go-jot/ir - document tree representation
//   - github.com/jot-format/go-jot/parse - parse jot text
//   - github.com/jot-format/go-jot/encode - render jot text
//   - github.com/jot-format/go-jot/resource - resource loading
package jot
