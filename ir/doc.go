// Package ir is the document tree for jot values.
//
// # Overview
//
// A jot document (whether parsed from text, built programmatically, or
// produced by merging other documents) is a tree of ir.Node values.
// The tree is a recursive tagged union: each node is exactly one of
// null, bool, integer, float, string, array, or object, and switching
// a node's type replaces its payload.
//
// Alongside its payload every node carries two side channels that are
// never part of structural equality:
//
//   - Meta: a provenance string, usually the source file a value came
//     from. The encoder renders it as a comment in pretty output.
//   - flags: a set of string tags (see SetFlag/HasFlag), rendered as a
//     second comment line. The merge layer interprets the "override"
//     flag; the tree itself attaches no meaning to any flag.
//
// # Creating Nodes
//
// The zero value of Node is a null node. Constructor functions build
// populated nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Reading and Writing
//
// Each payload type has two accessors. The mutable accessor (Bool,
// Integer, Float, Text, Array, Object) retypes the node first when
// needed and returns the live payload, so writes through it stick.
// The const accessor (AsBool, AsInteger, AsFloat, AsString, AsArray,
// AsObject) never mutates: null nodes read as the type's default, the
// two numeric types read into each other, and any other mismatch
// reports a type mismatch error.
//
// The same split applies to containers: Field and Elem vivify, Get
// and At only read. Reads never change the tree.
//
// # Addressing
//
// Nodes resolve slash-delimited pointers ("/servers/0/port") with
// Resolve (vivifying) and Lookup (read-only). The grammar lives in
// the jsonptr subpackage.
//
// # Ordering
//
// Objects serialize deterministically: Entries sorts by value-type
// rank and then by key, so simple values print before containers.
// Compare orders any two trees with the same ranking.
//
// # Thread Safety
//
// Node trees are not thread-safe. Share them across goroutines only
// with external synchronization, or Clone per goroutine.
package ir
