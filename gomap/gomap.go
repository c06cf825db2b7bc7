// Package gomap binds documents to Go values.
//
// The mapping rides on encoding/json struct tags: FromIR renders the
// node as compact JSON and unmarshals it, ToIR marshals and reparses.
// Meta and flags do not cross the bridge, and integral floats come
// back from ToIR as integers.
package gomap

import (
	"encoding/json"
	"fmt"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
)

// FromIR fills out from node. out follows the encoding/json contract,
// a non-nil pointer.
func FromIR(node *ir.Node, out any) error {
	if err := json.Unmarshal(encode.MustBytes(node, encode.Compact(true)), out); err != nil {
		return fmt.Errorf("gomap: %w", err)
	}
	return nil
}

// ToIR converts a Go value to a node via its encoding/json form.
func ToIR(v any) (*ir.Node, error) {
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("gomap: %w", err)
	}
	n, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("gomap: %w", err)
	}
	return n, nil
}
