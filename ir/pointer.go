package ir

import (
	"fmt"

	"github.com/jot-format/go-jot/ir/jsonptr"
)

// Resolve returns the node addressed by ptr, creating missing mapping
// entries along the way and coercing non-container nodes to objects as
// needed. The empty pointer addresses n itself.
//
// At an array node the next entry must be a decimal index with no
// leading zero, anything else fails with jsonptr.ErrInvalidPointer. An
// in-bounds index descends into that element; an out-of-bounds one
// stops the walk and returns the array node itself. Out of bounds is
// not an error.
func (n *Node) Resolve(ptr string) (*Node, error) {
	res, err := n.resolve(ptr, true)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", ptr, err)
	}
	return res, nil
}

// Lookup is the read-only form of Resolve: missing mapping entries
// resolve to detached null nodes and the tree is never modified.
func (n *Node) Lookup(ptr string) (*Node, error) {
	res, err := n.resolve(ptr, false)
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", ptr, err)
	}
	return res, nil
}

func (n *Node) resolve(ptr string, mutate bool) (*Node, error) {
	if ptr == "" {
		return n, nil
	}
	entry, rest, err := jsonptr.Split(ptr)
	if err != nil {
		return nil, err
	}
	if n.typ == ArrayType {
		i, err := jsonptr.SeqIndex(entry)
		if err != nil {
			return nil, err
		}
		if i >= len(n.arr) {
			return n, nil
		}
		return n.arr[i].resolve(rest, mutate)
	}
	if mutate {
		return n.Field(entry).resolve(rest, mutate)
	}
	return n.Get(entry).resolve(rest, mutate)
}
