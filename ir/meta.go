package ir

import (
	"maps"
	"slices"
)

// SetMeta stamps the provenance string on n and every node below it.
func (n *Node) SetMeta(meta string) {
	n.Meta = meta
	switch n.typ {
	case ArrayType:
		for _, v := range n.arr {
			v.SetMeta(meta)
		}
	case ObjectType:
		for _, v := range n.obj {
			v.SetMeta(meta)
		}
	}
}

// SetFlag adds a string tag to n. Flags are rendered as a comment in
// pretty output and ignored by Equal; the tree attaches no meaning to
// them.
func (n *Node) SetFlag(flag string) {
	if n.flags == nil {
		n.flags = map[string]struct{}{}
	}
	n.flags[flag] = struct{}{}
}

func (n *Node) ClearFlag(flag string) {
	delete(n.flags, flag)
}

func (n *Node) HasFlag(flag string) bool {
	_, ok := n.flags[flag]
	return ok
}

// Flags returns the node's flags in sorted order.
func (n *Node) Flags() []string {
	if len(n.flags) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(n.flags))
}
