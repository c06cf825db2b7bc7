package ir

import (
	"math"
	"strings"
)

// Node is one value in a document tree. The zero value is a null
// node. The discriminant and the active payload always agree; see the
// package doc for the accessor conventions.
type Node struct {
	typ   Type
	boolV bool
	intV  int64
	fltV  float64
	strV  string
	arr   []*Node
	obj   map[string]*Node

	// Meta is the provenance of this node, usually the name of the
	// source it was parsed or merged from. It is rendered as a
	// comment in pretty output and ignored by Equal.
	Meta string

	flags map[string]struct{}
}

func Null() *Node {
	return &Node{}
}

// New returns a node of type t holding that type's default payload.
func New(t Type) *Node {
	n := &Node{}
	n.SetType(t)
	return n
}

func FromBool(v bool) *Node {
	return &Node{typ: BoolType, boolV: v}
}

func FromInt(v int64) *Node {
	return &Node{typ: IntegerType, intV: v}
}

func FromFloat(v float64) *Node {
	return &Node{typ: FloatType, fltV: v}
}

func FromString(v string) *Node {
	return &Node{typ: StringType, strV: v}
}

// FromSlice builds an array node around vs. Nil elements become null
// nodes; the slice is owned by the result afterwards.
func FromSlice(vs []*Node) *Node {
	res := &Node{typ: ArrayType, arr: vs}
	if res.arr == nil {
		res.arr = []*Node{}
	}
	for i, v := range res.arr {
		if v == nil {
			res.arr[i] = Null()
		}
	}
	return res
}

// FromMap builds an object node from m. Nil values become null nodes;
// the map is owned by the result afterwards.
func FromMap(m map[string]*Node) *Node {
	res := &Node{typ: ObjectType, obj: m}
	if res.obj == nil {
		res.obj = map[string]*Node{}
	}
	for k, v := range res.obj {
		if v == nil {
			res.obj[k] = Null()
		}
	}
	return res
}

func (n *Node) Type() Type {
	return n.typ
}

func (n *Node) IsNull() bool {
	return n.typ == NullType
}

// IsNumber is true for both Integer and Float nodes.
func (n *Node) IsNumber() bool {
	return n.typ == IntegerType || n.typ == FloatType
}

func (n *Node) IsString() bool {
	return n.typ == StringType
}

func (n *Node) IsArray() bool {
	return n.typ == ArrayType
}

func (n *Node) IsObject() bool {
	return n.typ == ObjectType
}

// SetType retypes n in place. Retyping to the current type is a
// no-op. Integer and Float convert into each other numerically,
// truncating toward zero when narrowing; every other transition
// discards the payload and installs the default for t.
func (n *Node) SetType(t Type) {
	if n.typ == t {
		return
	}
	switch {
	case n.typ == IntegerType && t == FloatType:
		n.fltV = float64(n.intV)
		n.intV = 0
	case n.typ == FloatType && t == IntegerType:
		n.intV = truncInt(n.fltV)
		n.fltV = 0
	default:
		n.reset()
		switch t {
		case ArrayType:
			n.arr = []*Node{}
		case ObjectType:
			n.obj = map[string]*Node{}
		}
	}
	n.typ = t
}

// Clear resets n to a null node. Meta and flags survive.
func (n *Node) Clear() {
	n.reset()
	n.typ = NullType
}

func (n *Node) reset() {
	n.boolV = false
	n.intV = 0
	n.fltV = 0
	n.strV = ""
	n.arr = nil
	n.obj = nil
}

// truncInt converts toward zero, pinning values outside the int64
// range and mapping NaN to 0.
func truncInt(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

// TryBool reads a boolean that may be authored as a string literal.
// Bool nodes succeed with their value. String nodes succeed when the
// trimmed, lowercased text is exactly "true" or "false". Everything
// else fails.
func (n *Node) TryBool() (bool, bool) {
	switch n.typ {
	case BoolType:
		return n.boolV, true
	case StringType:
		switch strings.ToLower(strings.TrimSpace(n.strV)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// ContainsBaseData reports whether n carries overridable content: a
// null node does not, an object does iff any of its values does, and
// every other type does.
func (n *Node) ContainsBaseData() bool {
	switch n.typ {
	case NullType:
		return false
	case ObjectType:
		for _, v := range n.obj {
			if v.ContainsBaseData() {
				return true
			}
		}
		return false
	}
	return true
}

// IsCompact reports whether n renders on one line in pretty output.
// Scalars are compact. Arrays are compact when all elements are.
// Objects are compact when empty, or when they hold a single entry
// whose value is compact.
func (n *Node) IsCompact() bool {
	switch n.typ {
	case ArrayType:
		for _, v := range n.arr {
			if !v.IsCompact() {
				return false
			}
		}
		return true
	case ObjectType:
		switch len(n.obj) {
		case 0:
			return true
		case 1:
			for _, v := range n.obj {
				return v.IsCompact()
			}
		}
		return false
	}
	return true
}

// Len is the element count of an array or entry count of an object,
// and 0 for anything else.
func (n *Node) Len() int {
	switch n.typ {
	case ArrayType:
		return len(n.arr)
	case ObjectType:
		return len(n.obj)
	}
	return 0
}

// Clone deep-copies n, including Meta and flags.
func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.typ = n.typ
	dst.boolV = n.boolV
	dst.intV = n.intV
	dst.fltV = n.fltV
	dst.strV = n.strV
	dst.Meta = n.Meta
	dst.arr = nil
	dst.obj = nil
	if n.arr != nil {
		dst.arr = make([]*Node, len(n.arr))
		for i, v := range n.arr {
			dst.arr[i] = v.Clone()
		}
	}
	if n.obj != nil {
		dst.obj = make(map[string]*Node, len(n.obj))
		for k, v := range n.obj {
			dst.obj[k] = v.Clone()
		}
	}
	dst.flags = nil
	if len(n.flags) != 0 {
		dst.flags = make(map[string]struct{}, len(n.flags))
		for f := range n.flags {
			dst.flags[f] = struct{}{}
		}
	}
	return dst
}

// Visit walks the tree in pre- and post-order. f is called with
// isPost=false before a node's children (in Entries order for
// objects) and with isPost=true after; returning dive=false skips the
// children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		switch n.typ {
		case ArrayType:
			for _, v := range n.arr {
				if err := v.Visit(f); err != nil {
					return err
				}
			}
		case ObjectType:
			for _, e := range n.Entries() {
				if err := e.Node.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
