package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Equal reports deep structural equality over type and payload. Meta
// and flags never participate; Integer and Float nodes are unequal
// even when numerically the same.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.typ != b.typ {
		return false
	}
	switch a.typ {
	case NullType:
		return true
	case BoolType:
		return a.boolV == b.boolV
	case IntegerType:
		return a.intV == b.intV
	case FloatType:
		return a.fltV == b.fltV
	case StringType:
		return a.strV == b.strV
	case ArrayType:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for k, av := range a.obj {
			bv, ok := b.obj[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.typ)
	rankB := rank(b.typ)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.typ {
	case NullType:
		return 0
	case BoolType:
		if a.boolV == b.boolV {
			return 0
		}
		if !a.boolV {
			return -1
		}
		return 1
	case IntegerType:
		return cmp.Compare(a.intV, b.intV)
	case FloatType:
		return cmp.Compare(a.fltV, b.fltV)
	case StringType:
		return strings.Compare(a.strV, b.strV)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Integer < Float < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntegerType:
		return 2
	case FloatType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	}
	return 100
}

func compareArrays(a, b *Node) int {
	lenA := len(a.arr)
	lenB := len(b.arr)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.arr[i], b.arr[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareObjects(a, b *Node) int {
	ae := a.Entries()
	be := b.Entries()
	minLen := min(len(ae), len(be))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(ae[i].Key, be[i].Key); c != 0 {
			return c
		}
		if c := Compare(ae[i].Node, be[i].Node); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ae), len(be))
}

// Entry is one key/value pair of an object node.
type Entry struct {
	Key  string
	Node *Node
}

// Entries returns an object's entries in serialization order: grouped
// by value-type rank, then by key. The grouping puts simple values
// ahead of nested containers and makes iteration deterministic; the
// encoder depends on it for stable comment placement.
func (n *Node) Entries() []Entry {
	if n.typ != ObjectType || len(n.obj) == 0 {
		return nil
	}
	res := make([]Entry, 0, len(n.obj))
	for k, v := range n.obj {
		res = append(res, Entry{Key: k, Node: v})
	}
	slices.SortFunc(res, func(a, b Entry) int {
		if c := cmp.Compare(rank(a.Node.typ), rank(b.Node.typ)); c != 0 {
			return c
		}
		return strings.Compare(a.Key, b.Key)
	})
	return res
}
