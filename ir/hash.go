package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// Hash returns a 64-bit hash of the node under the given seed,
// consistent with Equal: equal trees hash equal, and Meta/flags do
// not contribute. It panics if n is nil.
func (n *Node) Hash(seed maphash.Seed) uint64 {
	if n == nil {
		panic("ir: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(n.typ))

	var b [8]byte
	switch n.typ {
	case NullType:
	case BoolType:
		if n.boolV {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntegerType:
		binary.LittleEndian.PutUint64(b[:], uint64(n.intV))
		h.Write(b[:])
	case FloatType:
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(n.fltV))
		h.Write(b[:])
	case StringType:
		h.WriteString(n.strV)
	case ArrayType:
		for _, v := range n.arr {
			binary.LittleEndian.PutUint64(b[:], v.Hash(seed))
			h.Write(b[:])
		}
	case ObjectType:
		for _, e := range n.Entries() {
			h.WriteString(e.Key)
			h.WriteByte(0)
			binary.LittleEndian.PutUint64(b[:], e.Node.Hash(seed))
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
