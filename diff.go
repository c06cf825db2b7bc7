package jot

import (
	"hash/maphash"
	"unicode/utf8"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/ir/jsonptr"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is one difference reported by Diff. From and To alias the
// input trees: a nil From marks an addition, a nil To a removal, and
// both set mark a modification. Ptr locates the node in Resolve syntax;
// array indices refer to the first document for removals and
// modifications and to the second for additions.
type Change struct {
	Ptr  string
	From *ir.Node
	To   *ir.Node
}

// Diff reports the structural differences between a and b as a flat,
// pointer-addressed change list. Meta and flags are ignored, as in
// Equal. Objects diff by key; arrays align runs of equal elements and
// pair off replaced ones positionally, recursing into the pairs.
func Diff(a, b *ir.Node) []Change {
	d := &differ{seed: maphash.MakeSeed()}
	d.diff("", a, b)
	return d.changes
}

type differ struct {
	seed    maphash.Seed
	buckets map[uint64][]classEntry
	nextID  int
	changes []Change
}

// classEntry ties one representative node to its equality class.
type classEntry struct {
	node *ir.Node
	id   int
}

func (d *differ) diff(ptr string, a, b *ir.Node) {
	if ir.Equal(a, b) {
		return
	}
	if a.Type() != b.Type() {
		d.record(ptr, a, b)
		return
	}
	switch a.Type() {
	case ir.ObjectType:
		d.diffObject(ptr, a, b)
	case ir.ArrayType:
		d.diffArray(ptr, a, b)
	default:
		d.record(ptr, a, b)
	}
}

func (d *differ) diffObject(ptr string, a, b *ir.Node) {
	bObj, _ := b.AsObject()
	inA := make(map[string]bool, a.Len())
	for _, e := range a.Entries() {
		inA[e.Key] = true
		bv, ok := bObj[e.Key]
		if !ok {
			d.record(jsonptr.Append(ptr, e.Key), e.Node, nil)
			continue
		}
		d.diff(jsonptr.Append(ptr, e.Key), e.Node, bv)
	}
	for _, e := range b.Entries() {
		if !inA[e.Key] {
			d.record(jsonptr.Append(ptr, e.Key), nil, e.Node)
		}
	}
}

// diffArray aligns elements by equality class: equal elements share a
// rune, go-diff finds the common runs, and the leftover delete/insert
// runs pair up positionally as modifications.
func (d *differ) diffArray(ptr string, a, b *ir.Node) {
	av, _ := a.AsArray()
	bv, _ := b.AsArray()
	ra := make([]rune, len(av))
	for i, n := range av {
		ra[i] = classRune(d.classOf(n))
	}
	rb := make([]rune, len(bv))
	for i, n := range bv {
		rb[i] = classRune(d.classOf(n))
	}
	diffs := diffpatch.New().DiffMainRunes(ra, rb, false)
	ai, bi := 0, 0
	for i := 0; i < len(diffs); i++ {
		switch diffs[i].Type {
		case diffpatch.DiffEqual:
			for range diffs[i].Text {
				ai++
				bi++
			}
		case diffpatch.DiffDelete:
			del := utf8.RuneCountInString(diffs[i].Text)
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = utf8.RuneCountInString(diffs[i+1].Text)
				i++
			}
			for del > 0 && ins > 0 {
				d.diff(jsonptr.AppendIndex(ptr, ai), av[ai], bv[bi])
				ai++
				bi++
				del--
				ins--
			}
			for ; del > 0; del-- {
				d.record(jsonptr.AppendIndex(ptr, ai), av[ai], nil)
				ai++
			}
			for ; ins > 0; ins-- {
				d.record(jsonptr.AppendIndex(ptr, bi), nil, bv[bi])
				bi++
			}
		case diffpatch.DiffInsert:
			for range diffs[i].Text {
				d.record(jsonptr.AppendIndex(ptr, bi), nil, bv[bi])
				bi++
			}
		}
	}
}

// classOf returns the equality-class id of n, assigning a fresh one
// the first time an equal node is seen. Buckets are keyed by Hash;
// Equal settles collisions.
func (d *differ) classOf(n *ir.Node) int {
	h := n.Hash(d.seed)
	for _, e := range d.buckets[h] {
		if ir.Equal(e.node, n) {
			return e.id
		}
	}
	if d.buckets == nil {
		d.buckets = map[uint64][]classEntry{}
	}
	id := d.nextID
	d.nextID++
	d.buckets[h] = append(d.buckets[h], classEntry{node: n, id: id})
	return id
}

// classRune maps a class id to a rune, skipping the surrogate range so
// the id survives go-diff's string round-trip.
func classRune(id int) rune {
	r := rune(id + 1)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}

func (d *differ) record(ptr string, from, to *ir.Node) {
	if debug.Diff() {
		switch {
		case from == nil:
			debug.Logf("diff add %q\n", ptr)
		case to == nil:
			debug.Logf("diff remove %q\n", ptr)
		default:
			debug.Logf("diff change %q\n", ptr)
		}
	}
	d.changes = append(d.changes, Change{Ptr: ptr, From: from, To: to})
}
