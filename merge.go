package jot

import (
	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/ir"
)

// OverrideFlag marks a source object that replaces its target wholesale
// instead of merging key by key.
const OverrideFlag = "override"

type MergeConfig struct {
	IgnoreOverrides bool
	MergeMeta       bool
}

type MergeOpt func(*MergeConfig)

// IgnoreOverrides disables interpretation of the "override" flag, so
// flagged objects merge key by key like any other.
func IgnoreOverrides(v bool) MergeOpt {
	return func(c *MergeConfig) { c.IgnoreOverrides = v }
}

// MergeMeta stamps the source's Meta onto each object the merge
// descends into, so a layered document records which layer touched it
// last. Nodes adopted wholesale carry their own Meta regardless.
func MergeMeta(v bool) MergeOpt {
	return func(c *MergeConfig) { c.MergeMeta = v }
}

// Merge overlays src onto dst in place. src is consumed: its subtrees
// are adopted into dst directly and src must not be used afterwards.
//
// A null dst adopts src wholesale. Otherwise a null src clears dst;
// bool, number, string and array sources replace dst wholesale; object
// sources merge into dst key by key, except that an object carrying the
// "override" flag replaces dst wholesale (see IgnoreOverrides).
func Merge(dst, src *ir.Node, opts ...MergeOpt) {
	c := &MergeConfig{}
	for _, opt := range opts {
		opt(c)
	}
	merge(dst, src, c)
}

// MergeCopy is Merge without consuming src.
func MergeCopy(dst, src *ir.Node, opts ...MergeOpt) {
	Merge(dst, src.Clone(), opts...)
}

func merge(dst, src *ir.Node, c *MergeConfig) {
	if debug.Merge() {
		debug.Logf("merge %s onto %s\n", src.Type(), dst.Type())
	}
	if dst.IsNull() {
		*dst = *src
		return
	}
	switch src.Type() {
	case ir.NullType:
		dst.Clear()

	case ir.BoolType, ir.IntegerType, ir.FloatType, ir.StringType, ir.ArrayType:
		*dst = *src

	case ir.ObjectType:
		if !c.IgnoreOverrides && src.HasFlag(OverrideFlag) {
			*dst = *src
			return
		}
		if c.MergeMeta && src.Meta != "" {
			dst.Meta = src.Meta
		}
		for _, e := range src.Entries() {
			merge(dst.Field(e.Key), e.Node, c)
		}

	default:
		panic("type")
	}
}
