package jot

import (
	"fmt"

	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 patch to doc and returns the patched tree;
// doc itself is not modified. The patch text may carry comments, it is
// normalized through a parse before decoding. Application runs over the
// compact JSON form, so Meta and flags do not survive into the result.
//
// TODO apply ops natively over the node tree so Meta and flags survive.
func Patch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	pn, err := parse.Parse(patch)
	if err != nil {
		return nil, fmt.Errorf("parse patch: %w", err)
	}
	ops, err := jsonpatch.DecodePatch(encode.MustBytes(pn, encode.Compact(true)))
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("patch %d ops on %s\n", len(ops), doc.Type())
	}
	out, err := ops.Apply(encode.MustBytes(doc, encode.Compact(true)))
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

// MergePatch applies an RFC 7386 merge patch to doc and returns the
// patched tree; doc itself is not modified. Like Patch, the patch text
// is normalized through a parse first.
func MergePatch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	pn, err := parse.Parse(patch)
	if err != nil {
		return nil, fmt.Errorf("parse patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("merge patch %s on %s\n", pn.Type(), doc.Type())
	}
	out, err := jsonpatch.MergePatch(
		encode.MustBytes(doc, encode.Compact(true)),
		encode.MustBytes(pn, encode.Compact(true)),
	)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out)
}

// CreateMergePatch produces the RFC 7386 merge patch that turns a into
// b, as compact JSON.
func CreateMergePatch(a, b *ir.Node) ([]byte, error) {
	return jsonpatch.CreateMergePatch(
		encode.MustBytes(a, encode.Compact(true)),
		encode.MustBytes(b, encode.Compact(true)),
	)
}
