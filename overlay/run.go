package overlay

import (
	"fmt"

	"github.com/jot-format/go-jot"
	"github.com/jot-format/go-jot/debug"
	"github.com/jot-format/go-jot/eval"
	"github.com/jot-format/go-jot/ir"
)

// Run builds the overlay document: sources load and merge in order,
// each stamping its name as Meta on what it contributes, then patches
// apply to the merged result. When the manifest declares an env,
// $[expr] spans in the result expand against it as a final step.
// Source and patch file names always pass through $[expr] expansion.
func (b *Build) Run() (*ir.Node, error) {
	res := ir.Null()
	for i := range b.Sources {
		src := &b.Sources[i]
		keep, err := b.keep(src.If)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", src.File, err)
		}
		if !keep {
			if debug.Overlay() {
				debug.Logf("skip source %q\n", src.File)
			}
			continue
		}
		name, err := eval.ExpandString(src.File, eval.Env(b.Env))
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", src.File, err)
		}
		doc, err := jot.Load(b.Loader, name)
		if err != nil {
			return nil, err
		}
		if debug.Overlay() {
			debug.Logf("merge source %q onto %s\n", name, res.Type())
		}
		jot.Merge(res, doc, jot.MergeMeta(true))
	}
	for i := range b.Patches {
		p := &b.Patches[i]
		keep, err := b.keep(p.If)
		if err != nil {
			return nil, fmt.Errorf("patch %q: %w", p.File, err)
		}
		if !keep {
			if debug.Overlay() {
				debug.Logf("skip patch %q\n", p.File)
			}
			continue
		}
		name, err := eval.ExpandString(p.File, eval.Env(b.Env))
		if err != nil {
			return nil, fmt.Errorf("patch %q: %w", p.File, err)
		}
		d, err := b.Loader.Load(name)
		if err != nil {
			return nil, err
		}
		if debug.Overlay() {
			debug.Logf("apply patch %q\n", name)
		}
		res, err = jot.Patch(res, d)
		if err != nil {
			return nil, fmt.Errorf("patch %q: %w", name, err)
		}
	}
	if b.Env != nil {
		if err := eval.Expand(res, eval.Env(b.Env)); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// keep evaluates an "if" condition against the build env. An empty
// condition keeps; only an explicit false skips.
func (b *Build) keep(cond string) (bool, error) {
	if cond == "" {
		return true, nil
	}
	v, err := eval.Eval(cond, eval.Env(b.Env))
	if err != nil {
		return false, err
	}
	if t, ok := v.(bool); ok && !t {
		return false, nil
	}
	return true, nil
}
