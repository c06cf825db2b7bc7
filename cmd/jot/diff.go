package main

import (
	"fmt"

	"github.com/jot-format/go-jot"
	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	changes := jot.Diff(a, b)
	if len(changes) == 0 {
		return nil
	}
	if err := encode.Encode(changeList(changes), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// changeList renders changes as an op array: add and replace carry the
// new value, remove and replace keep the old one under "was".
func changeList(changes []jot.Change) *ir.Node {
	ops := make([]*ir.Node, len(changes))
	for i := range changes {
		c := &changes[i]
		m := map[string]*ir.Node{
			"path": ir.FromString(c.Ptr),
		}
		switch {
		case c.From == nil:
			m["op"] = ir.FromString("add")
			m["value"] = c.To.Clone()
		case c.To == nil:
			m["op"] = ir.FromString("remove")
			m["was"] = c.From.Clone()
		default:
			m["op"] = ir.FromString("replace")
			m["value"] = c.To.Clone()
			m["was"] = c.From.Clone()
		}
		ops[i] = ir.FromMap(m)
	}
	return ir.FromSlice(ops)
}
