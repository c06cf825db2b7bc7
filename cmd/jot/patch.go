package main

import (
	"fmt"

	"github.com/jot-format/go-jot"
	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch argument and optionally a file", cli.ErrUsage)
	}
	p, err := getBytes(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return err
	}
	file := "-"
	if len(args) == 2 {
		file = args[1]
	}
	target, err := getObjFile(cc, file)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	var res *ir.Node
	if cfg.Merge {
		res, err = jot.MergePatch(target, p)
	} else {
		res, err = jot.Patch(target, p)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
