package main

import (
	"fmt"

	"github.com/jot-format/go-jot"
	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"

	"github.com/scott-cotton/cli"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var mOpts []jot.MergeOpt
	if cfg.NoOverrides {
		mOpts = append(mOpts, jot.IgnoreOverrides(true))
	}
	if !cfg.NoMeta {
		mOpts = append(mOpts, jot.MergeMeta(true))
	}
	res := ir.Null()
	for _, arg := range args {
		var pOpts []parse.ParseOption
		if !cfg.NoMeta && arg != "-" {
			pOpts = append(pOpts, parse.Source(arg))
		}
		doc, err := getObjFile(cc, arg, pOpts...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		jot.Merge(res, doc, mOpts...)
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
