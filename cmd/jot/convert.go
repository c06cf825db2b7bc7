package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/format"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"
	"github.com/jot-format/go-jot/yamlconv"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := convertFile(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func convertFile(cfg *ConvertConfig, cc *cli.Context, arg string) error {
	in := format.JotFormat
	if f, ok := format.DetectPath(arg); ok {
		in = f
	}
	if cfg.From != nil {
		in = *cfg.From
	}
	out := format.JotFormat
	if cfg.To != nil {
		out = *cfg.To
	}

	var r io.Reader
	if arg == "-" {
		r = cc.In
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", arg, err)
	}

	var doc *ir.Node
	if in.IsYAML() {
		doc, err = yamlconv.FromYAML(d)
	} else {
		doc, err = parse.Parse(d)
	}
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}

	if out.IsYAML() {
		y, err := yamlconv.ToYAML(doc)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		_, err = cc.Out.Write(y)
		return err
	}
	opts := cfg.encOpts(cc.Out)
	if out.IsJSON() {
		opts = append(opts, encode.Compact(true))
	}
	if err := encode.Encode(doc, cc.Out, opts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", arg, err)
	}
	return nil
}
