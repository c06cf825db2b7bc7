package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/parse"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}

// getBytes reads a document argument: a literal string by default or
// with -s, a file path (or - for stdin) with -f.
func getBytes(s, f bool, cc *cli.Context, arg string) ([]byte, error) {
	if s && f {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	var r io.Reader
	switch {
	case f:
		if arg == "-" {
			r = cc.In
			break
		}
		file, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer file.Close()
		r = file
	default:
		r = strings.NewReader(arg)
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return d, nil
}
