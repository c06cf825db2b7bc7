package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Compact bool `cli:"name=c aliases=compact desc='encode documents on one line'"`
	Plain   bool `cli:"name=plain desc='omit provenance comments'"`
	Color   bool `cli:"name=color desc='encode with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Compact(cfg.Compact),
		encode.EncodeComments(!cfg.Plain),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type MergeConfig struct {
	*MainConfig
	NoOverrides bool `cli:"name=noOverrides desc='merge override-flagged objects key by key'"`
	NoMeta      bool `cli:"name=noMeta desc='do not stamp file names as provenance'"`

	Merge *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`
	Merge  bool `cli:"name=m aliases=merge desc='apply arg as a merge patch'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env    map[string]any
	Expand bool `cli:"name=x aliases=expand desc='expand $[expr] spans instead of querying'"`

	Eval *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	From *format.Format
	To   *format.Format

	Convert *cli.Command
}

func (cfg *ConvertConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

type BuildConfig struct {
	*MainConfig
	Env map[string]any

	List    bool   `cli:"name=l aliases=list desc='list profiles'"`
	Profile string `cli:"name=p aliases=profile desc='profile to build with'"`
	ShowEnv bool   `cli:"name=s aliases=show desc='show the build environment'"`

	Build *cli.Command
}
