package main

import (
	"fmt"
	"sort"

	"github.com/jot-format/go-jot/encode"
	"github.com/jot-format/go-jot/ir"
	"github.com/jot-format/go-jot/overlay"

	"github.com/scott-cotton/cli"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		return err
	}
	args, err = parseEnvExtras(cfg, cc, args)
	if err != nil {
		return err
	}
	dirPath := "."
	if len(args) != 0 {
		dirPath = args[0]
	}
	b, err := overlay.Open(dirPath)
	if err != nil {
		return err
	}
	if cfg.ShowEnv && cfg.List {
		return fmt.Errorf("%w: cannot use -s and -l together", cli.ErrUsage)
	}
	if cfg.List {
		profiles := make([]string, 0, len(b.Profiles))
		for name := range b.Profiles {
			profiles = append(profiles, name)
		}
		sort.Strings(profiles)
		for _, profile := range profiles {
			fmt.Fprintln(cc.Out, profile)
		}
		return nil
	}
	if cfg.Profile != "" {
		if err := b.UseProfile(cfg.Profile); err != nil {
			return fmt.Errorf("error loading profile %s: %w", cfg.Profile, err)
		}
	}
	if len(cfg.Env) != 0 {
		if err := b.SetEnv(cfg.Env); err != nil {
			return err
		}
	}
	if cfg.ShowEnv {
		env, err := ir.FromAny(b.Env)
		if err != nil {
			return err
		}
		return encode.Encode(env, cc.Out, cfg.encOpts(cc.Out)...)
	}
	doc, err := b.Run()
	if err != nil {
		return err
	}
	return encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...)
}

func parseEnvExtras(cfg *BuildConfig, cc *cli.Context, args []string) ([]string, error) {
	delim := -1
	for i, arg := range args {
		if arg == "--" {
			delim = i
			break
		}
	}
	if delim == -1 {
		return args, nil
	}
	f := envOptTypeFunc(cfg.Env)
	ret := args[:delim]
	delim++
	for delim < len(args) {
		arg := args[delim]
		delim++
		if _, err := f(cc, arg); err != nil {
			return nil, err
		}
	}
	return ret, nil
}
