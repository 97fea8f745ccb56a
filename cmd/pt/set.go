package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ptree-go/ptree"
	"github.com/ptree-go/ptree/codec"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	specs, err := parsePathArg(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	val, err := codec.Load([]byte(args[1]))
	if err != nil {
		return fmt.Errorf("%w: invalid value %q: %w", cli.ErrUsage, args[1], err)
	}
	for _, file := range docArgs(args[2:]) {
		v, err := loadDoc(cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		res, err := ptree.At(v, specs...).Set(val)
		if err != nil {
			return fmt.Errorf("error setting %s in %s: %w", args[0], file, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
