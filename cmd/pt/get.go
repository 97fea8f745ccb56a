package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ptree-go/ptree"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	specs, err := parsePathArg(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, file := range docArgs(args[1:]) {
		v, err := loadDoc(cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		res, err := ptree.At(v, specs...).Get()
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, args[0], err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

func parsePathArg(p string) ([]any, error) {
	if p == "" {
		return nil, fmt.Errorf("invalid query %q", p)
	}
	if p[0] != '$' {
		p = "$" + p
	}
	return ptree.ParsePath(p)
}
