package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ptree-go/ptree"
	"github.com/ptree-go/ptree/codec"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two documents", cli.ErrUsage)
	}
	a, err := loadDoc(cc, args[0])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[0], err)
	}
	b, err := loadDoc(cc, args[1])
	if err != nil {
		return fmt.Errorf("error processing %s: %w", args[1], err)
	}
	if cfg.Patch {
		p, err := codec.DiffPatch(a, b)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", p)
		return err
	}
	ds, err := ptree.Diff(a, b)
	if err != nil {
		return err
	}
	for _, d := range ds {
		if _, err := fmt.Fprintln(cc.Out, d); err != nil {
			return err
		}
	}
	if len(ds) > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
