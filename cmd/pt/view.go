package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ptree-go/ptree/repr"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.reprOpts(cc.Out)
	if cfg.Depth > 0 {
		opts = append(opts, repr.MaxDepth(cfg.Depth))
	}
	if cfg.Short {
		opts = append(opts, repr.Short(true))
	}
	for _, file := range docArgs(args) {
		v, err := loadDoc(cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := repr.Fprint(cc.Out, v, opts...); err != nil {
			return err
		}
	}
	return nil
}
