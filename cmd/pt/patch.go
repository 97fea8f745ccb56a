package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ptree-go/ptree/codec"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires one argument, a patch", cli.ErrUsage)
	}
	var p []byte
	if cfg.String {
		p = []byte(args[0])
	} else {
		p, err = readDoc(cc, args[0])
		if err != nil {
			return err
		}
	}
	for _, file := range docArgs(args[1:]) {
		v, err := loadDoc(cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		doc, err := codec.JSON(v)
		if err != nil {
			return err
		}
		patched, err := codec.ApplyPatch(doc, p)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		res, err := codec.Load(patched)
		if err != nil {
			return err
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
