package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/ptree-go/ptree"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		cfg.Apply.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: apply requires one argument, an expression", cli.ErrUsage)
	}
	prg, err := expr.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid expression %q: %w", cli.ErrUsage, args[0], err)
	}
	specs := []any{ptree.All}
	if cfg.Path != "" {
		specs, err = parsePathArg(cfg.Path)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	for _, file := range docArgs(args[1:]) {
		v, err := loadDoc(cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		res, err := ptree.At(v, specs...).Apply(leafExpr(prg))
		if err != nil {
			return fmt.Errorf("error applying %q to %s: %w", args[0], file, err)
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

// leafExpr evaluates a compiled program with the leaf bound to x.
func leafExpr(prg *vm.Program) func(any) (any, error) {
	return func(x any) (any, error) {
		return expr.Run(prg, map[string]any{"x": x})
	}
}
