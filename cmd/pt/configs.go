package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/mattn/go-isatty"

	"github.com/ptree-go/ptree/codec"
	"github.com/ptree-go/ptree/repr"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='output json instead of yaml'"`
	Color bool `cli:"name=color desc='render with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) marshal(v any) ([]byte, error) {
	if cfg.J {
		return codec.JSON(v)
	}
	return codec.Save(v)
}

func (cfg *MainConfig) reprOpts(w io.Writer) []repr.Option {
	if cfg.Color {
		return []repr.Option{repr.WithColors(repr.NewColors())}
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
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []repr.Option{repr.WithColors(repr.NewColors())}
	}
	return nil
}

type ViewConfig struct {
	*MainConfig

	Depth int  `cli:"name=depth desc='limit rendered depth'"`
	Short bool `cli:"name=s desc='truncate long leaves'"`

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type ApplyConfig struct {
	*MainConfig

	Path string `cli:"name=p aliases=path desc='path selecting leaves (default all)'"`

	Apply *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Patch bool `cli:"name=patch desc='emit an rfc 6902 patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}
