package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/ptree-go/ptree/codec"
)

func readDoc(cc *cli.Context, path string) ([]byte, error) {
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
	return d, nil
}

func loadDoc(cc *cli.Context, path string) (any, error) {
	d, err := readDoc(cc, path)
	if err != nil {
		return nil, err
	}
	return codec.Load(d)
}

// docArgs defaults to stdin when no files are given.
func docArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeDoc(cfg *MainConfig, w io.Writer, v any) error {
	d, err := cfg.marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(d); err != nil {
		return err
	}
	if len(d) > 0 && d[len(d)-1] != '\n' {
		_, err = w.Write([]byte("\n"))
	}
	return err
}
