package main

import (
	"fmt"
	"io"
	"os"

	"github.com/planetarypy/pvl-format/go-pvl/encode"
	"github.com/planetarypy/pvl-format/go-pvl/ir"
	"github.com/planetarypy/pvl-format/go-pvl/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		label, err := loadArg(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(label, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		// the terminal statement carries no line break of its own
		if _, err := fmt.Fprintln(cc.Out); err != nil {
			return err
		}
	}
	return nil
}

func loadArg(cfg *MainConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	var rd io.Reader
	if arg == "-" {
		rd = cc.In
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		rd = f
	}
	d, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	label, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return label, nil
}
