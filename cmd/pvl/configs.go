package main

import (
	"fmt"
	"io"
	"os"

	"github.com/planetarypy/pvl-format/go-pvl/encode"
	"github.com/planetarypy/pvl-format/go-pvl/format"
	"github.com/planetarypy/pvl-format/go-pvl/parse"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='spaces per nesting level (default 2)'"`

	// InFlavor governs loading, OutFlavor re-encoding. Loading
	// defaults to Omni so any recognized label text gets in; output
	// defaults to plain PVL.
	InFlavor, OutFlavor *format.Flavor

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) flavorFunc(fp **format.Flavor) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFlavor(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
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

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	flavor := format.OmniFlavor
	if cfg.InFlavor != nil {
		flavor = *cfg.InFlavor
	}
	return []parse.ParseOption{parse.ParseFlavor(flavor)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	flavor := format.PVLFlavor
	if cfg.OutFlavor != nil {
		flavor = *cfg.OutFlavor
	}
	res := []encode.EncodeOption{
		encode.EncodeDialect(flavor.Dialect()),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
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
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ExportConfig struct {
	*MainConfig

	YAML bool `cli:"name=y aliases=yaml desc='export yaml instead of json'"`

	Export *cli.Command
}
