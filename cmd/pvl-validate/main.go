package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/planetarypy/pvl-format/go-pvl/encode"
	"github.com/planetarypy/pvl-format/go-pvl/format"
	"github.com/planetarypy/pvl-format/go-pvl/parse"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const usageText = `pvl-validate - report which PVL dialects load and encode a label

Usage:
  pvl-validate [-v] [--diff] [--no-color] <file>...

For every input file and each dialect profile (PDS3, ODL, PVL, ISIS,
Omni), pvl-validate tries to load the label text and, when that works,
to encode the loaded label back out with the profile's encoder. Some
text loads fine but cannot be written back under a strict dialect;
this tool shows where.

One input file gets a detail report; several files get a table with
one column per profile. Use - to read a label from stdin.

Examples:
  pvl-validate label.lbl
  pvl-validate -v --diff cube.cub
  pvl-validate *.lbl`

type mainConfig struct {
	*cli.Command
	Verbose bool `cli:"name=verbose aliases=v desc='log load and encode errors to stderr'"`
	Diff    bool `cli:"name=diff desc='print a diff between input and re-encoded text per loading profile'"`
	NoColor bool `cli:"name=no-color desc='disable colored output'"`
}

// MainCommand returns the root command for pvl-validate.
func MainCommand() *cli.Command {
	cfg := &mainConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "pvl-validate").
		WithSynopsis("pvl-validate - validate PVL text against the dialect profiles").
		WithDescription(usageText).
		WithOpts(opts...).
		WithRun(cfg.run)
}

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func (cfg *mainConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("no input files; see pvl-validate -h")
	}
	results := make([]fileResult, 0, len(args))
	for _, file := range args {
		text, err := readInput(file, cc.In)
		if err != nil {
			// an unreadable file never aborts the rest of the run
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fr := fileResult{name: file}
		for _, flavor := range format.AllFlavors() {
			fr.outcomes = append(fr.outcomes, cfg.check(cc.Out, file, flavor, text))
		}
		results = append(results, fr)
	}
	colorize := !cfg.NoColor && isatty.IsTerminal(os.Stdout.Fd())
	return writeReport(cc.Out, results, colorize)
}

// outcome records the two booleans for one file under one profile:
// whether the text loaded, and whether the loaded tree encoded. The
// encoded flag is meaningful only when loaded is true.
type outcome struct {
	flavor  format.Flavor
	loaded  bool
	encoded bool
}

func (cfg *mainConfig) check(w io.Writer, file string, flavor format.Flavor, text []byte) outcome {
	res := outcome{flavor: flavor}
	tree, err := parse.Parse(text, parse.ParseFlavor(flavor))
	if err != nil {
		if cfg.Verbose {
			fmt.Fprintf(os.Stderr, "%s load error %s: %v\n", flavor, file, err)
		}
		return res
	}
	res.loaded = true
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(tree, buf, encode.EncodeDialect(flavor.Dialect())); err != nil {
		if cfg.Verbose {
			fmt.Fprintf(os.Stderr, "%s encode error %s: %v\n", flavor, file, err)
		}
		return res
	}
	res.encoded = true
	if cfg.Diff {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(string(text), buf.String()+"\n", false)
		fmt.Fprintf(w, "--- %s [%s]\n%s\n", file, flavor, dmp.DiffPrettyText(diffs))
	}
	return res
}

func readInput(file string, stdin io.Reader) ([]byte, error) {
	if file == "-" {
		d, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	return d, nil
}
