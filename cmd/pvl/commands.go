package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"iflavor"},
			Description: "input flavor: pds3, odl, pvl, isis, omni",
			Type:        cli.NamedFuncOpt(cfg.flavorFunc(&cfg.InFlavor), "(flavor)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"oflavor"},
			Description: "output flavor: pds3, odl, pvl, isis, omni",
			Type:        cli.NamedFuncOpt(cfg.flavorFunc(&cfg.OutFlavor), "(flavor)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "pvl").
		WithSynopsis("pvl [opts] command [opts]").
		WithDescription("pvl is a tool for working with planetary label text.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pvlMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			ExportCommand(cfg))
}

func pvlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view label files, re-encoded in the output flavor").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("export").
		WithAliases("x", "ex").
		WithOpts(opts...).
		WithSynopsis("export [files]").
		WithDescription("export label files as json or yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
	cfg.Export = cmd
	return cmd
}
