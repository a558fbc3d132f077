package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})
	return cli.NewCommandAt(&cfg.Main, "rt").
		WithSynopsis("rt [opts] command [opts]").
		WithDescription("rt works with runtime type declarations.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rtMain(cfg, cc, args)
		}).
		WithSubs(
			SchemaCommand(cfg),
			GenCommand(cfg),
			CheckCommand(cfg))
}

func SchemaCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SchemaConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Schema, "schema").
		WithAliases("s").
		WithSynopsis("schema [-y] [files]").
		WithDescription("translate type declarations into a schema document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return schemaMain(cfg, cc, args)
		})
}

func GenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GenConfig{MainConfig: mainCfg, Package: "types"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Gen, "gen").
		WithAliases("g").
		WithSynopsis("gen [-pkg name] [-check file] [files]").
		WithDescription("generate Go runtime types from type declarations or schema documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return gen(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check -types file -t name [-patch file] [docs]").
		WithDescription("validate JSON or YAML documents against a declared type").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
