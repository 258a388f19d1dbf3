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
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y (default from file extension)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "max-size",
			Description: "maximum output size, such as 64MB",
			Type:        cli.NamedFuncOpt(cfg.maxSizeOpt, "(size)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ejson").
		WithSynopsis("ejson [opts] command [opts]").
		WithDescription("ejson reads, checks and writes JSON with ECMAScript JSON semantics.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ejsonMain(cfg, cc, args)
		}).
		WithSubs(
			StringifyCommand(cfg),
			ParseCommand(cfg),
			FmtCommand(cfg),
			PatchCommand(cfg))
}

func StringifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StringifyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "k",
		Description: "member name to keep, may be repeated",
		Type:        cli.NamedFuncOpt(cfg.keyOpt, "(name)"),
	})
	return cli.NewCommandAt(&cfg.Stringify, "stringify").
		WithAliases("s").
		WithSynopsis("stringify [-k name]... [-r expr] [files]").
		WithDescription(stringifyDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return stringify(cfg, cc, args)
		})
}

const stringifyDescription = `stringify loads documents (json or yaml) and writes them as JSON text.

Members can be selected with -k, which acts as a replacer array, or
transformed with -r, a replacer expression evaluated with the variables
key, value and omit:

  ejson stringify -r 'key == "password" ? omit : value' in.json
`

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("p").
		WithSynopsis("parse [-q] [-r expr] [files]").
		WithDescription("parse checks JSON documents, optionally reviving them with an expression.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parseDocs(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-d] [-w] [files]").
		WithDescription("fmt rewrites JSON documents in canonical stringify form.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtDocs(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("pa").
		WithSynopsis("patch [-m] [-s] <patch> [files]").
		WithDescription("patch applies a JSON Patch, or with -m a JSON Merge Patch, to documents. A patch of - is read from stdin.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchDocs(cfg, cc, args)
		})
}
