package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/ecmajson/format"
	"github.com/signadot/ecmajson/load"
	"github.com/signadot/ecmajson/patch"
	"github.com/signadot/ecmajson/value"
)

func patchDocs(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	if args[0] == "-" && len(args) == 1 {
		return fmt.Errorf("%w: patch read from stdin requires files", cli.ErrUsage)
	}
	pv, err := cfg.patchArg(cc, args[0])
	if err != nil {
		return err
	}
	apply := func(doc value.Value) (value.Value, error) {
		return patch.Merge(doc, pv)
	}
	if !cfg.Merge {
		p, err := patch.Decode(pv)
		if err != nil {
			return err
		}
		theLog.Debug("decoded json patch", "ops", p.Len())
		apply = p.Apply
	}
	return eachInput(cc, args[1:], func(file string, d []byte) error {
		doc, err := cfg.load(file, d, nil)
		if err != nil {
			return err
		}
		res, err := apply(doc)
		if err != nil {
			return err
		}
		return cfg.writeValue(cc.Out, file, res)
	})
}

func (cfg *PatchConfig) patchArg(cc *cli.Context, arg string) (value.Value, error) {
	if cfg.String {
		return load.Load([]byte(arg), format.JSONFormat)
	}
	if arg == "-" {
		return load.LoadReader(cc.In, cfg.inFormat(arg))
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not read patch %q: %w", arg, err)
	}
	return load.Load(d, cfg.inFormat(arg))
}
