package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/ecmajson/parse"
	"github.com/signadot/ecmajson/value"
)

func parseDocs(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	r, err := expr(cfg.Reviver, cfg.File.Reviver)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(file string, d []byte) error {
		v, err := cfg.load(file, d, r)
		if err != nil {
			return err
		}
		if cfg.Quiet {
			theLog.Info("ok", "file", file)
			return nil
		}
		if r == nil {
			_, err := fmt.Fprintf(cc.Out, "%s: ok\n", file)
			return err
		}
		return cfg.writeValue(cc.Out, file, v)
	})
}

func parseReviver(r value.Value) []parse.ParseOption {
	if r == nil {
		return nil
	}
	return []parse.ParseOption{parse.Reviver(r)}
}
