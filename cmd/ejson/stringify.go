package main

import (
	"github.com/scott-cotton/cli"
	"github.com/signadot/ecmajson/encode"
)

func stringify(cfg *StringifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stringify.Parse(cc, args)
	if err != nil {
		return err
	}
	r, err := cfg.replacer()
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(file string, d []byte) error {
		v, err := cfg.load(file, d, nil)
		if err != nil {
			return err
		}
		return cfg.writeValue(cc.Out, file, v, encode.Replacer(r))
	})
}
