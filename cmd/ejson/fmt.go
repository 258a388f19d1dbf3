package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/ecmajson/libdiff"
)

func fmtDocs(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
	}
	if cfg.Write && cfg.Diff {
		return fmt.Errorf("%w: -w and -d are exclusive", cli.ErrUsage)
	}
	if !cfg.isSet("i") && !cfg.isSet("gap") && cfg.File.Indent == nil && cfg.File.Gap == "" {
		cfg.Indent = 2
	}
	if cfg.Write || cfg.Diff {
		cfg.Color = false
	}
	return eachInput(cc, args, func(file string, d []byte) error {
		if cfg.Write && !cfg.inFormat(file).IsJSON() {
			return fmt.Errorf("%w: -w only rewrites json files", cli.ErrUsage)
		}
		v, err := cfg.load(file, d, nil)
		if err != nil {
			return err
		}
		buf := &bytes.Buffer{}
		var w io.Writer = buf
		if !cfg.Write && !cfg.Diff {
			w = cc.Out
		}
		if err := cfg.writeValue(w, file, v); err != nil {
			return err
		}
		switch {
		case cfg.Diff:
			lines := libdiff.Lines(string(d), buf.String())
			if !libdiff.Changed(lines) {
				return nil
			}
			_, err := fmt.Fprintf(cc.Out, "--- %s\n+++ %s (formatted)\n%s", file, file, libdiff.Format(lines, 2))
			return err
		case cfg.Write:
			if bytes.Equal(d, buf.Bytes()) {
				return nil
			}
			theLog.Info("formatted", "file", file)
			return os.WriteFile(file, buf.Bytes(), 0644)
		}
		return nil
	})
}
