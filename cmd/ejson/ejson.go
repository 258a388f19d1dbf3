package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"github.com/signadot/ecmajson/encode"
	"github.com/signadot/ecmajson/load"
	"github.com/signadot/ecmajson/value"
)

func ejsonMain(cfg *MainConfig, cc *cli.Context, args []string) (err error) {
	defer func() {
		err = cfg.closeOut(err)
	}()
	args, err = cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	if err := cfg.applyFile(); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Warn("gops agent failed", "error", err)
		}
		defer agent.Close()
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

// closeOut closes the -o file. A close failure is reported unless the
// run already failed.
func (cfg *MainConfig) closeOut(err error) error {
	if cfg.CloseOut == nil {
		return err
	}
	cerr := cfg.CloseOut()
	cfg.CloseOut = nil
	if cerr != nil && err == nil {
		return fmt.Errorf("could not close %q: %w", cfg.Out, cerr)
	}
	return err
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

// eachInput calls fn with the contents of every file in args, or of
// stdin when there are none.
func eachInput(cc *cli.Context, args []string, fn func(file string, d []byte) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		var (
			d   []byte
			err error
		)
		if file == "-" {
			d, err = io.ReadAll(cc.In)
		} else {
			d, err = os.ReadFile(file)
		}
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		theLog.Debug("read input", "file", file, "size", len(d))
		if err := fn(file, d); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func (cfg *MainConfig) load(file string, d []byte, reviver value.Value) (value.Value, error) {
	opts := append(cfg.parseOpts(), parseReviver(reviver)...)
	return load.Load(d, cfg.inFormat(file), opts...)
}

// writeValue writes the JSON text of v and a newline. Values without
// JSON form are reported and skipped.
func (cfg *MainConfig) writeValue(w io.Writer, file string, v value.Value, opts ...encode.EncodeOption) error {
	opts = append(cfg.encOpts(w), opts...)
	err := encode.Encode(v, w, opts...)
	if errors.Is(err, encode.ErrNoText) {
		theLog.Warn("no JSON text", "file", file)
		return nil
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
