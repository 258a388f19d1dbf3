package main

import (
	"fmt"
	"io"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/ecmajson/encode"
	"github.com/signadot/ecmajson/exprfn"
	"github.com/signadot/ecmajson/format"
	"github.com/signadot/ecmajson/parse"
	"github.com/signadot/ecmajson/value"
)

type MainConfig struct {
	Color      bool   `cli:"name=color desc='encode with color'"`
	Indent     int    `cli:"name=i aliases=indent desc='indent width 0-10, 0 for compact output'"`
	Gap        string `cli:"name=gap desc='indentation string, overrides -i'"`
	Y          bool   `cli:"name=y aliases=yaml desc='read input as yaml'"`
	MaxDepth   int    `cli:"name=max-depth desc='maximum nesting depth'"`
	Verbose    bool   `cli:"name=v desc='verbose logging'"`
	Gops       bool   `cli:"name=gops desc='start a gops diagnostics agent'"`
	ConfigFile string `cli:"name=config desc='configuration file (yaml format)'"`

	InFormat *format.Format
	MaxSize  datasize.ByteSize

	File *FileConfig

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) maxSizeOpt(_ *cli.Context, a string) (any, error) {
	sz, err := datasize.ParseString(a)
	if err != nil {
		return nil, fmt.Errorf("%w: -max-size %q: %w", cli.ErrUsage, a, err)
	}
	cfg.MaxSize = sz
	return sz, nil
}

// isSet reports whether the named main option was given on the command
// line.
func (cfg *MainConfig) isSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

// applyFile fills options not given on the command line from the config
// file.
func (cfg *MainConfig) applyFile() error {
	if cfg.ConfigFile == "" {
		cfg.File = DefaultConfig()
		return nil
	}
	fc, err := LoadConfig(cfg.ConfigFile)
	if err != nil {
		return err
	}
	cfg.File = fc
	if fc.Indent != nil && !cfg.isSet("i") {
		cfg.Indent = *fc.Indent
	}
	if fc.Gap != "" && !cfg.isSet("gap") {
		cfg.Gap = fc.Gap
	}
	if fc.Color != nil && !cfg.isSet("color") {
		cfg.Color = *fc.Color
	}
	if !cfg.isSet("max-depth") {
		cfg.MaxDepth = fc.MaxDepth
	}
	if cfg.MaxSize == 0 {
		sz, err := fc.maxSize()
		if err != nil {
			return err
		}
		cfg.MaxSize = sz
	}
	return nil
}

func (cfg *MainConfig) inFormat(file string) format.Format {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat
	case cfg.Y:
		return format.YAMLFormat
	case file == "-":
		return format.JSONFormat
	default:
		return format.FromPath(file)
	}
}

func (cfg *MainConfig) space() value.Value {
	if cfg.Gap != "" {
		return value.String(cfg.Gap)
	}
	return value.Number(cfg.Indent)
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.MaxDepth(cfg.MaxDepth)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Space(cfg.space()),
		encode.MaxDepth(cfg.MaxDepth),
		encode.Logger(theLog),
	}
	if cfg.MaxSize != 0 {
		res = append(res, encode.MaxLength(int(min(cfg.MaxSize.Bytes(), encode.DefaultMaxLength))))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if cfg.isSet("color") {
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

// expr compiles a command line expression, falling back to the config
// file's.
func expr(flag, file string) (value.Value, error) {
	src := flag
	if src == "" {
		src = file
	}
	if src == "" {
		return nil, nil
	}
	p, err := exprfn.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return p.Callable(), nil
}

type StringifyConfig struct {
	*MainConfig
	Replacer string `cli:"name=r aliases=replacer desc='replacer expression'"`
	Keys     []string

	Stringify *cli.Command
}

func (cfg *StringifyConfig) keyOpt(_ *cli.Context, a string) (any, error) {
	cfg.Keys = append(cfg.Keys, a)
	return a, nil
}

// replacer resolves -k names or the replacer expression.
func (cfg *StringifyConfig) replacer() (value.Value, error) {
	if len(cfg.Keys) != 0 {
		if cfg.Replacer != "" {
			return nil, fmt.Errorf("%w: -k and -r are exclusive", cli.ErrUsage)
		}
		arr := value.NewArray()
		for _, k := range cfg.Keys {
			arr.Push(value.String(k))
		}
		return arr, nil
	}
	return expr(cfg.Replacer, cfg.File.Replacer)
}

type ParseConfig struct {
	*MainConfig
	Reviver string `cli:"name=r aliases=reviver desc='reviver expression'"`
	Quiet   bool   `cli:"name=q desc='only validate'"`

	Parse *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Diff  bool `cli:"name=d desc='show a diff instead of the formatted text'"`
	Write bool `cli:"name=w desc='write the result back to the source file'"`

	Fmt *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=m aliases=merge desc='patch is a json merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}
