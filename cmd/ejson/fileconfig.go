package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/goccy/go-yaml"
	"github.com/signadot/ecmajson/encode"
	"github.com/signadot/ecmajson/exprfn"
)

var ErrConfig = errors.New("config")

// FileConfig is the optional -config file. Command line flags take
// precedence over it.
type FileConfig struct {
	// Indent is the number of spaces per level; nil leaves output compact.
	Indent *int `yaml:"indent"`

	// Gap is an explicit indentation string, used instead of Indent.
	Gap string `yaml:"gap"`

	Color *bool `yaml:"color"`

	// MaxDepth bounds nesting when reading and writing.
	MaxDepth int `yaml:"maxDepth"`

	// MaxSize bounds the size of produced text, as in "64MB".
	MaxSize string `yaml:"maxSize"`

	// Replacer and Reviver are expressions, see package exprfn.
	Replacer string `yaml:"replacer"`
	Reviver  string `yaml:"reviver"`
}

// LoadConfig loads a configuration file in YAML format.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns a FileConfig with the library defaults.
func DefaultConfig() *FileConfig {
	return &FileConfig{
		MaxDepth: encode.DefaultMaxDepth,
	}
}

// Validate checks the configuration for errors.
func (c *FileConfig) Validate() error {
	if c.Indent != nil && (*c.Indent < 0 || *c.Indent > 10) {
		return fmt.Errorf("%w: indent %d out of range [0,10]", ErrConfig, *c.Indent)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: negative maxDepth", ErrConfig)
	}
	if _, err := c.maxSize(); err != nil {
		return err
	}
	for _, src := range []string{c.Replacer, c.Reviver} {
		if src == "" {
			continue
		}
		if _, err := exprfn.Compile(src); err != nil {
			return fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}
	return nil
}

func (c *FileConfig) maxSize() (datasize.ByteSize, error) {
	if c.MaxSize == "" {
		return 0, nil
	}
	sz, err := datasize.ParseString(c.MaxSize)
	if err != nil {
		return 0, fmt.Errorf("%w: maxSize %q: %w", ErrConfig, c.MaxSize, err)
	}
	return sz, nil
}
