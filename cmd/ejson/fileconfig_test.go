package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "ejson.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadConfig(t *testing.T) {
	p := writeConfig(t, `
indent: 4
color: false
maxDepth: 100
maxSize: 2MB
replacer: 'key == "x" ? omit : value'
`)
	cfg, err := LoadConfig(p)
	if err != nil {
		t.Fatal(err)
	}
	four, no := 4, false
	want := &FileConfig{
		Indent:   &four,
		Color:    &no,
		MaxDepth: 100,
		MaxSize:  "2MB",
		Replacer: `key == "x" ? omit : value`,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	sz, err := cfg.maxSize()
	if err != nil {
		t.Fatal(err)
	}
	if sz != 2*datasize.MB {
		t.Errorf("maxSize %s", sz)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "gap: \"\\t\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth != DefaultConfig().MaxDepth || cfg.Gap != "\t" || cfg.Indent != nil {
		t.Errorf("got %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []string{
		"indent: 11\n",
		"indent: -1\n",
		"maxDepth: -3\n",
		"maxSize: lots\n",
		"reviver: 'key =='\n",
	}
	for _, c := range cases {
		_, err := LoadConfig(writeConfig(t, c))
		if !errors.Is(err, ErrConfig) {
			t.Errorf("%q: got %v", c, err)
		}
	}
}
