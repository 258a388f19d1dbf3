package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		var g Format
		if err := g.UnmarshalText([]byte(f.String())); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("%s round tripped to %s", f, g)
		}
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

func TestFromPath(t *testing.T) {
	cases := map[string]Format{
		"a.json":     JSONFormat,
		"a.YML":      YAMLFormat,
		"dir/b.yaml": YAMLFormat,
		"noext":      JSONFormat,
	}
	for p, want := range cases {
		if got := FromPath(p); got != want {
			t.Errorf("%s: got %s want %s", p, got, want)
		}
	}
}
