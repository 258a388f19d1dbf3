package patch

import (
	"errors"
	"testing"

	"github.com/signadot/ecmajson/encode"
	"github.com/signadot/ecmajson/parse"
	"github.com/signadot/ecmajson/value"
)

func mustParse(t *testing.T, s string) value.Value {
	t.Helper()
	v, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestApply(t *testing.T) {
	doc := mustParse(t, `{"a": 1, "b": [1, 2]}`)
	p, err := Decode(mustParse(t, `[
		{"op": "replace", "path": "/a", "value": 2},
		{"op": "add", "path": "/b/-", "value": 3},
		{"op": "add", "path": "/c", "value": {"d": null}}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 3 {
		t.Errorf("len %d", p.Len())
	}
	out, err := p.Apply(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"a": 2, "b": [1, 2, 3], "c": {"d": null}}`)
	eq, err := Equal(out, want)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Errorf("got %s", encode.MustString(out))
	}
}

func TestApplyError(t *testing.T) {
	p, err := DecodeBytes([]byte(`[{"op": "remove", "path": "/missing"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Apply(mustParse(t, `{}`)); !errors.Is(err, ErrPatch) {
		t.Errorf("got %v", err)
	}
	if _, err := p.Apply(value.Undefined); !errors.Is(err, ErrNoValue) {
		t.Errorf("got %v", err)
	}
}

func TestMerge(t *testing.T) {
	doc := mustParse(t, `{"a": 1, "b": {"c": 2, "d": 3}}`)
	out, err := Merge(doc, mustParse(t, `{"a": null, "b": {"c": 4}}`))
	if err != nil {
		t.Fatal(err)
	}
	eq, err := Equal(out, mustParse(t, `{"b": {"c": 4, "d": 3}}`))
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Errorf("got %s", encode.MustString(out))
	}
}

func TestMergeDiff(t *testing.T) {
	from := mustParse(t, `{"a": 1, "b": 2}`)
	to := mustParse(t, `{"a": 1, "b": 3, "c": true}`)
	d, err := MergeDiff(from, to)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Merge(from, d)
	if err != nil {
		t.Fatal(err)
	}
	eq, err := Equal(back, to)
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Errorf("merge(from, diff) = %s", encode.MustString(back))
	}
}
