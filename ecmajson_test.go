package ecmajson

import (
	"errors"
	"math"
	"strings"
	"testing"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/ecmajson/encode"
	"github.com/signadot/ecmajson/value"
)

func TestStringifyExamples(t *testing.T) {
	o := value.NewObject().Set("a", value.Undefined).Set("b", value.Number(1))
	cases := []struct {
		name               string
		v, replacer, space value.Value
		want               string
		noText             bool
	}{
		{name: "missing", noText: true},
		{name: "undefined", v: value.Undefined, noText: true},
		{name: "omitted member", v: o, want: `{"b":1}`},
		{name: "array null", v: value.NewArray(value.Undefined, value.Number(1)), want: `[null,1]`},
		{
			name:     "replacer array",
			v:        value.NewObject().Set("a", value.Number(1)).Set("b", value.Number(2)).Set("c", value.Number(3)),
			replacer: value.NewArray(value.String("a"), value.String("a"), value.String("b"), value.String("a")),
			want:     `{"a":1,"b":2}`,
		},
		{
			name:  "pretty",
			v:     value.NewObject().Set("a", value.Number(1)).Set("b", value.Number(2)),
			space: value.Number(2),
			want:  "{\n  \"a\": 1,\n  \"b\": 2\n}",
		},
		{
			name: "non finite",
			v:    value.NewObject().Set("a", value.Number(math.NaN())).Set("b", value.Number(math.Inf(1))),
			want: `{"a":null,"b":null}`,
		},
		{
			name: "toJSON",
			v: value.NewObject().Set("toJSON", value.NewFunc("toJSON", func(value.Value, []value.Value) (value.Value, error) {
				return value.Number(42), nil
			})),
			want: `42`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok, err := Stringify(c.v, c.replacer, c.space)
			if err != nil {
				t.Fatal(err)
			}
			if ok == c.noText {
				t.Fatalf("ok = %v", ok)
			}
			if got != c.want {
				t.Errorf("got %q want %q", got, c.want)
			}
		})
	}
}

func TestStringifyCircular(t *testing.T) {
	x := value.NewObject()
	x.Set("self", x)
	_, _, err := Stringify(x, nil, nil)
	if !errors.Is(err, value.ErrType) || !errors.Is(err, encode.ErrCircular) {
		t.Errorf("got %v", err)
	}
}

func TestSpaceClamp(t *testing.T) {
	v := value.NewArray(value.NewObject().Set("k", value.NewArray(value.Null)))
	a, _, err := Stringify(v, nil, value.Number(15))
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := Stringify(v, nil, value.Number(10))
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("%q != %q", a, b)
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`null`,
		`[1,2.5,-3e-7,"x",true,false,null]`,
		`{"a":{"b":[{"c":"d"}],"e":{}},"f":[],"g":"\u0001\n\"\\"}`,
		`{"2":1,"1":2,"z":{"y":[[[]]]}}`,
		`"\ud800 lone"`,
	}
	for _, d := range docs {
		t.Run(d, func(t *testing.T) {
			v, err := Parse(d, nil)
			if err != nil {
				t.Fatal(err)
			}
			s, ok, err := Stringify(v, nil, nil)
			if err != nil || !ok {
				t.Fatalf("stringify: %v %v", ok, err)
			}
			if !strings.HasPrefix(d, `"`) && !jsonpatch.Equal([]byte(d), []byte(s)) {
				t.Errorf("not equal:\n%s\n%s", d, s)
			}
			back, err := Parse(s, nil)
			if err != nil {
				t.Fatal(err)
			}
			if !value.Equal(v, back) {
				t.Errorf("parse(stringify(x)) != x for %s", s)
			}
			pretty, _, err := Stringify(v, nil, value.String("\t"))
			if err != nil {
				t.Fatal(err)
			}
			again, err := Parse(pretty, nil)
			if err != nil {
				t.Fatal(err)
			}
			if !value.Equal(v, again) {
				t.Errorf("pretty round trip differs: %s", pretty)
			}
		})
	}
}

func TestParseReviver(t *testing.T) {
	rev := value.NewFunc("rev", func(this value.Value, args []value.Value) (value.Value, error) {
		if value.Arg(args, 0) == value.String("secret") {
			return value.Undefined, nil
		}
		return value.Arg(args, 1), nil
	})
	v, err := ParseReader(strings.NewReader(`{"user":"a","secret":"b"}`), rev)
	if err != nil {
		t.Fatal(err)
	}
	s, _, err := Stringify(v, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s != `{"user":"a"}` {
		t.Errorf("got %s", s)
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse(`{"a":}`, nil)
	if !errors.Is(err, value.ErrSyntax) {
		t.Errorf("got %v", err)
	}
}
