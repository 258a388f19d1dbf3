package parse

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/ecmajson/token"
	"github.com/signadot/ecmajson/value"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want any
	}{
		{`null`, nil},
		{` true `, true},
		{"\n\tfalse\r\n", false},
		{`0`, 0.0},
		{`-0.5e1`, -5.0},
		{`"abc"`, "abc"},
		{`[]`, []any{}},
		{`{}`, map[string]any{}},
		{`[1, "two", [null]]`, []any{1.0, "two", []any{nil}}},
		{`{"a": {"b": [true]}, "c": 1}`, map[string]any{"a": map[string]any{"b": []any{true}}, "c": 1.0}},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			v, err := Parse([]byte(c.in))
			if err != nil {
				t.Fatal(err)
			}
			got, err := value.ToAny(v)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	obj := v.(*value.Object)
	if diff := cmp.Diff([]string{"a", "b"}, obj.OwnKeys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	a, _ := value.Get(obj, "a")
	if a != value.Number(3) {
		t.Errorf("a = %v, want 3", a)
	}
}

func TestParseNumbers(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1e400", math.Inf(1)},
		{"-1e400", math.Inf(-1)},
		{"1e-400", 0},
		{"123456789012345678901234567890", 1.2345678901234568e29},
	}
	for _, c := range cases {
		v, err := Parse([]byte(c.in))
		if err != nil {
			t.Errorf("%s: %v", c.in, err)
			continue
		}
		if float64(v.(value.Number)) != c.want {
			t.Errorf("%s: got %v want %v", c.in, v, c.want)
		}
	}
	v, err := Parse([]byte("-0"))
	if err != nil {
		t.Fatal(err)
	}
	if !math.Signbit(float64(v.(value.Number))) {
		t.Errorf("-0 lost its sign")
	}
}

func TestParseLoneSurrogate(t *testing.T) {
	v, err := Parse([]byte(`"\ud800"`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint16{0xd800}, v.(value.String).UTF16()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		``,
		`[1,]`,
		`{"a":1,}`,
		`{"a" 1}`,
		`{a: 1}`,
		`[1 2]`,
		`[1`,
		`{"a":`,
		`1 2`,
		`]`,
		`{"a":1}}`,
		`undefined`,
		`NaN`,
		`'single'`,
		`[01]`,
		`"tab	inside"`,
	}
	for _, in := range cases {
		_, err := Parse([]byte(in))
		if err == nil {
			t.Errorf("%q: expected error", in)
			continue
		}
		if !errors.Is(err, value.ErrSyntax) {
			t.Errorf("%q: %v is not a syntax error", in, err)
		}
		var te *token.TokenizeErr
		if !errors.As(err, &te) {
			t.Errorf("%q: %v carries no position", in, err)
		}
	}
}

func TestParseMaxDepth(t *testing.T) {
	deep := strings.Repeat("[", 20) + strings.Repeat("]", 20)
	if _, err := Parse([]byte(deep), MaxDepth(20)); err != nil {
		t.Errorf("depth 20: %v", err)
	}
	_, err := Parse([]byte(deep), MaxDepth(19))
	if !errors.Is(err, ErrTooDeep) || !errors.Is(err, value.ErrStackOverflow) {
		t.Errorf("depth 19: got %v", err)
	}
}
