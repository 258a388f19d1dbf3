package token

import (
	"errors"
	"testing"

	"github.com/signadot/ecmajson/value"
)

func TestQuote(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{"", `""`},
		{"abc", `"abc"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"\x00\x01\x1f", `"\u0000\u0001\u001f"`},
		{"\x7f", "\"\x7f\""},
		{"/", `"/"`},
		{"héllo✓", `"héllo✓"`},
		{"\U0001F600", "\"\U0001F600\""},
		{"\xed\xa0\x80", "\"\xed\xa0\x80\""},
	}
	for _, c := range cases {
		got := Quote(c.in)
		if got != c.out {
			t.Errorf("Quote(%q) = %q, want %q", c.in, got, c.out)
		}
		if n := QuotedLen(c.in); n != len(got) {
			t.Errorf("QuotedLen(%q) = %d, want %d", c.in, n, len(got))
		}
	}
}

func TestUnquote(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{`""`, ""},
		{`"a\"b"`, `a"b`},
		{`"\/"`, "/"},
		{`"\u0041\u00e9"`, "Aé"},
		{`"😀"`, "\U0001F600"},
		{`"\ud83d\ude00"`, "\U0001F600"},
		{`"\ud800"`, "\xed\xa0\x80"},
		{`"\udc00x"`, "\xed\xb0\x80x"},
		{`"\ud800A"`, "\xed\xa0\x80A"},
	}
	for _, c := range cases {
		got, err := Unquote(c.in)
		if err != nil {
			t.Errorf("Unquote(%s): %v", c.in, err)
			continue
		}
		if got != c.out {
			t.Errorf("Unquote(%s) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	cases := []struct {
		in  string
		err error
	}{
		{`"abc`, ErrUnterminated},
		{`"\x"`, ErrBadEscape},
		{`"\u12"`, ErrUnterminated},
		{`"\u12zz"`, ErrBadUnicode},
		{"\"a\nb\"", ErrUnicodeControl},
		{`"a"b`, ErrUnterminated},
	}
	for _, c := range cases {
		_, err := Unquote(c.in)
		if !errors.Is(err, c.err) {
			t.Errorf("Unquote(%q): got %v, want %v", c.in, err, c.err)
		}
	}
}

func TestQuoteRoundTripLoneSurrogate(t *testing.T) {
	s := value.FromUTF16([]uint16{'a', 0xdc00, 'b'})
	q := Quote(string(s))
	got, err := Unquote(q)
	if err != nil {
		t.Fatal(err)
	}
	if got != string(s) {
		t.Errorf("got %q want %q", got, s)
	}
}
