package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	from := "{\n  \"a\": 1,\n  \"b\": 2\n}\n"
	to := "{\n  \"a\": 1,\n  \"b\": 3\n}\n"
	got := Lines(from, to)
	want := []Line{
		{Equal, "{"},
		{Equal, `  "a": 1,`},
		{Delete, `  "b": 2`},
		{Insert, `  "b": 3`},
		{Equal, "}"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Errorf("expected a change")
	}
	if Changed(Lines(from, from)) {
		t.Errorf("identical text reported as changed")
	}
}

func TestFormat(t *testing.T) {
	ls := []Line{
		{Equal, "a"},
		{Equal, "b"},
		{Delete, "c"},
		{Insert, "C"},
		{Equal, "d"},
		{Equal, "e"},
	}
	if got := Format(ls, -1); got != " a\n b\n-c\n+C\n d\n e\n" {
		t.Errorf("full: got %q", got)
	}
	if got := Format(ls, 0); got != "...\n-c\n+C\n...\n" {
		t.Errorf("context 0: got %q", got)
	}
	if got := Format(ls, 1); got != "...\n b\n-c\n+C\n d\n...\n" {
		t.Errorf("context 1: got %q", got)
	}
}
