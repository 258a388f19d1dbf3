package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) Prefix() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Line is one line of a line diff, without its trailing newline.
type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line.
func Lines(from, to string) []Line {
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(from, to)
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var res []Line
	for i := range diffs {
		diff := &diffs[i]
		op := Equal
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range splitLines(diff.Text) {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

// Changed reports whether any line differs.
func Changed(ls []Line) bool {
	for _, l := range ls {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Format renders ls with +/- prefixes. With context >= 0 only changed lines
// and that many neighbours are shown, gaps marked by "...".
func Format(ls []Line, context int) string {
	keep := make([]bool, len(ls))
	for i, l := range ls {
		if context < 0 || l.Op != Equal {
			for j := max(0, i-max(context, 0)); j <= min(len(ls)-1, i+max(context, 0)); j++ {
				keep[j] = true
			}
		}
	}
	b := &strings.Builder{}
	skipped := false
	for i, l := range ls {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			b.WriteString("...\n")
			skipped = false
		}
		b.WriteString(l.Op.Prefix())
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	if skipped {
		b.WriteString("...\n")
	}
	return b.String()
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}
