package encode

import (
	"log/slog"

	"github.com/signadot/ecmajson/value"
)

const (
	DefaultMaxDepth  = 10000
	DefaultMaxLength = 1<<31 - 2
)

type EncodeOption func(*EncState)

// Replacer sets the replacer argument: a function transforms every
// member, an array selects member names, anything else is ignored.
func Replacer(r value.Value) EncodeOption {
	return func(es *EncState) { es.rawReplacer = r }
}

// Space sets the indentation argument: a number of spaces (clamped to
// [0,10]) or a string (first 10 code units).
func Space(s value.Value) EncodeOption {
	return func(es *EncState) { es.rawSpace = s }
}

// Indent is Space(value.Number(n)).
func Indent(n int) EncodeOption {
	return Space(value.Number(n))
}

func MaxDepth(n int) EncodeOption {
	return func(es *EncState) {
		if n > 0 {
			es.maxDepth = n
		}
	}
}

// MaxLength bounds the output size in bytes.
func MaxLength(n int) EncodeOption {
	return func(es *EncState) {
		if n > 0 {
			es.out.max = n
		}
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}

// Logger receives a debug record for each aborted call.
func Logger(l *slog.Logger) EncodeOption {
	return func(es *EncState) { es.logger = l }
}
