package encode

import (
	"io"
	"log/slog"

	"github.com/signadot/ecmajson/debug"
	"github.com/signadot/ecmajson/value"
)

// EncState is the state of one Stringify call. It is not reused.
type EncState struct {
	rawReplacer value.Value
	rawSpace    value.Value

	replacer *replacer
	gap      string
	maxDepth int
	cycle    cycleGuard
	out      assembler
	logger   *slog.Logger

	Color func(value.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		maxDepth: DefaultMaxDepth,
		out:      assembler{max: DefaultMaxLength},
	}
	for _, opt := range opts {
		opt(es)
	}
	es.cycle.max = es.maxDepth
	return es
}

// Stringify serializes v as JSON text. The boolean result is false when v
// has no JSON form (undefined, a symbol or a function, possibly after
// toJSON and the replacer are applied); a nil v stands for a missing
// argument and has no JSON form either.
func Stringify(v value.Value, opts ...EncodeOption) (string, bool, error) {
	if v == nil {
		return "", false, nil
	}
	es := newEncState(opts)
	ok, err := es.run(v)
	if err != nil {
		if es.logger != nil {
			es.logger.Debug("stringify aborted", "error", err, "depth", es.cycle.depth(), "size", es.out.mark())
		}
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	return es.out.String(), true, nil
}

// Encode writes the JSON text of v to w. It returns ErrNoText when v has
// no JSON form.
func Encode(v value.Value, w io.Writer, opts ...EncodeOption) error {
	s, ok, err := Stringify(v, opts...)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNoText
	}
	_, err = io.WriteString(w, s)
	return err
}

func (es *EncState) run(v value.Value) (bool, error) {
	var err error
	es.replacer, err = resolveReplacer(es.rawReplacer)
	if err != nil {
		return false, err
	}
	es.gap, err = resolveGap(es.rawSpace)
	if err != nil {
		return false, err
	}
	if debug.Stringify() {
		debug.Logf("stringify gap=%q replacer=%v\n", es.gap, es.replacer != nil)
	}
	holder := value.NewObject().Set("", v)
	return es.str("", v, holder)
}
