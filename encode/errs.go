package encode

import (
	"errors"
	"fmt"

	"github.com/signadot/ecmajson/value"
)

var (
	ErrCircular    = fmt.Errorf("%w: circular structure", value.ErrType)
	ErrTooLong     = fmt.Errorf("%w: sequence too long", value.ErrRange)
	ErrTooDeep     = fmt.Errorf("%w: nesting too deep", value.ErrStackOverflow)
	ErrUnsupported = fmt.Errorf("%w: cannot serialize", value.ErrType)

	// ErrNoText is returned by Encode when the value serializes to nothing,
	// as undefined, a symbol or a function does.
	ErrNoText = errors.New("no text")
)
