package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/ecmajson/value"
)

var (
	errInternal = errors.New("internal parse error")
	ErrTooDeep  = fmt.Errorf("%w: nesting too deep", value.ErrStackOverflow)
)
