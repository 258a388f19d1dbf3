package value

import "errors"

// Error kinds. Errors raised by this module wrap exactly one of these so
// callers can classify them with errors.Is.
var (
	ErrSyntax        = errors.New("SyntaxError")
	ErrType          = errors.New("TypeError")
	ErrRange         = errors.New("RangeError")
	ErrInternal      = errors.New("InternalError")
	ErrStackOverflow = errors.New("out of stack space")
)
