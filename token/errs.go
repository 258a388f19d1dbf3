package token

import (
	"errors"
	"fmt"

	"github.com/signadot/ecmajson/value"
)

var (
	ErrUnterminated      = errors.New("unterminated")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrLiteral           = errors.New("bad literal")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode")
	ErrUnicodeControl    = errors.New("unicode control")
	ErrEmptyDoc          = errors.New("empty document")
	ErrNumber            = errors.New("number")
)

// TokenizeErr locates a lexical error. It is a SyntaxError.
type TokenizeErr struct {
	Err error
	Pos Pos
}

func (e *TokenizeErr) Unwrap() []error {
	return []error{value.ErrSyntax, e.Err}
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s: %s at %s", value.ErrSyntax, e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
