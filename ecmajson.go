// Package ecmajson implements the ECMAScript JSON object: Stringify and
// Parse over the host value model in package value.
//
// Stringify and Parse take their optional arguments as values, the way a
// script engine receives them. Callers that prefer options can use the
// encode and parse packages directly.
package ecmajson

import (
	"io"

	"github.com/signadot/ecmajson/encode"
	"github.com/signadot/ecmajson/parse"
	"github.com/signadot/ecmajson/value"
)

// Stringify serializes v. replacer and space may be nil. The boolean
// result is false when there is no text, as for undefined; a nil v is a
// missing argument.
func Stringify(v, replacer, space value.Value) (string, bool, error) {
	return encode.Stringify(v, encode.Replacer(replacer), encode.Space(space))
}

// Parse parses text, which holds the generalized UTF-8 form of the source
// string, and applies reviver when it is callable.
func Parse(text string, reviver value.Value) (value.Value, error) {
	return parse.ParseString(text, parse.Reviver(reviver))
}

// ParseReader parses all of r.
func ParseReader(r io.Reader, reviver value.Value) (value.Value, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, parse.Reviver(reviver))
}
