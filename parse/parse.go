package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/signadot/ecmajson/debug"
	"github.com/signadot/ecmajson/token"
	"github.com/signadot/ecmajson/value"
)

func Parse(d []byte, opts ...ParseOption) (value.Value, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse: %d tokens\n", len(toks))
	}
	off := 0
	res, err := parseValue(toks, &off, 0, pOpts)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		return nil, token.UnexpectedErr(string(toks[off].Bytes), toks[off].Pos)
	}
	if pOpts.reviver == nil || !value.IsCallable(pOpts.reviver) {
		return res, nil
	}
	return revive(res, pOpts)
}

// ParseString parses s, which holds the generalized UTF-8 form of the
// source text.
func ParseString(s string, opts ...ParseOption) (value.Value, error) {
	return Parse([]byte(s), opts...)
}

func parseValue(toks []token.Token, pi *int, depth int, opts *parseOpts) (value.Value, error) {
	if *pi >= len(toks) {
		return nil, token.ExpectedErr("value", endPos(toks))
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TLCurl:
		if depth >= opts.maxDepth {
			return nil, fmt.Errorf("%w at %s", ErrTooDeep, t.Pos)
		}
		*pi++
		return parseObj(toks, pi, depth+1, opts)
	case token.TLSquare:
		if depth >= opts.maxDepth {
			return nil, fmt.Errorf("%w at %s", ErrTooDeep, t.Pos)
		}
		*pi++
		return parseArr(toks, pi, depth+1, opts)
	case token.TString:
		*pi++
		return value.String(token.QuotedToString(t.Bytes)), nil
	case token.TNumber:
		*pi++
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("%w: %w", errInternal, err)
		}
		return value.Number(f), nil
	case token.TTrue:
		*pi++
		return value.Bool(true), nil
	case token.TFalse:
		*pi++
		return value.Bool(false), nil
	case token.TNull:
		*pi++
		return value.Null, nil
	default:
		return nil, token.UnexpectedErr(string(t.Bytes), t.Pos)
	}
}

func parseObj(toks []token.Token, pi *int, depth int, opts *parseOpts) (value.Value, error) {
	obj := value.NewObject()
	if *pi < len(toks) && toks[*pi].Type == token.TRCurl {
		*pi++
		return obj, nil
	}
	for {
		if *pi >= len(toks) {
			return nil, token.ExpectedErr("member name", endPos(toks))
		}
		kt := &toks[*pi]
		if kt.Type != token.TString {
			return nil, token.ExpectedErr("member name", kt.Pos)
		}
		*pi++
		if err := expect(toks, pi, token.TColon, "':'"); err != nil {
			return nil, err
		}
		v, err := parseValue(toks, pi, depth, opts)
		if err != nil {
			return nil, err
		}
		obj.Set(token.QuotedToString(kt.Bytes), v)
		done, err := sepOrClose(toks, pi, token.TRCurl, "',' or '}'")
		if err != nil {
			return nil, err
		}
		if done {
			return obj, nil
		}
	}
}

func parseArr(toks []token.Token, pi *int, depth int, opts *parseOpts) (value.Value, error) {
	arr := value.NewArray()
	if *pi < len(toks) && toks[*pi].Type == token.TRSquare {
		*pi++
		return arr, nil
	}
	for {
		v, err := parseValue(toks, pi, depth, opts)
		if err != nil {
			return nil, err
		}
		arr.Push(v)
		done, err := sepOrClose(toks, pi, token.TRSquare, "',' or ']'")
		if err != nil {
			return nil, err
		}
		if done {
			return arr, nil
		}
	}
}

func expect(toks []token.Token, pi *int, tt token.TokenType, what string) error {
	if *pi >= len(toks) {
		return token.ExpectedErr(what, endPos(toks))
	}
	if toks[*pi].Type != tt {
		return token.ExpectedErr(what, toks[*pi].Pos)
	}
	*pi++
	return nil
}

// sepOrClose consumes a ',' or the closing token, reporting whether the
// composite is finished.
func sepOrClose(toks []token.Token, pi *int, closer token.TokenType, what string) (bool, error) {
	if *pi >= len(toks) {
		return false, token.ExpectedErr(what, endPos(toks))
	}
	switch toks[*pi].Type {
	case token.TComma:
		*pi++
		return false, nil
	case closer:
		*pi++
		return true, nil
	default:
		return false, token.ExpectedErr(what, toks[*pi].Pos)
	}
}

func endPos(toks []token.Token) *token.Pos {
	last := toks[len(toks)-1]
	return last.Pos.D.Pos(last.Pos.I + len(last.Bytes))
}
