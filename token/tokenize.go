package token

import "bytes"

// Tokenize appends the tokens of the JSON text src to dst.
//
// Only the JSON grammar is recognized: whitespace is space, tab, line feed
// and carriage return; literals are true, false and null.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	posDoc := NewPosDoc(src)
	n := len(src)
	i := 0
	start := len(dst)
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\r':
			i++
			continue
		case '\n':
			posDoc.nl(i)
			i++
			continue
		}
		tok := Token{Pos: posDoc.Pos(i)}
		sz := 1
		switch c {
		case '{':
			tok.Type = TLCurl
		case '}':
			tok.Type = TRCurl
		case '[':
			tok.Type = TLSquare
		case ']':
			tok.Type = TRSquare
		case ':':
			tok.Type = TColon
		case ',':
			tok.Type = TComma
		case '"':
			m, err := quotedLen(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i+m))
			}
			tok.Type = TString
			sz = m
		case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			m, err := number(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i+m))
			}
			tok.Type = TNumber
			sz = m
		case 't':
			if !bytes.HasPrefix(src[i:], []byte("true")) {
				return nil, NewTokenizeErr(ErrLiteral, tok.Pos)
			}
			tok.Type = TTrue
			sz = 4
		case 'f':
			if !bytes.HasPrefix(src[i:], []byte("false")) {
				return nil, NewTokenizeErr(ErrLiteral, tok.Pos)
			}
			tok.Type = TFalse
			sz = 5
		case 'n':
			if !bytes.HasPrefix(src[i:], []byte("null")) {
				return nil, NewTokenizeErr(ErrLiteral, tok.Pos)
			}
			tok.Type = TNull
			sz = 4
		default:
			return nil, UnexpectedErr(describe(src[i:]), tok.Pos)
		}
		tok.Bytes = src[i : i+sz]
		dst = append(dst, tok)
		i += sz
	}
	if len(dst) == start {
		return nil, NewTokenizeErr(ErrEmptyDoc, posDoc.end())
	}
	return dst, nil
}

func describe(d []byte) string {
	c := d[0]
	if c < 0x20 || c >= 0x7f {
		return "byte " + Quote(string(d[:1]))
	}
	return "'" + string(c) + "'"
}
