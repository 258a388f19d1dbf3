package token

import "fmt"

type TokenType int

const (
	TLCurl TokenType = iota
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TString
	TNumber
	TTrue
	TFalse
	TNull
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TComma:   "TComma",
		TString:  "TString",
		TNumber:  "TNumber",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}
