// Package token provides JSON lexical support: tokenization of JSON text
// and the JSON string quoting rules shared by the parser and the
// serializer.
//
// # Quoting
//
// Quote and AppendQuote wrap a string in double quotes, escaping '"', '\\'
// and code units below U+0020 (using \b \f \n \r \t where defined, \u00xx
// otherwise). All other code units, unpaired surrogates included, are
// copied unchanged.
//
// # Tokenizing
//
//	toks, err := token.Tokenize(nil, []byte(`{"a": [1, true]}`))
//
// Tokenization errors are *TokenizeErr values carrying a Pos and wrapping
// value.ErrSyntax.
package token
