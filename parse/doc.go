// Package parse provides JSON parsing into value graphs.
//
// Parse accepts exactly the JSON grammar: one value, surrounded by optional
// whitespace. Objects become *value.Object (a duplicated member name keeps
// its first position and its last value), arrays become *value.Array,
// numbers are IEEE doubles (out of range literals become infinities) and
// strings keep unpaired surrogates from \u escapes.
//
// With a Reviver option the result is passed through the reviver
// post-order, starting from a holder object {"": result}. For each member
// the reviver is called as reviver.call(holder, key, value); an undefined
// result deletes the member, anything else replaces it.
//
// All grammar errors wrap value.ErrSyntax and carry a token.Pos.
package parse
