// Package exprfn builds replacer and reviver functions from
// github.com/expr-lang/expr expressions, for use from the command line:
//
//	ejson stringify -replacer 'typeof(value) == "number" ? value * 2 : value'
//	ejson parse -reviver 'key == "password" ? omit : value'
//
// Values reach the expression as plain Go data (maps, slices, float64,
// string, bool, nil). Returning value itself keeps the original member
// order; any other result is converted back with value.FromAny.
package exprfn
