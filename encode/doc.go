// Package encode serializes value graphs to JSON text following the
// ECMA-262 JSON.stringify algorithm.
//
// # Usage
//
//	obj := value.NewObject().
//		Set("name", value.String("alice")).
//		Set("tags", value.NewArray(value.String("a"), value.String("b")))
//
//	s, ok, err := encode.Stringify(obj)                    // {"name":"alice","tags":["a","b"]}
//	s, ok, err = encode.Stringify(obj, encode.Indent(2))   // pretty printed
//	s, ok, err = encode.Stringify(obj, encode.Replacer(
//		value.NewArray(value.String("name"))))             // {"name":"alice"}
//
// ok is false when the value has no JSON form, which is distinct from the
// empty string.
//
// # Semantics
//
// Every value is first prepared: an object's toJSON method (found along the
// prototype chain) is called with the member key, then a replacer function
// is called with the holder as receiver, then boxed primitives are
// unwrapped. Undefined, symbols and functions are dropped from objects and
// written as null in arrays. Non-finite numbers are written as null.
//
// Objects contribute their own enumerable keys with index keys first in
// ascending order, unless a replacer array selects the names. A value that
// is reached again while it is still being written fails with ErrCircular.
//
// # Limits
//
// MaxDepth bounds nesting (ErrTooDeep) and MaxLength bounds the output in
// bytes (ErrTooLong). Any error aborts the call; no partial text is
// returned.
//
// # Colors
//
// EncodeColors with NewColors adds terminal colors to the output.
package encode
