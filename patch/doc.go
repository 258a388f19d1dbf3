// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to value graphs.
//
// Values are serialized with package encode, patched with
// github.com/evanphx/json-patch and parsed back with package parse, so the
// result is always a fresh graph of plain objects and arrays. toJSON hooks
// and getters of the input run during serialization. Strings holding
// unpaired surrogates do not survive patching.
package patch
