// Package load reads JSON and YAML documents into value graphs.
//
// JSON goes through package parse, so reviver and depth options apply.
// YAML is decoded with github.com/goccy/go-yaml keeping mapping order;
// scalars that have no JSON counterpart (timestamps, for example) become
// strings.
package load
