package parse

import "github.com/signadot/ecmajson/value"

const DefaultMaxDepth = 10000

type parseOpts struct {
	reviver  value.Value
	maxDepth int
}

type ParseOption func(*parseOpts)

// Reviver installs a reviver. Values that are not callable are ignored.
func Reviver(r value.Value) ParseOption {
	return func(o *parseOpts) { o.reviver = r }
}

// MaxDepth bounds the nesting of arrays and objects, both while parsing
// and while reviving. n <= 0 restores the default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}
