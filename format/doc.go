// Package format names the document formats ejson reads: JSON, and YAML
// as an input convenience.
package format
