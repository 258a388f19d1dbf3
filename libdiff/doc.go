// Package libdiff computes line diffs of JSON text, as shown by
// "ejson fmt -d".
package libdiff
