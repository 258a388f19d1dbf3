package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Stringify bool
	Parse     bool
	Revive    bool
	Expr      bool
	Patch     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Stringify = boolEnv("EJSON_DEBUG_STRINGIFY")
	d.Parse = boolEnv("EJSON_DEBUG_PARSE")
	d.Revive = boolEnv("EJSON_DEBUG_REVIVE")
	d.Expr = boolEnv("EJSON_DEBUG_EXPR")
	d.Patch = boolEnv("EJSON_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Stringify() bool {
	return d.Stringify
}
func Parse() bool {
	return d.Parse
}
func Revive() bool {
	return d.Revive
}
func Expr() bool {
	return d.Expr
}
func Patch() bool {
	return d.Patch
}
