package exprfn

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/ecmajson/debug"
	"github.com/signadot/ecmajson/value"
)

var ErrExpr = errors.New("expr")

type omitted struct{}

// Omit is the value of the "omit" variable. An expression evaluating to it
// yields undefined, which drops the member.
var Omit = &omitted{}

// Program is a compiled replacer or reviver expression. It is evaluated
// with the variables
//
//	key    the member name ("" at the root)
//	value  the member value as plain Go data
//	omit   Omit
type Program struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Program, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExpr, err)
	}
	return &Program{src: src, prg: prg}, nil
}

func (p *Program) String() string { return p.src }

// Eval evaluates p for the member key with value v.
func (p *Program) Eval(key string, v value.Value) (value.Value, error) {
	in, err := value.ToAny(v)
	if err != nil {
		return nil, err
	}
	env := map[string]any{
		"key":   key,
		"value": in,
		"omit":  Omit,
	}
	res, err := expr.Run(p.prg, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrExpr, p.src, err)
	}
	if debug.Expr() {
		debug.Logf("expr %q key=%q -> %v\n", p.src, key, res)
	}
	if res == Omit {
		return value.Undefined, nil
	}
	if sameComposite(res, in) {
		return v, nil
	}
	return value.FromAny(res)
}

// Callable wraps p as a function called as fn(key, value) with any
// receiver, the shape of both replacers and revivers.
func (p *Program) Callable() *value.Func {
	return value.NewFunc(p.src, func(_ value.Value, args []value.Value) (value.Value, error) {
		k, err := value.ToString(value.Arg(args, 0))
		if err != nil {
			return nil, err
		}
		return p.Eval(string(k), value.Arg(args, 1))
	})
}

// sameComposite reports whether res is the very map or slice passed in, so
// the original value, with its member order, can be returned.
func sameComposite(res, in any) bool {
	rv, iv := reflect.ValueOf(res), reflect.ValueOf(in)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice:
		if iv.Kind() != rv.Kind() || rv.Len() != iv.Len() {
			return false
		}
		return rv.Pointer() == iv.Pointer()
	}
	return false
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("typeof", func(params ...any) (any, error) {
			return typeOf(params[0]), nil
		},
			new(func(any) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

func typeOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
