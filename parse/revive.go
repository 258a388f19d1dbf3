package parse

import (
	"fmt"

	"github.com/signadot/ecmajson/debug"
	"github.com/signadot/ecmajson/value"
)

func revive(v value.Value, opts *parseOpts) (value.Value, error) {
	root := value.NewObject().Set("", v)
	r := &reviver{fn: opts.reviver, maxDepth: opts.maxDepth}
	return r.walk(root, "", 0)
}

type reviver struct {
	fn       value.Value
	maxDepth int
}

// walk revives holder[name]: the children of the current value first, then
// the value itself.
func (r *reviver) walk(holder value.Obj, name string, depth int) (value.Value, error) {
	if depth > r.maxDepth {
		return nil, ErrTooDeep
	}
	val, err := value.Get(holder, name)
	if err != nil {
		return nil, err
	}
	if o, ok := val.(value.Obj); ok {
		if err := r.members(o, depth); err != nil {
			return nil, err
		}
	}
	if debug.Revive() {
		debug.Logf("revive %q\n", name)
	}
	return value.Call(r.fn, holder, value.String(name), val)
}

func (r *reviver) members(o value.Obj, depth int) error {
	if value.IsArray(o) {
		n, err := o.(value.ArrayLike).Length()
		if err != nil {
			return err
		}
		for i := range n {
			if err := r.member(o, value.IndexKey(i), depth); err != nil {
				return err
			}
		}
		return nil
	}
	keys, err := value.OwnEnumerableKeys(o)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := r.member(o, k, depth); err != nil {
			return err
		}
	}
	return nil
}

func (r *reviver) member(o value.Obj, name string, depth int) error {
	nv, err := r.walk(o, name, depth+1)
	if err != nil {
		return err
	}
	if value.IsUndefined(nv) {
		deleteMember(o, name)
		return nil
	}
	return setMember(o, name, nv)
}

func deleteMember(o value.Obj, name string) {
	switch x := o.(type) {
	case *value.Object:
		x.Delete(name)
	case *value.Array:
		x.Delete(name)
	}
}

func setMember(o value.Obj, name string, v value.Value) error {
	switch x := o.(type) {
	case *value.Object:
		x.Set(name, v)
	case *value.Array:
		x.Set(name, v)
	default:
		return fmt.Errorf("%w: cannot define %q on %s", value.ErrType, name, o.Type())
	}
	return nil
}
