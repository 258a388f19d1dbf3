package encode

import (
	"github.com/signadot/ecmajson/value"
)

// prepare applies the toJSON hook, the transform replacer and boxed
// primitive unwrapping, in that order, to holder[key] == val.
func (es *EncState) prepare(key string, val, holder value.Value) (value.Value, error) {
	if o, ok := val.(value.Obj); ok {
		hook, err := toJSONHook(o)
		if err != nil {
			return nil, err
		}
		if hook != nil {
			val, err = value.Call(hook, val, value.String(key))
			if err != nil {
				return nil, err
			}
		}
	}
	if es.replacer != nil && es.replacer.fn != nil {
		var err error
		val, err = value.Call(es.replacer.fn, holder, value.String(key), val)
		if err != nil {
			return nil, err
		}
	}
	if u, ok := val.(value.Unwrapper); ok {
		return unbox(u)
	}
	return val, nil
}

// toJSONHook finds the first callable toJSON along o's prototype chain.
// Getters run with o as receiver.
func toJSONHook(o value.Obj) (value.Value, error) {
	for q := o; q != nil; q = q.Prototype() {
		p, ok := q.OwnProperty("toJSON")
		if !ok {
			continue
		}
		fn, err := p.Get(o)
		if err != nil {
			return nil, err
		}
		if value.IsCallable(fn) {
			return fn, nil
		}
	}
	return nil, nil
}

// unbox replaces a boxed number or string by its converted primitive and
// any other box by its wrapped value.
func unbox(u value.Unwrapper) (value.Value, error) {
	prim, err := u.Unwrap()
	if err != nil {
		return nil, err
	}
	switch prim.(type) {
	case value.Number:
		f, err := value.ToNumber(u)
		if err != nil {
			return nil, err
		}
		return value.Number(f), nil
	case value.String:
		return value.ToString(u)
	}
	return prim, nil
}
