package value

import (
	"fmt"
	"maps"
	"slices"
)

// FromAny converts Go data (as produced by encoding/json or expression
// evaluators) into a value graph. Map keys are sorted since Go maps carry
// no order.
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null, nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Number(x), nil
	case int8:
		return Number(x), nil
	case int16:
		return Number(x), nil
	case int32:
		return Number(x), nil
	case int64:
		return Number(x), nil
	case uint:
		return Number(x), nil
	case uint8:
		return Number(x), nil
	case uint16:
		return Number(x), nil
	case uint32:
		return Number(x), nil
	case uint64:
		return Number(x), nil
	case float32:
		return Number(x), nil
	case float64:
		return Number(x), nil
	case []any:
		res := &Array{Values: make([]Value, len(x))}
		for i, elt := range x {
			ev, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res.Values[i] = ev
		}
		return res, nil
	case map[string]any:
		res := &Object{}
		for _, k := range slices.Sorted(maps.Keys(x)) {
			ev, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			res.Set(k, ev)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: cannot convert %T to a value", ErrType, v)
	}
}

// ToAny converts a value graph into Go data. Undefined, functions and
// symbols become nil; boxes are unwrapped; objects contribute their own
// enumerable properties, invoking getters.
func ToAny(v Value) (any, error) {
	if IsArray(v) {
		return arrayToAny(v.(ArrayLike))
	}
	switch x := v.(type) {
	case nil:
		return nil, nil
	case Bool:
		return bool(x), nil
	case Number:
		return float64(x), nil
	case String:
		return string(x), nil
	case Unwrapper:
		p, err := x.Unwrap()
		if err != nil {
			return nil, err
		}
		return ToAny(p)
	case Callable:
		return nil, nil
	case Obj:
		keys, err := OwnEnumerableKeys(x)
		if err != nil {
			return nil, err
		}
		res := make(map[string]any, len(keys))
		for _, k := range keys {
			elt, err := Get(x, k)
			if err != nil {
				return nil, err
			}
			a, err := ToAny(elt)
			if err != nil {
				return nil, err
			}
			res[k] = a
		}
		return res, nil
	}
	return nil, nil
}

func arrayToAny(a ArrayLike) (any, error) {
	n, err := a.Length()
	if err != nil {
		return nil, err
	}
	res := make([]any, 0, n)
	for i := range n {
		elt, err := a.Index(i)
		if err != nil {
			return nil, err
		}
		x, err := ToAny(elt)
		if err != nil {
			return nil, err
		}
		res = append(res, x)
	}
	return res, nil
}
