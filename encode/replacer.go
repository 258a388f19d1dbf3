package encode

import (
	"github.com/signadot/ecmajson/value"
)

// replacer is the resolved replacer argument. A nil *replacer means no
// replacer; fn is set for a transform; otherwise names is the member
// allow-list, possibly empty.
type replacer struct {
	fn    value.Value
	names []string
}

func resolveReplacer(r value.Value) (*replacer, error) {
	switch {
	case r == nil:
		return nil, nil
	case value.IsCallable(r):
		return &replacer{fn: r}, nil
	case value.IsArray(r):
		names, err := replacerNames(r.(value.ArrayLike))
		if err != nil {
			return nil, err
		}
		return &replacer{names: names}, nil
	default:
		return nil, nil
	}
}

// replacerNames collects the name-producing elements of a, in order, keeping
// the first occurrence of each name.
func replacerNames(a value.ArrayLike) ([]string, error) {
	n, err := a.Length()
	if err != nil {
		return nil, err
	}
	names := []string{}
	seen := map[string]struct{}{}
	for i := range n {
		elt, err := a.Index(i)
		if err != nil {
			return nil, err
		}
		name, ok, err := replacerName(elt)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}

func replacerName(v value.Value) (string, bool, error) {
	switch x := v.(type) {
	case value.String:
		return string(x), true, nil
	case value.Number:
		return value.NumberToString(float64(x)), true, nil
	case value.Unwrapper:
		prim, err := x.Unwrap()
		if err != nil {
			return "", false, err
		}
		switch prim.(type) {
		case value.Number, value.String:
			s, err := value.ToString(x)
			if err != nil {
				return "", false, err
			}
			return string(s), true, nil
		}
	}
	return "", false, nil
}
