package encode

import (
	"github.com/signadot/ecmajson/debug"
	"github.com/signadot/ecmajson/token"
	"github.com/signadot/ecmajson/value"
)

// str serializes val, found under key in holder. It reports
// false when the value has no JSON form and nothing was written.
func (es *EncState) str(key string, val, holder value.Value) (bool, error) {
	val, err := es.prepare(key, val, holder)
	if err != nil {
		return false, err
	}
	if value.IsUndefined(val) || value.IsCallable(val) {
		return false, nil
	}
	ok, err := es.scalar(val)
	if ok || err != nil {
		return ok, err
	}
	switch x := val.(type) {
	case *value.Symbol:
		return false, nil
	case value.ArrayLike:
		if value.IsArray(val) {
			return true, es.array(x)
		}
	}
	if o, ok := val.(value.Obj); ok {
		return true, es.object(o)
	}
	return false, ErrUnsupported
}

func (es *EncState) object(o value.Obj) error {
	release, err := es.cycle.enter(o)
	if err != nil {
		return err
	}
	defer release()
	depth := es.cycle.depth()

	var keys []string
	if es.replacer != nil && es.replacer.fn == nil {
		keys = es.replacer.names
	} else {
		keys, err = value.OwnEnumerableKeys(o)
		if err != nil {
			return err
		}
	}
	if debug.Stringify() {
		debug.Logf("stringify object depth=%d keys=%v\n", depth, keys)
	}
	start := es.out.mark()
	if err := es.sep(value.ObjectType, '{'); err != nil {
		return err
	}
	n := 0
	for _, k := range keys {
		m := es.out.mark()
		if n > 0 {
			if err := es.sep(value.ObjectType, ','); err != nil {
				return err
			}
		}
		if es.gap != "" {
			if err := es.out.newline(es.gap, depth); err != nil {
				return err
			}
		}
		if err := es.field(k); err != nil {
			return err
		}
		val, err := value.Get(o, k)
		if err != nil {
			return err
		}
		wrote, err := es.str(k, val, o)
		if err != nil {
			return err
		}
		if !wrote {
			es.out.truncate(m)
			continue
		}
		n++
	}
	if n == 0 {
		es.out.truncate(start)
		if err := es.sep(value.ObjectType, '{'); err != nil {
			return err
		}
		return es.sep(value.ObjectType, '}')
	}
	if es.gap != "" {
		if err := es.out.newline(es.gap, depth-1); err != nil {
			return err
		}
	}
	return es.sep(value.ObjectType, '}')
}

// field writes a member name and the name separator.
func (es *EncState) field(k string) error {
	if es.Color == nil {
		if err := es.out.writeQuoted(k); err != nil {
			return err
		}
	} else if err := es.out.writeString(es.Color(value.ObjectType, FieldColor, token.Quote(k))); err != nil {
		return err
	}
	if err := es.sep(value.ObjectType, ':'); err != nil {
		return err
	}
	if es.gap != "" {
		return es.out.writeByte(' ')
	}
	return nil
}

func (es *EncState) array(a value.ArrayLike) error {
	release, err := es.cycle.enter(a)
	if err != nil {
		return err
	}
	defer release()
	depth := es.cycle.depth()

	n, err := a.Length()
	if err != nil {
		return err
	}
	if n >= int64(es.out.max) {
		return ErrTooLong
	}
	if debug.Stringify() {
		debug.Logf("stringify array depth=%d length=%d\n", depth, n)
	}
	if err := es.sep(value.ArrayType, '['); err != nil {
		return err
	}
	if n <= 0 {
		return es.sep(value.ArrayType, ']')
	}
	es.out.grow(estimate(n, es.gap, depth))
	for i := range n {
		if i > 0 {
			if err := es.sep(value.ArrayType, ','); err != nil {
				return err
			}
		}
		if es.gap != "" {
			if err := es.out.newline(es.gap, depth); err != nil {
				return err
			}
		}
		val, err := a.Index(i)
		if err != nil {
			return err
		}
		wrote, err := es.str(value.IndexKey(i), val, a)
		if err != nil {
			return err
		}
		if !wrote {
			if err := es.literal(value.NullType, "null"); err != nil {
				return err
			}
		}
	}
	if es.gap != "" {
		if err := es.out.newline(es.gap, depth-1); err != nil {
			return err
		}
	}
	return es.sep(value.ArrayType, ']')
}

func quote(s value.String) string {
	return token.Quote(string(s))
}
