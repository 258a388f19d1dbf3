package encode

import (
	"math"

	"github.com/signadot/ecmajson/value"
)

// scalar writes a primitive. It reports false when v is not a primitive
// with a JSON form.
func (es *EncState) scalar(v value.Value) (bool, error) {
	switch x := v.(type) {
	case value.Bool:
		if x {
			return true, es.literal(value.BoolType, "true")
		}
		return true, es.literal(value.BoolType, "false")
	case value.Number:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return true, es.literal(value.NullType, "null")
		}
		return true, es.literal(value.NumberType, value.NumberToString(f))
	case value.String:
		if es.Color == nil {
			return true, es.out.writeQuoted(string(x))
		}
		return true, es.out.writeString(es.Color(value.StringType, ValueColor, quote(x)))
	}
	if v.Type() == value.NullType {
		return true, es.literal(value.NullType, "null")
	}
	return false, nil
}

func (es *EncState) literal(t value.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	return es.out.writeString(s)
}

func (es *EncState) sep(t value.Type, c byte) error {
	if es.Color == nil {
		return es.out.writeByte(c)
	}
	return es.out.writeString(es.Color(t, SepColor, string(c)))
}
