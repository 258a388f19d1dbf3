package encode

import "github.com/signadot/ecmajson/value"

// MustString is Stringify for values known to serialize. It panics on
// error and returns "" when v has no JSON form.
func MustString(v value.Value, opts ...EncodeOption) string {
	s, _, err := Stringify(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
