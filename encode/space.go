package encode

import (
	"strings"

	"github.com/signadot/ecmajson/value"
)

const maxGap = 10

// resolveGap computes the indentation unit from the space argument. The
// empty gap selects compact output.
func resolveGap(s value.Value) (string, error) {
	if u, ok := s.(value.Unwrapper); ok {
		var err error
		if s, err = unbox(u); err != nil {
			return "", err
		}
	}
	switch x := s.(type) {
	case value.Number:
		n := value.ToIntegerOrInfinity(float64(x))
		n = min(max(n, 0), maxGap)
		return strings.Repeat(" ", int(n)), nil
	case value.String:
		return string(x.Prefix(maxGap)), nil
	default:
		return "", nil
	}
}
