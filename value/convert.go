package value

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumberToString renders f the way Number.prototype.toString does with
// radix 10: shortest round-tripping digits, exponent form outside
// [1e-7, 1e21).
func NumberToString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case f == 0:
		return "0"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f < 0:
		return "-" + NumberToString(-f)
	}
	if f < 1e21 && f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	e := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(e, "e")
	digits := strings.Replace(mant, ".", "", 1)
	x, _ := strconv.Atoi(exp)
	k, n := len(digits), x+1
	switch {
	case k <= n && n <= 21:
		return digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return "0." + strings.Repeat("0", -n) + digits
	}
	sign := "+"
	if n-1 < 0 {
		sign = "-"
	}
	ex := strconv.Itoa(abs(n - 1))
	if k == 1 {
		return digits + "e" + sign + ex
	}
	return digits[:1] + "." + digits[1:] + "e" + sign + ex
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// ToString converts primitives and boxed primitives to a String.
func ToString(v Value) (String, error) {
	switch x := v.(type) {
	case nil:
		return "undefined", nil
	case String:
		return x, nil
	case Number:
		return String(NumberToString(float64(x))), nil
	case Bool:
		if x {
			return "true", nil
		}
		return "false", nil
	case Unwrapper:
		p, err := x.Unwrap()
		if err != nil {
			return "", err
		}
		return ToString(p)
	}
	switch v.Type() {
	case UndefinedType:
		return "undefined", nil
	case NullType:
		return "null", nil
	}
	return "", fmt.Errorf("%w: cannot convert %s to string", ErrType, typeName(v))
}

// ToNumber converts primitives and boxed primitives to a number.
func ToNumber(v Value) (float64, error) {
	switch x := v.(type) {
	case nil:
		return math.NaN(), nil
	case Number:
		return float64(x), nil
	case Bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case String:
		return StringToNumber(string(x)), nil
	case Unwrapper:
		p, err := x.Unwrap()
		if err != nil {
			return 0, err
		}
		return ToNumber(p)
	}
	switch v.Type() {
	case UndefinedType:
		return math.NaN(), nil
	case NullType:
		return 0, nil
	}
	return 0, fmt.Errorf("%w: cannot convert %s to number", ErrType, typeName(v))
}

// StringToNumber applies the StringNumericLiteral grammar; text that does
// not match yields NaN.
func StringToNumber(s string) float64 {
	s = strings.Trim(s, " \t\n\v\f\r\u00a0\u2028\u2029\ufeff")
	switch s {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return math.NaN()
			}
			return float64(u)
		}
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c == '.', c == 'e', c == 'E', c == '+', c == '-':
		default:
			return math.NaN()
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && f == 0 {
		return math.NaN()
	}
	return f
}

// ToIntegerOrInfinity truncates f toward zero; NaN becomes 0.
func ToIntegerOrInfinity(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return math.Trunc(f)
}

// ArrayIndex reports whether name is a canonical array index
// (0 ≤ i < 2³²−1 written without leading zeros).
func ArrayIndex(name string) (uint32, bool) {
	n := len(name)
	if n == 0 || n > 10 || (n > 1 && name[0] == '0') {
		return 0, false
	}
	var i uint64
	for j := 0; j < n; j++ {
		c := name[j]
		if c < '0' || c > '9' {
			return 0, false
		}
		i = i*10 + uint64(c-'0')
	}
	if i >= math.MaxUint32 {
		return 0, false
	}
	return uint32(i), true
}

// IndexKey is the property name of index i.
func IndexKey(i int64) string {
	return strconv.FormatInt(i, 10)
}
