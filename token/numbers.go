package token

// number returns the length of the JSON number at the start of d.
func number(d []byte) (int, error) {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return i, ErrNumber
	}
	if digits > 1 && d[i] == '0' {
		return i, ErrNumberLeadingZero
	}
	i += digits
	f, err := fract(d[i:])
	if err != nil {
		return i, err
	}
	i += f
	e, err := exp(d[i:])
	if err != nil {
		return i, err
	}
	return i + e, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func fract(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '.' {
		return 0, nil
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// . must be followed by 1 or more digits rfc 8259
		return 1, ErrNumber
	}
	return n + 1, nil
}

func exp(d []byte) (int, error) {
	if len(d) == 0 {
		return 0, nil
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0, nil
	}
	i := 1
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return i, ErrNumber
	}
	return n + i, nil
}
