package token

import (
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// Quote returns the JSON quoted form of v.
func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, QuotedLen(v)), v))
}

// AppendQuote appends the JSON quoted form of v to d.
//
// Escaping is byte-wise: every byte that is not '"', '\\' or a control
// byte below 0x20 is copied, so multi-byte sequences (including encoded
// unpaired surrogates) pass through unchanged.
func AppendQuote(d []byte, v string) []byte {
	d = append(d, '"')
	start := 0
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		d = append(d, v[start:i]...)
		switch c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			d = append(d, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		}
		start = i + 1
	}
	d = append(d, v[start:]...)
	return append(d, '"')
}

// QuotedLen returns len(Quote(v)) without building it.
func QuotedLen(v string) int {
	n := 2 + len(v)
	for i := 0; i < len(v); i++ {
		switch c := v[i]; c {
		case '"', '\\', '\b', '\f', '\n', '\r', '\t':
			n++
		default:
			if c < 0x20 {
				n += 5
			}
		}
	}
	return n
}

// Unquote decodes a JSON string literal, surrounding quotes included.
// \u escapes naming unpaired surrogates decode to their 3 byte generalized
// UTF-8 form; a high/low escape pair decodes to the combined code point.
func Unquote(v string) (string, error) {
	n, err := quotedLen([]byte(v))
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnterminated
	}
	return QuotedToString([]byte(v)), nil
}

// quotedLen returns the length of the string literal starting at d[0],
// validating escapes and rejecting raw control characters.
func quotedLen(d []byte) (int, error) {
	if len(d) == 0 || d[0] != '"' {
		return 0, ErrUnterminated
	}
	n := len(d)
	i := 1
	for i < n {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, nil
		case c == '\\':
			if i+1 >= n {
				return i, ErrUnterminated
			}
			switch d[i+1] {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				i += 2
			case 'u':
				if i+6 > n {
					return i, ErrUnterminated
				}
				if !allHex(d[i+2 : i+6]) {
					return i, ErrBadUnicode
				}
				i += 6
			default:
				return i, ErrBadEscape
			}
		case c < 0x20:
			return i, ErrUnicodeControl
		default:
			i++
		}
	}
	return i, ErrUnterminated
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

func hexVal(d []byte) rune {
	var r rune
	for _, c := range d {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		default:
			r |= rune(c-'A') + 10
		}
	}
	return r
}

// QuotedToString decodes a string literal already validated by the
// tokenizer.
func QuotedToString(d []byte) string {
	d = d[1 : len(d)-1]
	b := make([]byte, 0, len(d))
	for i := 0; i < len(d); {
		c := d[i]
		if c != '\\' {
			b = append(b, c)
			i++
			continue
		}
		e := d[i+1]
		i += 2
		switch e {
		case 'b':
			b = append(b, '\b')
		case 'f':
			b = append(b, '\f')
		case 'n':
			b = append(b, '\n')
		case 'r':
			b = append(b, '\r')
		case 't':
			b = append(b, '\t')
		case 'u':
			r := hexVal(d[i : i+4])
			i += 4
			if r >= 0xd800 && r < 0xdc00 && i+6 <= len(d) && d[i] == '\\' && d[i+1] == 'u' {
				lo := hexVal(d[i+2 : i+6])
				if lo >= 0xdc00 && lo < 0xe000 {
					r = 0x10000 + (r-0xd800)<<10 + (lo - 0xdc00)
					i += 6
				}
			}
			b = appendUnit(b, r)
		default:
			b = append(b, e)
		}
	}
	return string(b)
}

// appendUnit appends r, writing surrogates in generalized UTF-8.
func appendUnit(b []byte, r rune) []byte {
	if r >= 0xd800 && r < 0xe000 {
		return append(b, 0xe0|byte(r>>12), 0x80|byte(r>>6)&0x3f, 0x80|byte(r)&0x3f)
	}
	return utf8.AppendRune(b, r)
}
