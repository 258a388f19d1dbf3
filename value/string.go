package value

import (
	"unicode/utf16"
	"unicode/utf8"
)

// FromUTF16 builds a String from code units. Surrogate pairs are combined
// and unpaired surrogates are kept.
func FromUTF16(u []uint16) String {
	b := make([]byte, 0, len(u))
	for i := 0; i < len(u); i++ {
		c := rune(u[i])
		if !utf16.IsSurrogate(c) {
			b = utf8.AppendRune(b, c)
			continue
		}
		if c < 0xdc00 && i+1 < len(u) {
			if c2 := rune(u[i+1]); c2 >= 0xdc00 && c2 <= 0xdfff {
				b = utf8.AppendRune(b, utf16.DecodeRune(c, c2))
				i++
				continue
			}
		}
		b = appendSurrogate(b, c)
	}
	return String(b)
}

func appendSurrogate(b []byte, c rune) []byte {
	return append(b, 0xe0|byte(c>>12), 0x80|byte(c>>6)&0x3f, 0x80|byte(c)&0x3f)
}

// decodeUnit decodes the code point or lone surrogate at the start of s.
// Bytes that are not part of any encoding decode as U+FFFD.
func decodeUnit(s string) (rune, int) {
	if len(s) >= 3 && s[0] == 0xed && s[1] >= 0xa0 && s[1] <= 0xbf && s[2]&0xc0 == 0x80 {
		return rune(s[0]&0x0f)<<12 | rune(s[1]&0x3f)<<6 | rune(s[2]&0x3f), 3
	}
	return utf8.DecodeRuneInString(s)
}

// UTF16 returns the code units of s.
func (s String) UTF16() []uint16 {
	res := make([]uint16, 0, len(s))
	str := string(s)
	for len(str) > 0 {
		r, sz := decodeUnit(str)
		str = str[sz:]
		if r < 0x10000 {
			res = append(res, uint16(r))
			continue
		}
		r1, r2 := utf16.EncodeRune(r)
		res = append(res, uint16(r1), uint16(r2))
	}
	return res
}

// Len returns the number of code units in s.
func (s String) Len() int {
	n := 0
	str := string(s)
	for len(str) > 0 {
		r, sz := decodeUnit(str)
		str = str[sz:]
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// Prefix returns the first n code units of s.
func (s String) Prefix(n int) String {
	if n <= 0 {
		return ""
	}
	u := s.UTF16()
	if n >= len(u) {
		return s
	}
	return FromUTF16(u[:n])
}
