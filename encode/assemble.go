package encode

import "github.com/signadot/ecmajson/token"

// assembler accumulates output. Every write is checked against max so an
// oversized result fails before it is built.
type assembler struct {
	buf []byte
	max int
}

func (a *assembler) mark() int { return len(a.buf) }

// truncate drops everything written after m.
func (a *assembler) truncate(m int) { a.buf = a.buf[:m] }

func (a *assembler) room(n int) error {
	if n > a.max-len(a.buf) {
		return ErrTooLong
	}
	return nil
}

// grow reserves space for about n more bytes.
func (a *assembler) grow(n int) {
	n = min(n, a.max-len(a.buf))
	if n <= cap(a.buf)-len(a.buf) {
		return
	}
	b := make([]byte, len(a.buf), len(a.buf)+n)
	copy(b, a.buf)
	a.buf = b
}

func (a *assembler) writeByte(c byte) error {
	if err := a.room(1); err != nil {
		return err
	}
	a.buf = append(a.buf, c)
	return nil
}

func (a *assembler) writeString(s string) error {
	if err := a.room(len(s)); err != nil {
		return err
	}
	a.buf = append(a.buf, s...)
	return nil
}

func (a *assembler) writeQuoted(s string) error {
	if err := a.room(token.QuotedLen(s)); err != nil {
		return err
	}
	a.buf = token.AppendQuote(a.buf, s)
	return nil
}

// newline writes a line break followed by depth copies of gap.
func (a *assembler) newline(gap string, depth int) error {
	if err := a.room(1 + len(gap)*depth); err != nil {
		return err
	}
	a.buf = append(a.buf, '\n')
	for range depth {
		a.buf = append(a.buf, gap...)
	}
	return nil
}

func (a *assembler) String() string {
	return string(a.buf)
}

// estimate guesses the size of n members written at depth.
func estimate(n int64, gap string, depth int) int {
	per := 2
	if gap != "" {
		per += 1 + len(gap)*depth
	}
	if n > 1<<20 {
		n = 1 << 20
	}
	return int(n) * per
}
