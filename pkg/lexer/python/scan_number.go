package python

import (
	"github.com/ezerfernandes/codelexer/pkg/lexer"
)

// scanNumber accepts 0b/0o/0x integers, decimal integers, floats with an
// optional exponent and the imaginary suffix j. Underscores are allowed
// between digits; their placement is not validated.
func (lx *scanner) scanNumber(start mark) error {
	if lx.cur.peek() == '0' {
		var digit func(byte) bool

		switch lx.cur.peekAt(1) | 0x20 {
		case 'x':
			digit = isHex
		case 'o':
			digit = isOct
		case 'b':
			digit = isBin
		}

		if digit != nil {
			lx.cur.bump()
			lx.cur.bump()

			n := lx.digits(digit)
			if n == 0 {
				return lexer.Errorf(Lang, int(start), lexer.ErrUnexpectedChar, "missing digits after base prefix")
			}

			lx.emit(start, lexer.Ordinary)

			return nil
		}
	}

	lx.digits(isDec)

	if lx.cur.peek() == '.' {
		lx.cur.bump()
		lx.digits(isDec)
	}

	if lx.cur.peek()|0x20 == 'e' {
		m := lx.cur.mark()
		lx.cur.bump()

		if b := lx.cur.peek(); b == '+' || b == '-' {
			lx.cur.bump()
		}

		if lx.digits(isDec) == 0 {
			// "1e" is the number 1 followed by the name e.
			lx.cur.reset(m)
		}
	}

	if lx.cur.peek()|0x20 == 'j' {
		lx.cur.bump()
	}

	lx.emit(start, lexer.Ordinary)

	return nil
}

// digits consumes digits accepted by digit plus underscores and returns how
// many digits it saw.
func (lx *scanner) digits(digit func(byte) bool) int {
	n := 0

	for !lx.cur.eof() {
		b := lx.cur.peek()
		if b == '_' && digit(lx.cur.peekAt(1)) {
			lx.cur.bump()

			continue
		}

		if !digit(b) {
			break
		}

		lx.cur.bump()
		n++
	}

	return n
}
