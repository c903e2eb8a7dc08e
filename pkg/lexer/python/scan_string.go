package python

import (
	"github.com/ezerfernandes/codelexer/pkg/lexer"
)

// scanString scans a string literal whose optional prefix starts at start and
// whose opening quote is under the cursor. Escapes are skipped, not decoded.
func (lx *scanner) scanString(start mark) error {
	quote := lx.cur.bump()

	triple := lx.cur.peek() == quote && lx.cur.peekAt(1) == quote
	if triple {
		lx.cur.bump()
		lx.cur.bump()
	}

	for !lx.cur.eof() {
		b := lx.cur.bump()

		switch {
		case b == '\\':
			if lx.cur.bump() == '\r' {
				lx.cur.eat('\n')
			}
		case b == quote && !triple:
			lx.emit(start, lexer.Ordinary)

			return nil
		case b == quote && lx.cur.peek() == quote && lx.cur.peekAt(1) == quote:
			lx.cur.bump()
			lx.cur.bump()
			lx.emit(start, lexer.Ordinary)

			return nil
		case (b == '\n' || b == '\r') && !triple:
			return lexer.Errorf(Lang, int(start), lexer.ErrUnterminatedString, "")
		}
	}

	if triple {
		return lexer.Errorf(Lang, int(start), lexer.ErrUnterminatedString, "triple-quoted")
	}

	return lexer.Errorf(Lang, int(start), lexer.ErrUnterminatedString, "")
}
