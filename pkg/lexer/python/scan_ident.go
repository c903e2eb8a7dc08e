package python

import (
	"github.com/ezerfernandes/codelexer/pkg/lexer"
)

// scanIdentOrString scans a name. A name that is a valid string prefix and is
// directly followed by a quote starts a string literal instead.
func (lx *scanner) scanIdentOrString(start mark) error {
	for !lx.cur.eof() {
		b := lx.cur.peek()
		if b < 0x80 {
			if !isIdentContinueByte(b) {
				break
			}

			lx.cur.bump()

			continue
		}

		r, size := lx.cur.peekRune()

		first := lx.cur.off == int(start)
		if (first && !isIdentStartRune(r)) || (!first && !isIdentContinueRune(r)) {
			break
		}

		lx.cur.off += size
	}

	if lx.cur.off == int(start) {
		return lexer.Errorf(Lang, int(start), lexer.ErrUnexpectedChar, "%q", lx.cur.src[lx.cur.off:lx.cur.off+1])
	}

	if q := lx.cur.peek(); (q == '"' || q == '\'') && isStringPrefix(lx.cur.src[start:lx.cur.off]) {
		return lx.scanString(start)
	}

	lx.emit(start, lexer.Ordinary)

	return nil
}
