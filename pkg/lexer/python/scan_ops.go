package python

import (
	"github.com/ezerfernandes/codelexer/pkg/lexer"
)

// Operators and delimiters, longest first so matching is greedy.
var operators = []string{
	"**=", "//=", ">>=", "<<=", "...",
	"**", "//", ">>", "<<", "<=", ">=", "==", "!=", "->", ":=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "@=",
	"+", "-", "*", "/", "%", "@", "&", "|", "^", "~", "<", ">",
	"(", ")", "[", "]", "{", "}", ",", ":", ";", ".", "=",
}

func (lx *scanner) scanOperator(start mark) error {
	for _, op := range operators {
		if !lx.cur.hasPrefix(op) {
			continue
		}

		lx.cur.off += len(op)

		switch op {
		case "(", "[", "{":
			lx.depth++
		case ")", "]", "}":
			if lx.depth > 0 {
				lx.depth--
			}
		}

		lx.emit(start, lexer.Ordinary)

		return nil
	}

	return lexer.Errorf(Lang, int(start), lexer.ErrUnexpectedChar, "%q", lx.cur.src[lx.cur.off:lx.cur.off+1])
}
