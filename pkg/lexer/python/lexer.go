// Package python is the reference lexer adapter. It tokenizes Python source
// the way the CPython tokenizer draws token boundaries and reports every
// physical line break as a lexer.LineBreak span.
package python

import (
	"errors"

	"github.com/ezerfernandes/codelexer/pkg/lexer"
)

// Lang names the language in errors.
const Lang = "python"

const tabSize = 8

// Adapter implements lexer.Adapter for Python.
type Adapter struct{}

// New returns the Python adapter.
func New() Adapter { return Adapter{} }

// Lex tokenizes code, fuses line breaks onto the preceding token and shifts
// every span by offset.
func (Adapter) Lex(code string, offset int) ([]lexer.Span, error) {
	lx := &scanner{cur: cursor{src: code}, indents: []int{0}, lineStart: true}

	if err := lx.run(); err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			lexErr.Offset += offset
		}

		return nil, err
	}

	spans := lexer.FuseLineBreaks(lx.spans)
	for i := range spans {
		spans[i].Start += offset
		spans[i].End += offset
	}

	return spans, nil
}

type scanner struct {
	cur       cursor
	spans     []lexer.Span
	indents   []int
	depth     int  // open brackets; line breaks inside are not logical
	lineStart bool // at the start of a logical line
}

func (lx *scanner) run() error {
	for {
		if lx.lineStart && lx.depth == 0 {
			if err := lx.indentation(); err != nil {
				return err
			}
		}

		if lx.cur.eof() {
			break
		}

		if err := lx.next(); err != nil {
			return err
		}
	}

	if lx.depth > 0 {
		return lexer.Errorf(Lang, lx.cur.off, lexer.ErrUnexpectedEOF, "%d unclosed bracket(s)", lx.depth)
	}

	return nil
}

// next scans one token, blank run or line break.
func (lx *scanner) next() error {
	start := lx.cur.mark()
	ch := lx.cur.peek()

	switch {
	case ch == ' ' || ch == '\t' || ch == '\f':
		lx.cur.bump()

		return nil

	case ch == '\n' || ch == '\r':
		lx.scanLineBreak()

		return nil

	case ch == '\\':
		return lx.scanContinuation()

	case ch == '#':
		for !lx.cur.eof() && lx.cur.peek() != '\n' && lx.cur.peek() != '\r' {
			lx.cur.bump()
		}

		lx.emit(start, lexer.Ordinary)

		return nil

	case ch == '"' || ch == '\'':
		return lx.scanString(start)

	case isDec(ch) || (ch == '.' && isDec(lx.cur.peekAt(1))):
		return lx.scanNumber(start)

	case isIdentStartByte(ch) || ch >= 0x80:
		return lx.scanIdentOrString(start)

	default:
		return lx.scanOperator(start)
	}
}

func (lx *scanner) emit(start mark, kind lexer.Kind) {
	lx.spans = append(lx.spans, lexer.Span{Start: int(start), End: lx.cur.off, Kind: kind})
}

// scanLineBreak consumes "\n", "\r\n" or "\r".
func (lx *scanner) scanLineBreak() {
	start := lx.cur.mark()
	if lx.cur.bump() == '\r' {
		lx.cur.eat('\n')
	}

	lx.emit(start, lexer.LineBreak)

	if lx.depth == 0 {
		lx.lineStart = true
	}
}

// scanContinuation handles a backslash that joins two physical lines. The
// joined break is blank, not a line break token.
func (lx *scanner) scanContinuation() error {
	at := lx.cur.off
	lx.cur.bump()

	switch {
	case lx.cur.eat('\n'):
	case lx.cur.eat('\r'):
		lx.cur.eat('\n')
	case lx.cur.eof():
		return lexer.Errorf(Lang, at, lexer.ErrUnexpectedEOF, "after line continuation")
	default:
		return lexer.Errorf(Lang, at, lexer.ErrUnexpectedChar, "after line continuation character")
	}

	return nil
}

// indentation measures the leading blanks of a logical line and checks them
// against the indentation stack. Blank and comment-only lines are ignored.
func (lx *scanner) indentation() error {
	start := lx.cur.mark()
	col := 0

loop:
	for {
		switch lx.cur.peek() {
		case ' ':
			col++
		case '\t':
			col = (col/tabSize + 1) * tabSize
		case '\f':
			col = 0
		default:
			break loop
		}

		lx.cur.bump()
	}

	if lx.cur.eof() {
		return nil
	}

	switch lx.cur.peek() {
	case '\n', '\r', '#':
		return nil
	}

	lx.lineStart = false

	top := lx.indents[len(lx.indents)-1]

	switch {
	case col > top:
		lx.indents = append(lx.indents, col)
	case col < top:
		for len(lx.indents) > 1 && lx.indents[len(lx.indents)-1] > col {
			lx.indents = lx.indents[:len(lx.indents)-1]
		}

		if lx.indents[len(lx.indents)-1] != col {
			return lexer.Errorf(Lang, int(start), lexer.ErrDedent, "")
		}
	}

	return nil
}
