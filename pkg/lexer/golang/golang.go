// Package golang lexes Go code with the standard library scanner.
package golang

import (
	"fmt"
	"go/scanner"
	"go/token"
	"strings"

	"github.com/ezerfernandes/codelexer/pkg/lexer"
)

// Lang names the language in errors.
const Lang = "go"

// Adapter implements lexer.Adapter for Go.
type Adapter struct{}

// New returns the Go adapter.
func New() Adapter { return Adapter{} }

// Lex scans code including comments. Automatically inserted semicolons carry
// no bytes of their own and are skipped; every newline outside a token is
// reported as a line break instead.
func (Adapter) Lex(code string, offset int) ([]lexer.Span, error) {
	src := []byte(code)
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var errs scanner.ErrorList

	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) { errs.Add(pos, msg) }, scanner.ScanComments)

	var spans []lexer.Span

	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}

		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}

		start := file.Offset(pos)
		spans = append(spans, lexer.Span{Start: start, End: tokenEnd(code, start, tok, lit), Kind: lexer.Ordinary})
	}

	if errs.Len() > 0 {
		errs.Sort()
		first := errs[0]

		return nil, &lexer.Error{Lang: Lang, Offset: offset + first.Pos.Offset, Err: fmt.Errorf("%w: %s", lexer.ErrSyntax, first.Msg)}
	}

	spans = lexer.FuseLineBreaks(lexer.InsertLineBreaks(code, spans))
	for i := range spans {
		spans[i].Start += offset
		spans[i].End += offset
	}

	return spans, nil
}

// tokenEnd finds where a token ends in code. Comment and raw string literals
// have carriage returns stripped by the scanner, so their end is searched for
// instead of derived from the literal's length.
func tokenEnd(code string, start int, tok token.Token, lit string) int {
	rest := code[start:]

	switch {
	case tok == token.COMMENT && strings.HasPrefix(rest, "//"):
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			return start + i
		}

		return len(code)
	case tok == token.COMMENT:
		if i := strings.Index(rest[2:], "*/"); i >= 0 {
			return start + 2 + i + 2
		}

		return len(code)
	case tok == token.STRING && strings.HasPrefix(rest, "`"):
		if i := strings.IndexByte(rest[1:], '`'); i >= 0 {
			return start + 1 + i + 1
		}

		return len(code)
	case lit != "":
		return start + len(lit)
	default:
		return start + len(tok.String())
	}
}
