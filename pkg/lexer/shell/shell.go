// Package shell lexes POSIX shell and Bash code by parsing it with
// mvdan.cc/sh and reading token boundaries back from the syntax tree.
package shell

import (
	"errors"
	"sort"
	"strings"

	"fortio.org/safecast"
	"mvdan.cc/sh/v3/syntax"

	"github.com/ezerfernandes/codelexer/pkg/lexer"
)

// Lang names the language in errors.
const Lang = "shell"

// Adapter implements lexer.Adapter for shell code.
type Adapter struct {
	variant syntax.LangVariant
}

// New returns an adapter for Bash, which also accepts POSIX shell.
func New() Adapter { return Adapter{variant: syntax.LangBash} }

// NewVariant returns an adapter for the given shell dialect.
func NewVariant(variant syntax.LangVariant) Adapter { return Adapter{variant: variant} }

// Lex parses code and returns its words, operators, reserved words and
// comments as spans. Line breaks outside any token are reported as
// lexer.LineBreak and fused onto the token before them.
func (a Adapter) Lex(code string, offset int) ([]lexer.Span, error) {
	parser := syntax.NewParser(syntax.KeepComments(true), syntax.Variant(a.variant))

	file, err := parser.Parse(strings.NewReader(code), "")
	if err != nil {
		at := 0

		var perr syntax.ParseError
		if errors.As(err, &perr) {
			at = toInt(perr.Pos.Offset())
		}

		return nil, &lexer.Error{Lang: Lang, Offset: offset + at, Err: errors.Join(lexer.ErrSyntax, err)}
	}

	col := &collector{code: code}
	syntax.Walk(file, col.visit)

	spans := lexer.FuseLineBreaks(col.finish())
	for i := range spans {
		spans[i].Start += offset
		spans[i].End += offset
	}

	return spans, nil
}

type collector struct {
	code  string
	spans []lexer.Span
}

//nolint:cyclop
func (c *collector) visit(node syntax.Node) bool {
	switch n := node.(type) {
	case *syntax.Comment, *syntax.Lit:
		c.node(n)
	case *syntax.SglQuoted, *syntax.DblQuoted, *syntax.ParamExp, *syntax.ArithmExp,
		*syntax.ArithmCmd, *syntax.TestClause, *syntax.ExtGlob, *syntax.CStyleLoop:
		c.node(n)

		return false
	case *syntax.CmdSubst:
		if n.Backquotes {
			c.add(n.Left, 1)
		} else {
			c.add(n.Left, 2) //nolint:gomnd
		}

		c.add(n.Right, 1)
	case *syntax.ProcSubst:
		c.add(n.OpPos, len(n.Op.String()))
		c.add(n.Rparen, 1)
	case *syntax.Stmt:
		if n.Negated {
			c.add(n.Position, 1)
		}

		if n.Coprocess {
			c.add(n.Semicolon, 2) //nolint:gomnd
		} else {
			c.add(n.Semicolon, 1)
		}
	case *syntax.BinaryCmd:
		c.add(n.OpPos, len(n.Op.String()))
	case *syntax.Redirect:
		c.add(n.OpPos, len(n.Op.String()))
	case *syntax.Assign:
		if !n.Naked && n.Name != nil && n.Index == nil {
			if n.Append {
				c.add(n.Name.End(), 2) //nolint:gomnd
			} else {
				c.add(n.Name.End(), 1)
			}
		}
	case *syntax.DeclClause:
		if n.Variant != nil {
			c.node(n.Variant)
		}
	case *syntax.IfClause:
		c.word(n.Position)
		c.word(n.ThenPos)
		c.word(n.FiPos)
	case *syntax.WhileClause:
		c.word(n.WhilePos)
		c.word(n.DoPos)
		c.word(n.DonePos)
	case *syntax.ForClause:
		c.word(n.ForPos)
		c.word(n.DoPos)
		c.word(n.DonePos)
	case *syntax.WordIter:
		c.word(n.InPos)
	case *syntax.CaseClause:
		c.word(n.Case)
		c.word(n.In)
		c.word(n.Esac)
	case *syntax.CaseItem:
		if n.OpPos.IsValid() {
			c.add(n.OpPos, len(n.Op.String()))
		}
	case *syntax.Block:
		c.add(n.Lbrace, 1)
		c.add(n.Rbrace, 1)
	case *syntax.Subshell:
		c.add(n.Lparen, 1)
		c.add(n.Rparen, 1)
	case *syntax.FuncDecl:
		if n.RsrvWord {
			c.word(n.Position)
		}
	case *syntax.TimeClause:
		c.word(n.Time)
	}

	return true
}

func (c *collector) node(n syntax.Node) {
	if n == nil || !n.Pos().IsValid() || !n.End().IsValid() {
		return
	}

	c.span(toInt(n.Pos().Offset()), toInt(n.End().Offset()))
}

// add records a fixed-width token at pos.
func (c *collector) add(pos syntax.Pos, width int) {
	if !pos.IsValid() {
		return
	}

	start := toInt(pos.Offset())
	c.span(start, start+width)
}

// word records the reserved word starting at pos, or a single punctuation
// byte such as the brace of a deprecated "for ... { }" loop.
func (c *collector) word(pos syntax.Pos) {
	if !pos.IsValid() {
		return
	}

	start := toInt(pos.Offset())

	end := start
	for end < len(c.code) && isLetter(c.code[end]) {
		end++
	}

	if end == start {
		end++
	}

	c.span(start, end)
}

func (c *collector) span(start, end int) {
	end = min(end, len(c.code))
	if start < 0 || start >= end {
		return
	}

	c.spans = append(c.spans, lexer.Span{Start: start, End: end, Kind: lexer.Ordinary})
}

// finish orders the collected spans, drops nested or repeated ones and adds a
// LineBreak span for every newline that no token covers.
func (c *collector) finish() []lexer.Span {
	sort.Slice(c.spans, func(i, j int) bool {
		if c.spans[i].Start != c.spans[j].Start {
			return c.spans[i].Start < c.spans[j].Start
		}

		return c.spans[i].End > c.spans[j].End
	})

	kept := c.spans[:0]
	last := 0

	for _, sp := range c.spans {
		if sp.Start < last {
			continue
		}

		kept = append(kept, sp)
		last = sp.End
	}

	return lexer.InsertLineBreaks(c.code, kept)
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func toInt(off uint) int {
	n, err := safecast.Conv[int](off)
	if err != nil {
		return 0
	}

	return n
}
