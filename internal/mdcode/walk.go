package mdcode

import (
	"bytes"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var reInfo = regexp.MustCompile(`\s*(\w+)\s*(.*)\s*`)

// Walker is called for each fenced code block of a document.
type Walker func(block *Block) error

// Walk parses a Markdown document and calls walker for every fenced code
// block in document order. It stops at the first error walker returns.
func Walk(source []byte, walker Walker) error {
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	return ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb := asFencedCodeBlock(node, entering)
		if fcb == nil {
			return ast.WalkContinue, nil
		}

		block, err := extractBlock(fcb, source)
		if err != nil {
			return ast.WalkStop, err
		}

		if err := walker(block); err != nil {
			return ast.WalkStop, err
		}

		return ast.WalkContinue, nil
	})
}

// Unfence returns every fenced code block of a Markdown document.
func Unfence(source []byte) (Blocks, error) {
	var blocks Blocks

	err := Walk(source, func(block *Block) error {
		blocks = append(blocks, block)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return blocks, nil
}

func asFencedCodeBlock(node ast.Node, entering bool) *ast.FencedCodeBlock {
	if entering || node.Kind() != ast.KindFencedCodeBlock {
		return nil
	}

	fcb, _ := node.(*ast.FencedCodeBlock)

	return fcb
}

func extractBlock(fcb *ast.FencedCodeBlock, source []byte) (*Block, error) {
	lang, meta, err := extractInfo(fcb, source)
	if err != nil {
		return nil, err
	}

	block := &Block{Lang: lang, Meta: meta, Code: extractCode(fcb, source)}
	block.Start, block.End = bounds(fcb)
	block.StartLine, block.EndLine = extractLines(fcb, source)

	return block, nil
}

// bounds returns the byte range of the body. An empty body sits right after
// the info string's line.
func bounds(fcb *ast.FencedCodeBlock) (int, int) {
	lines := fcb.Lines()
	if lines.Len() == 0 {
		if fcb.Info == nil {
			return 0, 0
		}

		return fcb.Info.Segment.Stop + 1, fcb.Info.Segment.Stop + 1
	}

	return lines.At(0).Start, lines.At(lines.Len() - 1).Stop
}

func extractLines(fcb *ast.FencedCodeBlock, source []byte) (int, int) {
	var startLine, endLine int

	lines := fcb.Lines()

	switch {
	case fcb.Info != nil:
		startLine = lineAt(source, fcb.Info.Segment.Start)
	case lines.Len() > 0:
		startLine = lineAt(source, lines.At(0).Start) - 1
	}

	switch {
	case lines.Len() > 0:
		endLine = lineAt(source, lines.At(lines.Len()-1).Stop)
	case startLine > 0:
		endLine = startLine + 1
	}

	return startLine, endLine
}

func lineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}

	return bytes.Count(source[:offset], []byte{'\n'}) + 1
}

func extractCode(fcb *ast.FencedCodeBlock, source []byte) []byte {
	var buff bytes.Buffer

	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buff.Write(seg.Value(source))
	}

	return buff.Bytes()
}

func extractInfo(fcb *ast.FencedCodeBlock, source []byte) (string, Meta, error) {
	if fcb.Info == nil {
		return "", nil, nil
	}

	all := reInfo.FindSubmatch(fcb.Info.Segment.Value(source))
	if all == nil {
		return "", nil, nil
	}

	meta, err := parseMeta(all[2])

	return string(all[1]), meta, err
}
