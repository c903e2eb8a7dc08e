// Package mdcode lists the fenced code blocks of a Markdown document as a
// CommonMark parser sees them, for comparison with the plain fence scanner.
package mdcode

// Block is one fenced code block.
type Block struct {
	Lang      string
	Meta      Meta
	Code      []byte
	Start     int // byte offset of the body in the document
	End       int // byte offset just past the body
	StartLine int
	EndLine   int
}

type Blocks []*Block

// Langs returns the distinct language tags of the blocks in order of first use.
func (b Blocks) Langs() []string {
	seen := make(map[string]bool)

	var langs []string

	for _, block := range b {
		if block.Lang == "" || seen[block.Lang] {
			continue
		}

		seen[block.Lang] = true
		langs = append(langs, block.Lang)
	}

	return langs
}
