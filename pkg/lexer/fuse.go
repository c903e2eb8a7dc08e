package lexer

import "strings"

// FuseLineBreaks folds LineBreak spans into the span emitted just before
// them and returns the resulting slice, reusing the backing array of spans.
//
// A break that directly follows the previous span (no bytes in between)
// extends that span's end by the break's length, so "1" followed by "\n"
// becomes "1\n". Consecutive breaks keep extending the same span. A break
// with no preceding span, or one separated from it by blanks, is dropped;
// its bytes become part of the gap that the next token picks up.
func FuseLineBreaks(spans []Span) []Span {
	out := spans[:0]

	for _, sp := range spans {
		if sp.Kind != LineBreak {
			out = append(out, sp)

			continue
		}

		if len(out) == 0 {
			continue
		}

		last := &out[len(out)-1]
		if last.End != sp.Start {
			continue
		}

		last.End += sp.Len()
	}

	return out
}

// InsertLineBreaks merges a LineBreak span for every "\n" in code that no
// span covers into the ordered spans. Offsets are relative to code.
func InsertLineBreaks(code string, spans []Span) []Span {
	out := make([]Span, 0, len(spans)+strings.Count(code, "\n"))
	next := 0

	for i := 0; i < len(code); i++ {
		if code[i] != '\n' {
			continue
		}

		for next < len(spans) && spans[next].End <= i {
			out = append(out, spans[next])
			next++
		}

		if next < len(spans) && spans[next].Start <= i {
			continue
		}

		out = append(out, Span{Start: i, End: i + 1, Kind: LineBreak})
	}

	return append(out, spans[next:]...)
}
