// Package fence locates triple-backtick code fences in plain text.
package fence

import "regexp"

// reFence matches an opening fence with an optional bareword language tag,
// then the shortest body up to the next run of three backticks.
var reFence = regexp.MustCompile("```(\\w+)?\\n([\\s\\S]*?)```")

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes in the range.
func (r Range) Len() int { return r.End - r.Start }

// Match is one fenced code block. Header.End == Code.Start and
// Code.End == Footer.Start.
type Match struct {
	Lang   string // empty when the fence has no language tag
	Header Range  // "```lang\n"
	Code   Range  // body, possibly empty
	Footer Range  // closing "```"
}

// Range returns the whole fence from the opening to the closing backticks.
func (m Match) Range() Range { return Range{Start: m.Header.Start, End: m.Footer.End} }

// Scan returns the fences of text in order. Matches never overlap; an opening
// fence without a closer is not a match and scanning goes on after it.
func Scan(text string) []Match {
	locs := reFence.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(locs))

	for _, loc := range locs {
		m := Match{
			Header: Range{Start: loc[0], End: loc[4]},
			Code:   Range{Start: loc[4], End: loc[5]},
			Footer: Range{Start: loc[5], End: loc[1]},
		}

		if loc[2] >= 0 {
			m.Lang = text[loc[2]:loc[3]]
		}

		matches = append(matches, m)
	}

	return matches
}
