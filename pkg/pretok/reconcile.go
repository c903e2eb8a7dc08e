package pretok

import (
	"fmt"

	"github.com/ezerfernandes/codelexer/pkg/lexer"
)

// reconcile turns the token spans of a code body [start, end) into gapless
// splits. A blank gap before a token is given to that token, so indentation
// and spacing attach forward. A LineBreak span still present is folded into
// the split before it when adjacent and otherwise left to the next token.
//
// It returns the splits and the offset where they stop. Bytes from there to
// end, i.e. blanks after the last token, belong to the closing fence.
func reconcile(spans []lexer.Span, start, end int) ([]Split, int, error) {
	splits := make([]Split, 0, len(spans))
	cursor := start

	for i, sp := range spans {
		if sp.Start < cursor || sp.End < sp.Start || sp.End > end {
			return nil, start, fmt.Errorf("%w: span %d [%d,%d) in code body [%d,%d) after offset %d",
				lexer.ErrInvalidSpans, i, sp.Start, sp.End, start, end, cursor)
		}

		if sp.Start == sp.End {
			continue
		}

		if sp.Kind == lexer.LineBreak {
			if len(splits) > 0 && sp.Start == cursor {
				splits[len(splits)-1].End = sp.End
				cursor = sp.End
			}

			continue
		}

		splits = append(splits, Split{Start: cursor, End: sp.End})
		cursor = sp.End
	}

	return splits, cursor, nil
}
