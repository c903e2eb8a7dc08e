package pretok

import "fmt"

// Split is one half-open byte range [Start, End) of the pre-tokenized text.
// The splits returned for a text partition it: they are ordered, contiguous
// and cover every byte exactly once.
type Split struct {
	Start int `json:"start" msgpack:"start"`
	End   int `json:"end" msgpack:"end"`
}

// Len returns the number of bytes in the split.
func (s Split) Len() int { return s.End - s.Start }

// Text returns the bytes of text the split covers.
func (s Split) Text(text string) string { return text[s.Start:s.End] }

func (s Split) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.End) }

// Texts materializes every split of text in order.
func Texts(text string, splits []Split) []string {
	out := make([]string, len(splits))
	for i, s := range splits {
		out[i] = s.Text(text)
	}

	return out
}

// Check verifies that splits partition a text of length n: ordered,
// contiguous, non-empty, starting at 0 and ending at n.
func Check(splits []Split, n int) error {
	at := 0

	for i, s := range splits {
		if s.Start != at {
			return fmt.Errorf("%w: split %d %v starts at %d, want %d", ErrPartition, i, s, s.Start, at)
		}

		if s.End <= s.Start {
			return fmt.Errorf("%w: split %d %v is empty", ErrPartition, i, s)
		}

		at = s.End
	}

	if at != n {
		return fmt.Errorf("%w: splits end at %d, text has %d bytes", ErrPartition, at, n)
	}

	return nil
}
