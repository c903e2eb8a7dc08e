package pretok_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezerfernandes/codelexer/pkg/pretok"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		splits []pretok.Split
		n      int
		ok     bool
	}{
		{"partition", []pretok.Split{{Start: 0, End: 2}, {Start: 2, End: 5}}, 5, true},
		{"empty text", nil, 0, true},
		{"gap", []pretok.Split{{Start: 0, End: 2}, {Start: 3, End: 5}}, 5, false},
		{"overlap", []pretok.Split{{Start: 0, End: 3}, {Start: 2, End: 5}}, 5, false},
		{"empty split", []pretok.Split{{Start: 0, End: 0}, {Start: 0, End: 5}}, 5, false},
		{"short", []pretok.Split{{Start: 0, End: 4}}, 5, false},
		{"missing", nil, 5, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := pretok.Check(tt.splits, tt.n)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, pretok.ErrPartition), "%v", err)
			}
		})
	}
}

func TestSplitText(t *testing.T) {
	t.Parallel()

	s := pretok.Split{Start: 3, End: 6}
	assert.Equal(t, "def", s.Text("abcdefg"))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "[3,6)", s.String())
	assert.Equal(t, []string{"ab", "c"}, pretok.Texts("abc", []pretok.Split{{Start: 0, End: 2}, {Start: 2, End: 3}}))
}
