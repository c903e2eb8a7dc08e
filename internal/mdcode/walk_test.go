package mdcode_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezerfernandes/codelexer/internal/mdcode"
)

const document = "# T\n\n" +
	"```python file=a.py title=\"Hi there\"\nx = 1\n```\n" +
	"\ntext\n\n" +
	"```\nplain\n```\n" +
	"~~~go\nfunc\n~~~\n"

func TestUnfence(t *testing.T) {
	t.Parallel()

	source := []byte(document)

	blocks, err := mdcode.Unfence(source)
	require.NoError(t, err)
	require.Len(t, blocks, 3)

	py := blocks[0]
	assert.Equal(t, "python", py.Lang)
	assert.Equal(t, "x = 1\n", string(py.Code))
	assert.Equal(t, string(py.Code), string(source[py.Start:py.End]))
	assert.Equal(t, "a.py", py.Meta.Get("file"))
	assert.Equal(t, "Hi there", py.Meta.Get("title"))
	assert.Equal(t, "", py.Meta.Get("missing"))
	assert.Equal(t, 3, py.StartLine)
	assert.Equal(t, 5, py.EndLine)

	plain := blocks[1]
	assert.Equal(t, "", plain.Lang)
	assert.Equal(t, "plain\n", string(plain.Code))

	goBlock := blocks[2]
	assert.Equal(t, "go", goBlock.Lang)
	assert.Equal(t, "func\n", string(goBlock.Code))

	assert.Equal(t, []string{"python", "go"}, blocks.Langs())
}

func TestUnfenceMeta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"json", "```go {\"file\": \"main.go\", \"n\": 2}\nx\n```\n", "file=main.go n=2"},
		{"braces", "```sh {name=x mode=\"a b\"}\nx\n```\n", "mode=a b name=x"},
		{"words", "```py skip=true\nx\n```\n", "skip=true"},
		{"none", "```py\nx\n```\n", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blocks, err := mdcode.Unfence([]byte(tt.source))
			require.NoError(t, err)
			require.Len(t, blocks, 1)
			assert.Equal(t, tt.want, blocks[0].Meta.String())
		})
	}
}

func TestUnfenceBadMeta(t *testing.T) {
	t.Parallel()

	_, err := mdcode.Unfence([]byte("```py \"open\nx\n```\n"))
	assert.Error(t, err)

	_, err = mdcode.Unfence([]byte("```go {\"file\": }\nx\n```\n"))
	assert.Error(t, err)
}

func TestWalkStops(t *testing.T) {
	t.Parallel()

	errStop := errors.New("stop")
	seen := 0

	err := mdcode.Walk([]byte(document), func(block *mdcode.Block) error {
		seen++

		return errStop
	})

	assert.True(t, errors.Is(err, errStop))
	assert.Equal(t, 1, seen)
}
