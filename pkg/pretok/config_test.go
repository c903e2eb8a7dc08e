package pretok_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezerfernandes/codelexer/pkg/lexer"
	"github.com/ezerfernandes/codelexer/pkg/pretok"
)

func TestCodeLexerMarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(pretok.Default())
	require.NoError(t, err)
	assert.Equal(t, `{"type":"CodeLexer","languages":["python","py"]}`, string(data))

	data, err = json.Marshal(pretok.New(nil))
	require.NoError(t, err)
	assert.Equal(t, `{"type":"CodeLexer","languages":[]}`, string(data))
}

func TestCodeLexerUnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want []string
	}{
		{"defaults", `{"type":"CodeLexer"}`, []string{"python", "py"}},
		{"explicit empty", `{"type":"CodeLexer","languages":[]}`, nil},
		{"explicit list", `{"type":"CodeLexer","languages":["go","sh"]}`, []string{"go", "sh"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var c pretok.CodeLexer
			require.NoError(t, json.Unmarshal([]byte(tt.data), &c))
			assert.Equal(t, tt.want, c.Languages())
		})
	}
}

func TestCodeLexerRoundTrip(t *testing.T) {
	t.Parallel()

	text := "```python\nx=1\n```"
	orig := pretok.Default()

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var decoded pretok.CodeLexer
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, orig.Languages(), decoded.Languages())
	assert.Equal(t, orig.Split(text), decoded.Split(text))
}

func TestCodeLexerUnmarshalErrors(t *testing.T) {
	t.Parallel()

	var c pretok.CodeLexer

	err := json.Unmarshal([]byte(`{"type":"Whitespace"}`), &c)
	assert.True(t, errors.Is(err, pretok.ErrType))

	err = json.Unmarshal([]byte(`{"type":"CodeLexer","langs":["py"]}`), &c)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"type":"CodeLexer","languages":"py"}`), &c)
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	pt, err := pretok.Decode([]byte(`{"type":"CodeLexer","languages":["go"]}`))
	require.NoError(t, err)

	c, ok := pt.(*pretok.CodeLexer)
	require.True(t, ok)
	assert.Equal(t, []string{"go"}, c.Languages())

	_, err = pretok.Decode([]byte(`{"type":"BertPreTokenizer"}`))
	assert.True(t, errors.Is(err, pretok.ErrType))

	_, err = pretok.Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestDecodeOptions(t *testing.T) {
	t.Parallel()

	chars := lexer.AdapterFunc(func(code string, offset int) ([]lexer.Span, error) {
		spans := make([]lexer.Span, 0, len(code))
		for i := range code {
			spans = append(spans, lexer.Span{Start: offset + i, End: offset + i + 1})
		}

		return spans, nil
	})

	pt, err := pretok.Decode(
		[]byte(`{"type":"Sequence","pretokenizers":[{"type":"CodeLexer","languages":["chars"]}]}`),
		pretok.WithRegistry(lexer.NewRegistry().Register(chars, "chars")),
	)
	require.NoError(t, err)

	text := "```chars\nab\n```"
	assert.Equal(t, []string{"```chars\n", "a", "b", "\n", "```"}, pretok.Texts(text, pt.Split(text)))
}

func TestSequenceJSON(t *testing.T) {
	t.Parallel()

	seq := pretok.NewSequence(pretok.New([]string{"py"}), pretok.Default())

	data, err := json.Marshal(seq)
	require.NoError(t, err)
	assert.Equal(t,
		`{"type":"Sequence","pretokenizers":[{"type":"CodeLexer","languages":["py"]},{"type":"CodeLexer","languages":["python","py"]}]}`,
		string(data))

	pt, err := pretok.Decode(data)
	require.NoError(t, err)

	decoded, ok := pt.(*pretok.Sequence)
	require.True(t, ok)
	require.Len(t, decoded.Stages, 2)

	again, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(again))

	_, err = pretok.Decode([]byte(`{"type":"Sequence","pretokenizers":[{"type":"Nope"}]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, pretok.ErrType))
	assert.True(t, strings.Contains(err.Error(), "stage 0"))
}

// lines splits after every newline.
type lines struct{}

func (lines) Split(text string) []pretok.Split {
	var out []pretok.Split

	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			out = append(out, pretok.Split{Start: start, End: i + 1})
			start = i + 1
		}
	}

	if start < len(text) {
		out = append(out, pretok.Split{Start: start, End: len(text)})
	}

	return out
}

func TestSequenceSplit(t *testing.T) {
	t.Parallel()

	text := "```python\nx=1\n```\nhello\nworld"

	seq := pretok.NewSequence(pretok.Default(), lines{})
	splits := seq.Split(text)

	require.NoError(t, pretok.Check(splits, len(text)))
	assert.Equal(t,
		[]string{"```python\n", "x", "=", "1\n", "```", "\n", "hello\n", "world"},
		pretok.Texts(text, splits))

	assert.Equal(t, pretok.Default().Split(text), pretok.NewSequence(pretok.Default()).Split(text))
	assert.Empty(t, seq.Split(""))
}
