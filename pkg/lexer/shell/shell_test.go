package shell_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezerfernandes/codelexer/pkg/lexer"
	"github.com/ezerfernandes/codelexer/pkg/lexer/shell"
)

func texts(code string, offset int, spans []lexer.Span) []string {
	out := make([]string, 0, len(spans))
	for _, sp := range spans {
		out = append(out, code[sp.Start-offset:sp.End-offset])
	}

	return out
}

func TestLex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want []string
	}{
		{"pipeline", "echo hi | wc -l\n", []string{"echo", "hi", "|", "wc", "-l\n"}},
		{"quotes", "echo \"a b\" 'c d'\n", []string{"echo", "\"a b\"", "'c d'\n"}},
		{"comments", "# note\necho x # tail\n", []string{"# note\n", "echo", "x", "# tail\n"}},
		{"redirect", "cat a > b\n", []string{"cat", "a", ">", "b\n"}},
		{"and list", "make && make test\n", []string{"make", "&&", "make", "test\n"}},
		{"parameter", "echo ${HOME}\n", []string{"echo", "${HOME}\n"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spans, err := shell.New().Lex(tt.code, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, texts(tt.code, 0, spans))
		})
	}
}

func TestLexKeywords(t *testing.T) {
	t.Parallel()

	code := "if true; then\n  echo hi\nfi\n"

	spans, err := shell.New().Lex(code, 7)
	require.NoError(t, err)

	got := texts(code, 7, spans)
	assert.Equal(t, "if", got[0])
	assert.Contains(t, got, "echo")
	assert.Equal(t, "fi\n", got[len(got)-1])

	prev := 7
	for _, sp := range spans {
		assert.GreaterOrEqual(t, sp.Start, prev)
		assert.Less(t, sp.Start, sp.End)
		assert.Equal(t, lexer.Ordinary, sp.Kind)
		prev = sp.End
	}
}

func TestLexError(t *testing.T) {
	t.Parallel()

	spans, err := shell.New().Lex("echo \"unterminated\n", 40)
	require.Error(t, err)
	assert.Nil(t, spans)
	assert.True(t, errors.Is(err, lexer.ErrSyntax))

	var lexErr *lexer.Error
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, shell.Lang, lexErr.Lang)
	assert.GreaterOrEqual(t, lexErr.Offset, 40)
}
