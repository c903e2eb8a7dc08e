package pretok

import (
	"io"
	"log/slog"

	"github.com/ezerfernandes/codelexer/pkg/lexer"
	"github.com/ezerfernandes/codelexer/pkg/lexer/golang"
	"github.com/ezerfernandes/codelexer/pkg/lexer/python"
	"github.com/ezerfernandes/codelexer/pkg/lexer/shell"
)

// Option configures a CodeLexer.
type Option func(*CodeLexer)

// WithLogger sends diagnostic events to logger. Fence detections and token
// counts are logged at debug level, fallbacks at warn level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *CodeLexer) {
		if logger != nil {
			c.log = logger
		}
	}
}

// WithRegistry replaces the adapters used to lex enabled languages.
func WithRegistry(registry *lexer.Registry) Option {
	return func(c *CodeLexer) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// DefaultLanguages are the tags enabled when none are configured.
func DefaultLanguages() []string {
	return []string{"python", "py"}
}

// DefaultRegistry binds the bundled adapters to their common tags. Which of
// them run is decided by the enabled language list, not by the registry.
func DefaultRegistry() *lexer.Registry {
	return lexer.NewRegistry().
		Register(python.New(), "python", "py").
		Register(shell.New(), "sh", "bash", "shell").
		Register(golang.New(), "go", "golang")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
