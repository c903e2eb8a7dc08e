package pretok

import (
	"log/slog"

	"github.com/ezerfernandes/codelexer/internal/fence"
	"github.com/ezerfernandes/codelexer/pkg/lexer"
)

// TypeCodeLexer identifies a CodeLexer in persisted configuration.
const TypeCodeLexer = "CodeLexer"

// CodeLexer splits fenced code along language token boundaries. It is
// immutable after construction and safe for concurrent use.
type CodeLexer struct {
	languages []string
	enabled   map[string]struct{}
	registry  *lexer.Registry
	log       *slog.Logger
}

// New returns a CodeLexer that lexes fences tagged with one of languages.
// Tags match exactly and case-sensitively. An empty list turns every fence
// into literal splits.
func New(languages []string, opts ...Option) *CodeLexer {
	c := &CodeLexer{
		languages: append([]string(nil), languages...),
		enabled:   make(map[string]struct{}, len(languages)),
		registry:  DefaultRegistry(),
		log:       discardLogger(),
	}

	for _, lang := range languages {
		c.enabled[lang] = struct{}{}
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Default returns a CodeLexer enabling DefaultLanguages.
func Default(opts ...Option) *CodeLexer {
	return New(DefaultLanguages(), opts...)
}

// Languages returns a copy of the enabled language tags in configured order.
func (c *CodeLexer) Languages() []string {
	return append([]string(nil), c.languages...)
}

// IsSupported reports whether fences tagged lang are lexed.
func (c *CodeLexer) IsSupported(lang string) bool {
	_, ok := c.enabled[lang]

	return ok
}

// Split partitions text into splits. It never fails: any fence that cannot
// be lexed is kept as a literal code split.
func (c *CodeLexer) Split(text string) []Split {
	matches := fence.Scan(text)
	splits := make([]Split, 0, 1+len(matches)*4) //nolint:gomnd
	last := 0

	for _, m := range matches {
		splits = appendSplit(splits, last, m.Header.Start)
		splits = appendSplit(splits, m.Header.Start, m.Header.End)

		var footer int
		splits, footer = c.splitCode(text, m, splits)

		splits = appendSplit(splits, footer, m.Footer.End)
		last = m.Footer.End
	}

	return appendSplit(splits, last, len(text))
}

// splitCode appends the splits of a fence body and returns where the footer
// split starts.
func (c *CodeLexer) splitCode(text string, m fence.Match, splits []Split) ([]Split, int) {
	log := c.log.With(slog.String("lang", m.Lang), slog.Int("offset", m.Header.Start))
	log.Debug("fence detected",
		slog.Int("header_end", m.Header.End),
		slog.Int("code_end", m.Code.End),
		slog.Int("footer_end", m.Footer.End))

	literal := func() ([]Split, int) {
		return appendSplit(splits, m.Code.Start, m.Code.End), m.Code.End
	}

	if m.Lang == "" || !c.IsSupported(m.Lang) {
		log.Debug("language not enabled, passing code through")

		return literal()
	}

	adapter, ok := c.registry.Lookup(m.Lang)
	if !ok {
		log.Warn("falling back to literal code split", slog.Any("error", lexer.ErrNoAdapter))

		return literal()
	}

	spans, err := adapter.Lex(text[m.Code.Start:m.Code.End], m.Code.Start)
	if err != nil {
		log.Warn("falling back to literal code split", slog.Any("error", err))

		return literal()
	}

	code, end, err := reconcile(spans, m.Code.Start, m.Code.End)
	if err != nil {
		log.Warn("falling back to literal code split", slog.Any("error", err))

		return literal()
	}

	log.Debug("code lexed", slog.Int("tokens", len(spans)), slog.Int("splits", len(code)))

	return append(splits, code...), end
}

func appendSplit(splits []Split, start, end int) []Split {
	if start >= end {
		return splits
	}

	return append(splits, Split{Start: start, End: end})
}
