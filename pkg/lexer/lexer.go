// Package lexer defines the contract between the pre-tokenizer and the
// per-language lexical analyzers that split fenced code into token spans.
package lexer

import "sort"

// Kind tags a Span for boundary reconciliation.
type Kind uint8

const (
	// Ordinary is any token the underlying lexer recognized.
	Ordinary Kind = iota
	// LineBreak is an explicit end-of-line token.
	LineBreak
)

func (k Kind) String() string {
	switch k {
	case Ordinary:
		return "ordinary"
	case LineBreak:
		return "linebreak"
	default:
		return "unknown"
	}
}

// Span is a half-open byte range [Start, End) into the text being
// pre-tokenized. Offsets are absolute, not relative to the code body.
type Span struct {
	Start int
	End   int
	Kind  Kind
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Adapter turns source code of one language into token spans.
//
// Lex must be deterministic: the same code and offset always yield the same
// spans. Returned spans are shifted by offset, ordered by Start and never
// overlap. Bytes the underlying lexer skips (indentation, blanks) are left as
// gaps. Code the lexer cannot tokenize is reported as an error, never a panic.
type Adapter interface {
	Lex(code string, offset int) ([]Span, error)
}

// AdapterFunc lets an ordinary function act as an Adapter.
type AdapterFunc func(code string, offset int) ([]Span, error)

// Lex calls f(code, offset).
func (f AdapterFunc) Lex(code string, offset int) ([]Span, error) {
	return f(code, offset)
}

// Registry maps fence language tags to adapters. Several tags may share one
// adapter, e.g. "python" and "py".
//
// Register all adapters before sharing the registry; lookups are safe for
// concurrent use once registration is done.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register binds every tag to adapter, replacing earlier bindings.
func (r *Registry) Register(adapter Adapter, tags ...string) *Registry {
	for _, tag := range tags {
		r.adapters[tag] = adapter
	}

	return r
}

// Lookup returns the adapter bound to tag. Tags match exactly.
func (r *Registry) Lookup(tag string) (Adapter, bool) {
	if r == nil {
		return nil, false
	}

	adapter, ok := r.adapters[tag]

	return adapter, ok
}

// Tags returns the registered tags in sorted order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.adapters))
	for tag := range r.adapters {
		tags = append(tags, tag)
	}

	sort.Strings(tags)

	return tags
}
