package lexer

import (
	"errors"
	"fmt"
)

// Error describes code an adapter could not tokenize.
type Error struct {
	Lang   string // language of the adapter that failed
	Offset int    // absolute byte offset of the offending input
	Err    error  // one of the sentinel errors below, or an adapter error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: offset %d: %v", e.Lang, e.Offset, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error whose cause wraps err with a formatted detail.
func Errorf(lang string, offset int, err error, format string, args ...interface{}) *Error {
	if format == "" {
		return &Error{Lang: lang, Offset: offset, Err: err}
	}

	return &Error{Lang: lang, Offset: offset, Err: fmt.Errorf("%w: "+format, append([]interface{}{err}, args...)...)}
}

var (
	// ErrUnterminatedString is returned for a string literal without its closing quote.
	ErrUnterminatedString = errors.New("unterminated string literal")
	// ErrUnexpectedChar is returned for a byte that cannot start any token.
	ErrUnexpectedChar = errors.New("unexpected character")
	// ErrDedent is returned when an unindent matches no outer indentation level.
	ErrDedent = errors.New("unindent does not match any outer indentation level")
	// ErrUnexpectedEOF is returned when the code ends inside an open construct.
	ErrUnexpectedEOF = errors.New("unexpected end of code")
	// ErrSyntax is returned when an adapter's underlying parser rejects the code.
	ErrSyntax = errors.New("syntax error")
	// ErrNoAdapter is returned when a language is enabled but no adapter is registered for it.
	ErrNoAdapter = errors.New("no lexer registered for language")
	// ErrInvalidSpans is returned when an adapter produces unordered, overlapping
	// or out-of-range spans.
	ErrInvalidSpans = errors.New("invalid token spans")
)
