package pretok

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PreTokenizer is a stage that partitions text into splits.
type PreTokenizer interface {
	Split(text string) []Split
}

type codeLexerJSON struct {
	Type      string    `json:"type"`
	Languages *[]string `json:"languages,omitempty"`
}

// MarshalJSON encodes the CodeLexer as {"type":"CodeLexer","languages":[...]}.
func (c *CodeLexer) MarshalJSON() ([]byte, error) {
	languages := c.Languages()
	if languages == nil {
		languages = []string{}
	}

	return json.Marshal(codeLexerJSON{Type: TypeCodeLexer, Languages: &languages})
}

// UnmarshalJSON decodes a persisted CodeLexer. A missing languages field
// selects DefaultLanguages; an explicit empty list enables nothing. Options
// set on the receiver before decoding are kept.
func (c *CodeLexer) UnmarshalJSON(data []byte) error {
	var raw codeLexerJSON
	if err := strictUnmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Type != TypeCodeLexer {
		return fmt.Errorf("%w: got %q, want %q", ErrType, raw.Type, TypeCodeLexer)
	}

	languages := DefaultLanguages()
	if raw.Languages != nil {
		languages = *raw.Languages
	}

	var opts []Option
	if c.registry != nil {
		opts = append(opts, WithRegistry(c.registry))
	}

	if c.log != nil {
		opts = append(opts, WithLogger(c.log))
	}

	*c = *New(languages, opts...)

	return nil
}

// Decode builds the pre-tokenizer described by a persisted configuration,
// either a single CodeLexer or a Sequence of stages. opts apply to every
// CodeLexer it creates.
func Decode(data []byte, opts ...Option) (PreTokenizer, error) {
	var head struct {
		Type string `json:"type"`
	}

	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	switch head.Type {
	case TypeCodeLexer:
		c := New(nil, opts...)
		if err := c.UnmarshalJSON(data); err != nil {
			return nil, err
		}

		return c, nil
	case TypeSequence:
		return decodeSequence(data, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrType, head.Type)
	}
}

// strictUnmarshal rejects unknown fields.
func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	return dec.Decode(v)
}
