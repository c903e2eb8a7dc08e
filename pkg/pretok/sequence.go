package pretok

import (
	"encoding/json"
	"fmt"
)

// TypeSequence identifies a Sequence in persisted configuration.
const TypeSequence = "Sequence"

// Sequence runs stages one after another. Each stage refines every split of
// the previous one; offsets stay relative to the input text.
type Sequence struct {
	Stages []PreTokenizer
}

// NewSequence returns a Sequence of stages.
func NewSequence(stages ...PreTokenizer) *Sequence {
	return &Sequence{Stages: stages}
}

// Split applies every stage in order.
func (s *Sequence) Split(text string) []Split {
	if len(text) == 0 {
		return nil
	}

	splits := []Split{{Start: 0, End: len(text)}}

	for _, stage := range s.Stages {
		next := make([]Split, 0, len(splits))

		for _, outer := range splits {
			for _, inner := range stage.Split(outer.Text(text)) {
				next = append(next, Split{Start: outer.Start + inner.Start, End: outer.Start + inner.End})
			}
		}

		splits = next
	}

	return splits
}

type sequenceJSON struct {
	Type          string            `json:"type"`
	PreTokenizers []json.RawMessage `json:"pretokenizers"`
}

// MarshalJSON encodes the Sequence as {"type":"Sequence","pretokenizers":[...]}.
func (s *Sequence) MarshalJSON() ([]byte, error) {
	stages := make([]json.RawMessage, 0, len(s.Stages))

	for i, stage := range s.Stages {
		raw, err := json.Marshal(stage)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}

		stages = append(stages, raw)
	}

	return json.Marshal(sequenceJSON{Type: TypeSequence, PreTokenizers: stages})
}

func decodeSequence(data []byte, opts []Option) (*Sequence, error) {
	var raw sequenceJSON
	if err := strictUnmarshal(data, &raw); err != nil {
		return nil, err
	}

	seq := &Sequence{Stages: make([]PreTokenizer, 0, len(raw.PreTokenizers))}

	for i, stage := range raw.PreTokenizers {
		pt, err := Decode(stage, opts...)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}

		seq.Stages = append(seq.Stages, pt)
	}

	return seq, nil
}
