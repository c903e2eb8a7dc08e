package pretok

import "errors"

var (
	// ErrType is returned when persisted configuration names an unknown type.
	ErrType = errors.New("unknown pre-tokenizer type")
	// ErrPartition is returned by Check when splits do not partition a text.
	ErrPartition = errors.New("splits do not partition the text")
)
