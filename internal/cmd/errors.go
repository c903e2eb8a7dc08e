package cmd

import "errors"

var (
	errUnknownFormat  = errors.New("unknown output format")
	errSingleDocument = errors.New("expected a single document")
)
