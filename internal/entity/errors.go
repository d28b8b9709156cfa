package entity

import "github.com/pkg/errors"

// Sentinel errors for the parsing pipeline. Call sites wrap these with
// path/row/column context via errors.Wrapf; callers match with errors.Is.
var (
	ErrFileNotFound     = errors.New("file not found")
	ErrEmptyFile        = errors.New("empty file")
	ErrMalformedData    = errors.New("malformed data")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrNoData           = errors.New("no data loaded")
	ErrUnknownCategory  = errors.New("unknown category")
)
