package errors

import "errors"

var (
	ErrUnknownKind = errors.New("unknown entry kind")

	ErrBatchTooLarge = errors.New("batch exceeds the maximum number of entries")
)
