package model

import "errors"

// Validation errors surfaced while parsing the run configuration. All are
// fatal to the run; none are retryable.
var (
	// ErrInvalidDriveLetter reports a drive letter outside [A-Za-z].
	ErrInvalidDriveLetter = errors.New("invalid drive letter")

	// ErrInvalidRangeOrder reports a traversal range whose start exceeds its end.
	ErrInvalidRangeOrder = errors.New("invalid traversal range order")

	// ErrInvalidTraversalFormat reports a malformed traversal depth or token list.
	ErrInvalidTraversalFormat = errors.New("invalid traversal format")

	// ErrUnknownEncodingToken reports an encoding letter outside {u,d,b,o}.
	ErrUnknownEncodingToken = errors.New("unknown encoding token")

	// ErrEmptyInput reports a wordlist with no usable lines.
	ErrEmptyInput = errors.New("empty input wordlist")
)
