package study

import "errors"

var (
	// ErrIOFailure is returned when an export could not write its file.
	// The wrapped error carries the underlying filesystem failure.
	ErrIOFailure = errors.New("export failed")

	// ErrPositionOutOfRange is returned when DeleteItems receives a position
	// outside the current sequence. The collection is left unchanged.
	ErrPositionOutOfRange = errors.New("position out of range")
)
