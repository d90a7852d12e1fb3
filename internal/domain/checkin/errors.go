package checkin

import "errors"

var (
	// ErrInvalidInput indicates metrics outside their semantic ranges.
	ErrInvalidInput = errors.New("invalid check-in input")
	// ErrCorruptCollection indicates a persisted collection that cannot be decoded.
	ErrCorruptCollection = errors.New("corrupt check-in collection")
)
