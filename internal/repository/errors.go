package repository

import "errors"

var (
	// ErrNotFound is returned when a requested key doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a key or namespace is unusable
	ErrInvalidInput = errors.New("invalid input")
)
