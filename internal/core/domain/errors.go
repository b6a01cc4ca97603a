package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested file does not exist.
	// File readers wrap this so the resolver can distinguish a missing
	// include target from other I/O failures.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrReaderUnavailable indicates no file reader has been configured.
	// Resolution cannot run without an injected read capability.
	ErrReaderUnavailable = errors.New("file reader unavailable")
)
