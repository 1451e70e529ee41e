package service

import "errors"

var (
	// ErrCodebookNotFound is returned by entry operations whose target
	// codebook does not exist.
	ErrCodebookNotFound = errors.New("codebook not found")

	// ErrPasswordTooLong is returned when a plaintext entry password would
	// produce an envelope exceeding the storage bound.
	ErrPasswordTooLong = errors.New("password too long to store")
)
