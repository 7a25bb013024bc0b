package storage

import "errors"

// Common client storage errors
var (
	// ErrNotFound indicates that the requested record was not found
	ErrNotFound = errors.New("record not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
