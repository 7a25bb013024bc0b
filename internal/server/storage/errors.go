package storage

import "errors"

// Common storage errors
var (
	// ErrItemNotFound indicates that no value is stored for the target
	ErrItemNotFound = errors.New("item not found")
)
