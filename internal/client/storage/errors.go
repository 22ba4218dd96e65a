package storage

import "errors"

// Common client storage errors
var (
	// ErrKeyNotFound indicates that no value exists under the requested key
	ErrKeyNotFound = errors.New("key not found")

	// ErrStorageClosed indicates that the store has been closed
	ErrStorageClosed = errors.New("storage is closed")
)
