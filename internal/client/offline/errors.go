package offline

import "errors"

var (
	// ErrRecordNotFound indicates that no local record exists with the id
	ErrRecordNotFound = errors.New("local record not found")

	// ErrWriteNotFound indicates that no queued write exists with the id
	ErrWriteNotFound = errors.New("pending write not found")
)
