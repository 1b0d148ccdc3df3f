package session

import "errors"

var (
	// ErrDuplicate rejects creation under an id that is already live.
	ErrDuplicate = errors.New("session already exists")
	// ErrNotFound covers ids that are absent or already evicted.
	ErrNotFound = errors.New("session not found")
)
