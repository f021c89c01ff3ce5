package lwwset

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound indicates that the requested key is missing.
	// Errors returned by Get and GetEntry match it with errors.Is.
	ErrKeyNotFound = errors.New("lwwset: key not found")
	// ErrClosed indicates that the Replica has been closed.
	ErrClosed = errors.New("lwwset: replica is closed")
	// ErrTimeout indicates that the context deadline expired.
	ErrTimeout = errors.New("lwwset: operation timed out")
	// ErrCanceled indicates that the context was canceled.
	ErrCanceled = errors.New("lwwset: operation canceled")
)

// KeyNotFoundError carries the key a read was attempted on.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("lwwset: key not found: %q", e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

func keyNotFound[K ~string](key K) error {
	return &KeyNotFoundError{Key: string(key)}
}
