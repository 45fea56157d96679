package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound          = errors.New("task not found")
	ErrValidation        = errors.New("validation failed")
	ErrImmutableTemplate = errors.New("template task is immutable")
	ErrImportFormat      = errors.New("malformed import document")
)

// StoreError represents a failure in the durable key-value store
type StoreError struct {
	Op  string // Operation: "load", "save", "export", "import"
	Key string // Optional: record key
	Err error  // Underlying error
}

func (e *StoreError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("store %s [%s]: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
