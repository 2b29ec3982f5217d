package config

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound is returned when neither the document id nor any
	// override block matches the requested dataset id.
	ErrConfigNotFound = errors.New("configuration not found")
	// ErrMissingField is returned when a required key is absent.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidDate is returned when a date field does not parse.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidDocument is returned when a document is not a mapping.
	ErrInvalidDocument = errors.New("invalid configuration document")
)

// MissingFieldError names the required key that was absent.
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("couldn't find value for key %q", e.Key)
}

// Unwrap lets errors.Is match ErrMissingField.
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
