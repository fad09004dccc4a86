// Package errors holds the sentinel errors shared by every customers module.
// Use cases and collaborators wrap these so the HTTP layer can translate them
// into status codes without knowing about storage details.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict means the write collides with existing data.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput means the caller supplied data that cannot be processed.
	ErrInvalidInput = errors.New("invalid input")
)

// New returns an error carrying message.
func New(message string) error {
	return errors.New(message)
}

// Wrap prefixes err with message and keeps it in the chain. Nil stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
