package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrNoDocuments is returned when a check run is started without any documents
	ErrNoDocuments = errors.New("no documents provided")

	// ErrDictionaryNotLoaded is returned when processing is attempted before the dictionary is ready
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")

	// ErrIgnoreList is returned when an ignore list cannot be read or parsed.
	// It is warning-grade: callers are expected to continue with an empty set.
	ErrIgnoreList = errors.New("ignore list unavailable")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// NoDocumentsError represents a check run that received zero documents.
// It is a user-input condition, not a processing failure.
type NoDocumentsError struct{}

func (e *NoDocumentsError) Error() string {
	return "no documents provided: upload at least one text file before running a check"
}

func (e *NoDocumentsError) Is(target error) bool {
	return target == ErrNoDocuments
}

// NewNoDocumentsError creates a new NoDocumentsError
func NewNoDocumentsError() *NoDocumentsError {
	return &NoDocumentsError{}
}

// DictionaryNotLoadedError represents an attempt to process documents before
// the dictionary initialization step completed.
type DictionaryNotLoadedError struct {
	Reason string
}

func (e *DictionaryNotLoadedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("dictionary not loaded: %s", e.Reason)
	}
	return "dictionary not loaded"
}

func (e *DictionaryNotLoadedError) Is(target error) bool {
	return target == ErrDictionaryNotLoaded
}

// NewDictionaryNotLoadedError creates a new DictionaryNotLoadedError
func NewDictionaryNotLoadedError(reason string) *DictionaryNotLoadedError {
	return &DictionaryNotLoadedError{Reason: reason}
}

// IgnoreListError represents a failed ignore-list load with context.
// Processing continues with an empty ignore set when this is returned.
type IgnoreListError struct {
	Cause error
}

func (e *IgnoreListError) Error() string {
	return fmt.Sprintf("failed to load ignore list: %v", e.Cause)
}

func (e *IgnoreListError) Is(target error) bool {
	return target == ErrIgnoreList
}

func (e *IgnoreListError) Unwrap() error {
	return e.Cause
}

// NewIgnoreListError creates a new IgnoreListError wrapping the underlying cause
func NewIgnoreListError(cause error) *IgnoreListError {
	return &IgnoreListError{Cause: cause}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
