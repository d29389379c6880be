package errors

import (
	"fmt"
)

// ParseError represents a content document that could not be decoded, with
// optional line metadata taken from the YAML decoder.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures content or widget setup problems. Field uses the
// YAML path of the offending value when one is known.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CopyError reports a clipboard write that failed for one copyable item.
type CopyError struct {
	Index int
	Err   error
}

// NewCopyError constructs a CopyError for the item at index.
func NewCopyError(index int, err error) error {
	return &CopyError{Index: index, Err: err}
}

func (e *CopyError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("copy error on item %d: %v", e.Index, e.Err)
}

// Unwrap exposes the root error.
func (e *CopyError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
