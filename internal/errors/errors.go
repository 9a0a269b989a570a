// Package errors provides coded errors shared by the config, render and cli layers.
//
// The overlay configuration itself never produces errors. Everything that can go
// wrong around it is reported with one of the codes below so the CLI can pick an
// exit status without string matching.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies a failure.
type ErrorCode string

const (
	// ErrCodeConfiguration indicates inconsistent configuration, such as
	// input and output lists of different lengths.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION"
	// ErrCodeIO indicates a file could not be read, decoded, encoded or written.
	ErrCodeIO ErrorCode = "IO"
	// ErrCodeRender indicates the banner could not be drawn, e.g. an unknown font.
	ErrCodeRender ErrorCode = "RENDER"
	// ErrCodeValidation indicates an out-of-range value (negative or zero sizes, empty text).
	ErrCodeValidation ErrorCode = "VALIDATION"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// StructuredError carries a code, a human readable message, the underlying
// cause and optional key/value context.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a StructuredError with the same code and no message,
// which lets callers write errors.Is(err, errors.New(ErrCodeIO, "")).
func (e *StructuredError) Is(target error) bool {
	t, ok := target.(*StructuredError)
	if !ok {
		return false
	}
	return t.Message == "" && t.Code == e.Code
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Context: context}
}

// Wrap wraps an existing error with a code and message.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause, Context: context}
}

// CodeOf returns the code of the outermost StructuredError in err's chain,
// or ErrCodeInternal when there is none. A nil error has no code.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ErrCodeInternal
}
