// Package errors provides structured error types for vizset.
//
// Every fatal condition raised while building a dataset carries a
// machine-readable [Code], so callers (and the CLI) can tell a bad binding
// apart from an oversized graph without matching on message text.
//
// # Error Codes
//
//   - BINDING: a required role is unbound, a bound column is missing, or a
//     derived id field collides with an existing attribute
//   - SIZE_LIMIT: the edge or node count exceeds the hard ceiling
//   - UNSUPPORTED_GRAPH_TYPE: no adapter accepts the input graph
//   - CONFIGURATION: unknown wire format or unreadable config file
//
// # Usage
//
//	err := errors.New(errors.ErrCodeBinding, "column %q does not exist", name)
//	if errors.Is(err, errors.ErrCodeBinding) {
//	    // fix the binding
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeConfiguration, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Pipeline errors
	ErrCodeBinding          Code = "BINDING"
	ErrCodeSizeLimit        Code = "SIZE_LIMIT"
	ErrCodeUnsupportedGraph Code = "UNSUPPORTED_GRAPH_TYPE"
	ErrCodeConfiguration    Code = "CONFIGURATION"

	// Input errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// coder is implemented by typed errors that are not *Error but still
// belong to a code category.
type coder interface {
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for the outermost coded error.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no error in the chain carries a code.
func GetCode(err error) Code {
	for err != nil {
		switch e := err.(type) {
		case *Error:
			return e.Code
		case coder:
			return e.Code()
		}
		err = errors.Unwrap(err)
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Entity names used by SizeLimitError.
const (
	EntityEdges = "edges"
	EntityNodes = "nodes"
)

// SizeLimitError reports a graph that exceeds the accepted entity count.
type SizeLimitError struct {
	Entity string // EntityEdges or EntityNodes
	Count  int
	Limit  int
}

// Error implements the error interface.
func (e *SizeLimitError) Error() string {
	return fmt.Sprintf("Maximum number of %s (8M) exceeded: %d.", e.Entity, e.Count)
}

// Code returns the error code for this error type.
func (e *SizeLimitError) Code() Code {
	return ErrCodeSizeLimit
}
