// Package errors provides structured error types for the arcraiders client.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - Access to the HTTP status of a failed API request
//
// # Error Codes
//
// Error codes name the failure category rather than the call site:
//   - TRANSPORT_ERROR: non-2xx response or network failure
//   - NOT_FOUND: the API answered 404
//   - PARSE_ERROR: a response body could not be decoded as JSON
//   - EXPORT_ERROR: data could not be written to a file
//   - INVALID_*: input validation failures
//
// None of these are retried by the client. A failed request is propagated to
// the caller unchanged.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "invalid resource id: %s", id)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeTransport, origErr, "GET %s", url)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Remote API errors
	ErrCodeTransport Code = "TRANSPORT_ERROR"
	ErrCodeNotFound  Code = "NOT_FOUND"
	ErrCodeParse     Code = "PARSE_ERROR"

	// Local output errors
	ErrCodeExport Code = "EXPORT_ERROR"

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

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
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

// HTTPError records the HTTP status of a failed API request.
// It is carried as the Cause of a TRANSPORT_ERROR or NOT_FOUND [Error].
type HTTPError struct {
	StatusCode int    // HTTP status code, or 0 when no response was received
	URL        string // Request URL
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("no response from %s", e.URL)
	}
	return fmt.Sprintf("status %d from %s", e.StatusCode, e.URL)
}

// Code returns the error code for this error type.
func (e *HTTPError) Code() Code {
	if e.StatusCode == 404 {
		return ErrCodeNotFound
	}
	return ErrCodeTransport
}

// Status wraps an HTTP failure into an *Error whose code follows the status.
func Status(statusCode int, url string) *Error {
	he := &HTTPError{StatusCode: statusCode, URL: url}
	return Wrap(he.Code(), he, "API request failed")
}

// StatusCode returns the HTTP status carried by err, or 0 if there is none.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}
