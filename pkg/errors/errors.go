// Package errors provides structured, code-carrying errors for repolist.
// Codes are stable so callers and tests can branch on the kind of failure
// without matching message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Listing errors
	ErrListFailed          ErrorCode = "LIST_FAILED"
	ErrLocationNotFound    ErrorCode = "LOCATION_NOT_FOUND"
	ErrPathNotFound        ErrorCode = "PATH_NOT_FOUND"
	ErrRevisionUnsupported ErrorCode = "REVISION_UNSUPPORTED"

	// Output errors
	ErrOutput ErrorCode = "OUTPUT"
)

// ListError represents a structured error with code and details
type ListError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ListError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ListError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ListError) Is(target error) bool {
	var targetErr *ListError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ListError with the given code and message
func New(code ErrorCode, message string) *ListError {
	return &ListError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ListError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ListError {
	return &ListError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ListError
func Wrap(err error, code ErrorCode, message string) *ListError {
	if err == nil {
		return nil
	}
	return &ListError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ListError {
	if err == nil {
		return nil
	}
	return &ListError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ListError) WithDetail(key string, value interface{}) *ListError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var listErr *ListError
	if errors.As(err, &listErr) {
		return listErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ListError
func GetErrorCode(err error) ErrorCode {
	var listErr *ListError
	if errors.As(err, &listErr) {
		return listErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ListError
func GetErrorDetails(err error) map[string]interface{} {
	var listErr *ListError
	if errors.As(err, &listErr) {
		return listErr.Details
	}
	return nil
}
