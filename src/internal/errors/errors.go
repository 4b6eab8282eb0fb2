// Package errors provides domain-specific error types for the ikuai-ipgroups application.
//
// Errors carry an error code so callers can decide how to recover: fetch
// failures and empty scopes are skipped, I/O failures abort a pipeline.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeConfig indicates a configuration loading error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeValidation indicates a configuration validation error.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeFetch indicates a source could not be downloaded.
	ErrCodeFetch ErrorCode = "FETCH_ERROR"

	// ErrCodeNoData indicates a scope produced no CIDRs after aggregation.
	ErrCodeNoData ErrorCode = "NO_DATA"

	// ErrCodeIO indicates an output file could not be removed or written.
	ErrCodeIO ErrorCode = "IO_ERROR"
)

// Sentinels for errors.Is checks. Matching is done by code only.
var (
	ErrConfig     = New(ErrCodeConfig, "configuration error")
	ErrValidation = New(ErrCodeValidation, "validation error")
	ErrFetch      = New(ErrCodeFetch, "fetch failed")
	ErrNoData     = New(ErrCodeNoData, "no data")
	ErrIO         = New(ErrCodeIO, "i/o failure")
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a new configuration error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, cause error) *Error {
	return Wrap(ErrCodeValidation, message, cause)
}

// NewFetchError creates a new fetch error.
func NewFetchError(message string, cause error) *Error {
	return Wrap(ErrCodeFetch, message, cause)
}

// NewNoDataError creates an error for a scope that produced no CIDRs.
func NewNoDataError(scope string) *Error {
	return New(ErrCodeNoData, fmt.Sprintf("no CIDRs collected for %s", scope))
}

// NewIOError creates a new file i/o error.
func NewIOError(message string, cause error) *Error {
	return Wrap(ErrCodeIO, message, cause)
}
