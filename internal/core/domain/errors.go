// Package domain defines the core domain models for kappa.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a domain error with a structured error code.
type DomainError struct {
	Code    string // Error code (e.g., "KP-DROP-4001")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support. Two domain errors match by code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// Wrap wraps an error with this domain error as the cause.
func (e *DomainError) Wrap(cause error) *DomainError {
	return e.WithCause(cause)
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ============================================================================
// Argument Errors (ARGS)
// ============================================================================

var (
	// ErrMissingArguments indicates a command was given too few arguments.
	ErrMissingArguments = NewDomainError("KP-ARGS-4000", "missing arguments")
)

// ============================================================================
// Drop Errors (DROP)
// ============================================================================

var (
	// ErrInvalidDropType indicates a type outside the four known literals.
	ErrInvalidDropType = NewDomainError("KP-DROP-4001", "invalid drop type")

	// ErrInvalidStock indicates a stock value that is not a 32-bit integer.
	ErrInvalidStock = NewDomainError("KP-DROP-4002", "invalid stock")

	// ErrInvalidDropField indicates an edit of an unknown field.
	ErrInvalidDropField = NewDomainError("KP-DROP-4003", "invalid drop field")
)

// ============================================================================
// Remote Errors (NET, RESP)
// ============================================================================

var (
	// ErrTransport indicates the request never produced a response
	// (connection refused, DNS failure, timeout).
	ErrTransport = NewDomainError("KP-NET-5030", "transport failure")

	// ErrMalformedResponse indicates a response that does not match the
	// expected schema, including error statuses.
	ErrMalformedResponse = NewDomainError("KP-RESP-5020", "malformed response")
)
