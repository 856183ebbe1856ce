package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryUnavailable = "unavailable"
	categoryInternal    = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInternal,
		Code:           code,
		Message:        "internal server error",
		Cause:          cause,
		HttpStatusCode: 500,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

// NewUnavailableError creates a new ServiceError with category unavailable.
// It marks an external collaborator (e.g. the message bus) that stayed
// unreachable past the retry budget.
func NewUnavailableError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryUnavailable,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: 503,
	}
}

func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category       string // unavailable or internal
	Code           string // service-owned stable code (e.g. ING_9000)
	Message        string // client-safe, human-readable
	Cause          error  // wrapped underlying error
	HttpStatusCode int    // HTTP status code
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}
