package common

import (
	"errors"
	"net/http"
)

// ErrorKind classifies an application error for transport mapping
type ErrorKind string

const (
	KindNotFound     ErrorKind = "not_found"     // referenced vehicle or booking does not exist
	KindUnavailable  ErrorKind = "unavailable"   // vehicle not bookable
	KindConflict     ErrorKind = "conflict"      // operation already performed
	KindInvalidInput ErrorKind = "invalid_input" // malformed date or numeric input
	KindInternal     ErrorKind = "internal"
)

// AppError is the error type returned by the domain services
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates an AppError for a missing record
func NewNotFoundError(message string, err error) *AppError {
	return &AppError{Kind: KindNotFound, Message: message, Err: err}
}

// NewUnavailableError creates an AppError for a vehicle that cannot be booked
func NewUnavailableError(message string) *AppError {
	return &AppError{Kind: KindUnavailable, Message: message}
}

// NewConflictError creates an AppError for an operation that was already performed
func NewConflictError(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

// NewBadRequestError creates an AppError for invalid input
func NewBadRequestError(message string, err error) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: message, Err: err}
}

// NewInternalServerError creates an AppError for an unexpected failure
func NewInternalServerError(message string) *AppError {
	return &AppError{Kind: KindInternal, Message: message}
}

// HTTPStatus maps an error to the HTTP status code it should be served with
func HTTPStatus(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}

	switch appErr.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable, KindConflict:
		return http.StatusConflict
	case KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
