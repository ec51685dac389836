package errors

import (
	"fmt"
	"net/http"

	"tourguard/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any AppError carrying the same business code, so a sentinel
// compares equal to copies produced by WithDetails.
func (e *BaseError) Is(target error) bool {
	var appErr AppError
	if !errors.As(target, &appErr) {
		return false
	}

	return appErr.ErrorCode() == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithDetailsf adds formatted detail information
func (e *BaseError) WithDetailsf(format string, args ...any) *BaseError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// Predefined error types
var (
	// ErrValidation is returned for malformed input; nothing has been mutated.
	ErrValidation = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// ErrUnauthorized is returned when the caller cannot be verified.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Invalid or expired token",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// ErrIllegalTransition is returned when a state machine rule is violated; state is unchanged.
	ErrIllegalTransition = NewBaseError(
		http.StatusConflict,
		"ILLEGAL_TRANSITION",
		"Transition not allowed",
		"",
	)

	// ErrConcurrentModification is returned when a compare-and-swap lost a race.
	// The caller must re-fetch and retry.
	ErrConcurrentModification = NewBaseError(
		http.StatusConflict,
		"CONCURRENT_MODIFICATION",
		"Resource was modified concurrently, re-fetch and retry",
		"",
	)

	// ErrStaleLocation is returned when a location update is older than the stored snapshot.
	ErrStaleLocation = NewBaseError(
		http.StatusConflict,
		"STALE_LOCATION",
		"Location update is older than the current one",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrGeofenceNotFound = NewBaseError(
		http.StatusNotFound,
		"GEOFENCE_NOT_FOUND",
		"Geofence not found",
		"",
	)

	ErrIncidentNotFound = NewBaseError(
		http.StatusNotFound,
		"INCIDENT_NOT_FOUND",
		"Incident not found",
		"",
	)

	ErrAlertNotFound = NewBaseError(
		http.StatusNotFound,
		"ALERT_NOT_FOUND",
		"Alert not found",
		"",
	)

	// ErrPersistence is the sentinel every PersistenceError matches.
	ErrPersistence = NewBaseError(
		http.StatusInternalServerError,
		"PERSISTENCE_FAILED",
		"Storage operation failed",
		"",
	)
)

// PersistenceError represents an external store failure, implementing the AppError interface
type PersistenceError struct {
	err     error
	details string
}

// NewPersistenceError wraps a store failure.
func NewPersistenceError(err error, details string) AppError {
	return &PersistenceError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error.
func (e *PersistenceError) Unwrap() error {
	return e.err
}

// Is matches ErrPersistence.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// HTTPCode returns the HTTP status code
func (e *PersistenceError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *PersistenceError) ErrorCode() string {
	return ErrPersistence.ErrorCode()
}

// Message returns the user-friendly error message
func (e *PersistenceError) Message() string {
	return ErrPersistence.Message()
}

// Details returns detailed error information
func (e *PersistenceError) Details() string {
	return e.details
}
