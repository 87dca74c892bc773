package errors

import (
	"net/http"

	"alertradar/internal/errors"
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
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// WithCause returns an error that matches e under errors.Is while keeping cause in the chain.
func (e *BaseError) WithCause(cause error) error {
	if cause == nil {
		return e
	}

	return &causedError{BaseError: e, cause: cause}
}

// Is matches any BaseError with the same business error code, so copies made by WithDetails still match.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
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

type causedError struct {
	*BaseError
	cause error
}

func (e *causedError) Error() string {
	return e.message + ": " + e.cause.Error()
}

func (e *causedError) Details() string {
	if e.details != "" {
		return e.details
	}

	return e.cause.Error()
}

func (e *causedError) Unwrap() []error {
	return []error{e.BaseError, e.cause}
}

// Predefined error types
var (
	// ErrLocationUnavailable means no current position was supplied; retry once a fix exists.
	ErrLocationUnavailable = NewBaseError(
		http.StatusBadRequest,
		"LOCATION_UNAVAILABLE",
		"Current location is unavailable",
		"",
	)

	// ErrWriteFailure means the alert store rejected an insert. Not retried automatically.
	ErrWriteFailure = NewBaseError(
		http.StatusServiceUnavailable,
		"WRITE_FAILURE",
		"Failed to store alert",
		"",
	)

	// ErrQueryFailure means an alert store read failed.
	ErrQueryFailure = NewBaseError(
		http.StatusServiceUnavailable,
		"QUERY_FAILURE",
		"Failed to query alerts",
		"",
	)

	// ErrDispatchFailure is a per-recipient push failure. It never aborts a fanout batch.
	ErrDispatchFailure = NewBaseError(
		http.StatusBadGateway,
		"DISPATCH_FAILURE",
		"Failed to dispatch push notification",
		"",
	)

	ErrInvalidRadius = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RADIUS",
		"Radius must be positive and within the allowed maximum",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"Latitude must be within [-90, 90] and longitude within [-180, 180]",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Invalid or expired token",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
