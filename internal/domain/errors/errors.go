// Package errors defines the application error taxonomy shared by the
// domain, use cases and the HTTP delivery layer.
package errors

import (
	"net/http"

	"adchecker/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
// Two BaseErrors match under errors.Is when they carry the same business code,
// so copies made by WithDetails or WithCause still match the predefined value.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	cause     error
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
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}

	return e.message
}

// Is matches any BaseError with the same business code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Unwrap exposes the underlying cause, if any.
func (e *BaseError) Unwrap() error {
	return e.cause
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
	clone := *e
	clone.details = details

	return &clone
}

// WithCause attaches the underlying error and a stack trace.
func (e *BaseError) WithCause(cause error) error {
	clone := *e
	clone.cause = cause

	return errors.WithStack(&clone)
}

// Predefined error types
var (
	// Configuration errors are fatal at startup.
	ErrConfiguration = NewBaseError(
		http.StatusInternalServerError,
		"CONFIGURATION_ERROR",
		"Server configuration error",
		"",
	)

	// Session errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Not authenticated",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Reauthorization-required errors
	ErrNoCredential = NewBaseError(
		http.StatusUnauthorized,
		"NO_CREDENTIAL",
		"No access token found",
		"",
	)

	ErrUpstreamAuth = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token expired",
		"",
	)

	ErrCredentialUnreadable = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_UNREADABLE",
		"Stored access token could not be read",
		"",
	)

	// Upstream errors
	ErrUpstream = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_ERROR",
		"Failed to fetch ad accounts",
		"",
	)

	// OAuth exchange errors
	ErrAuthorizationDenied = NewBaseError(
		http.StatusBadRequest,
		"AUTHORIZATION_DENIED",
		"Authorization was not granted",
		"",
	)

	ErrInvalidState = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATE",
		"OAuth state mismatch",
		"",
	)

	ErrTokenExchange = NewBaseError(
		http.StatusBadGateway,
		"TOKEN_EXCHANGE_FAILED",
		"Failed to exchange authorization code",
		"",
	)

	ErrIdentityFetch = NewBaseError(
		http.StatusBadGateway,
		"IDENTITY_FETCH_FAILED",
		"Failed to fetch user identity",
		"",
	)

	ErrExchangeTransaction = NewBaseError(
		http.StatusInternalServerError,
		"EXCHANGE_TRANSACTION_FAILED",
		"Failed to persist user credentials",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Persistence errors
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// RequiresReauth reports whether err means the user must go through the
// OAuth flow again before account data can be fetched.
func RequiresReauth(err error) bool {
	return errors.Is(err, ErrNoCredential) ||
		errors.Is(err, ErrUpstreamAuth) ||
		errors.Is(err, ErrCredentialUnreadable)
}

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

// Unwrap returns the driver error.
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
