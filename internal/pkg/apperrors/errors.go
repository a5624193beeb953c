package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionInvalid     = errors.New("invalid session")
	ErrSessionRevoked     = errors.New("session revoked")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Configuration errors
	ErrMissingDatabaseURL = errors.New("database connection string is required")
)

// Entity errors. Each one matches ErrResourceNotFound under errors.Is.
var (
	ErrUserNotFound       = &CustomError{Err: ErrResourceNotFound, Message: "user not found"}
	ErrJobNotFound        = &CustomError{Err: ErrResourceNotFound, Message: "job not found"}
	ErrCategoryNotFound   = &CustomError{Err: ErrResourceNotFound, Message: "category not found"}
	ErrDepartmentNotFound = &CustomError{Err: ErrResourceNotFound, Message: "department not found"}
	ErrFileNotFound       = &CustomError{Err: ErrResourceNotFound, Message: "file not found"}

	ErrEmailAlreadyExists = &CustomError{Err: ErrResourceAlreadyExists, Message: "User with this email already exists"}
)

// External service errors
var (
	ErrGeocodingFailed = errors.New("could not get coordinates for the address")
	ErrMapFetchFailed  = errors.New("could not fetch static map")
	ErrFileDelete      = errors.New("error deleting file")
)

// NewResourceNotFoundError wraps a not-found sentinel with a specific message
func NewResourceNotFoundError(err error, message string) error {
	if err == nil {
		err = ErrResourceNotFound
	}
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NotFoundf formats a not-found message around the given entity sentinel
func NotFoundf(err error, format string, args ...interface{}) error {
	return NewResourceNotFoundError(err, fmt.Sprintf(format, args...))
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether err matches target or any of errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

