package apperrors

import "errors"

// Common errors
var (
	// Request errors
	ErrBadRequest = errors.New("bad request")
	ErrInvalidID  = errors.New("invalid id")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Store errors
	ErrStudentNotFound  = errors.New("student not found")
	ErrPersistenceError = errors.New("persistence error")
)

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

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewPersistenceError wraps a store-layer failure. The wrapped error keeps
// the detail for logs; clients only ever see a generic message.
func NewPersistenceError(err error) error {
	return &CustomError{
		Err:     ErrPersistenceError,
		Message: "persistence error: " + err.Error(),
	}
}
