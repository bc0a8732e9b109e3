package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Student errors
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrStudentAlreadyExists = errors.New("student already exists")
)

// Admin errors
var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrAdminAlreadyExists = errors.New("admin with this email already exists")
)

// Company errors
var (
	ErrCompanyNotFound = errors.New("company not found")
)

// Event errors
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrEventNotOpen       = errors.New("event not available for registration")
	ErrInvalidEventWindow = errors.New("registration end must be after registration start")
)

// Participation errors
var (
	ErrAlreadyRegistered       = errors.New("already registered for this event")
	ErrParticipationNotFound   = errors.New("participation record not found")
	ErrInvalidStatusTransition = errors.New("status transition not allowed")
	ErrInvalidStatus           = errors.New("unrecognized status value")
)

// Message errors
var (
	ErrMessageNotFound = errors.New("message not found")
)

// File errors
var (
	ErrFileTooLarge    = errors.New("file exceeds the maximum allowed size")
	ErrInvalidFileType = errors.New("unsupported file type")
)

// CustomError represents application-specific errors with additional context.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap so errors.Is sees the sentinel.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping a sentinel with a message.
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// NewNotFoundError creates a resource-not-found error with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message.
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewBadRequestError creates a bad-request error with a message.
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}
