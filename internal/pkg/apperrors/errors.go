package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Identity errors
	ErrUnauthorized    = errors.New("caller is not authenticated")
	ErrIdentityMissing = errors.New("unable to determine caller identity")
	ErrTokenExpired    = errors.New("token expired")
	ErrTokenInvalid    = errors.New("invalid token")
	ErrInvalidFormat   = errors.New("invalid token format")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Internal errors
	ErrInternal = errors.New("internal error")
)

// Domain errors. Each wraps its category sentinel, so errors.Is against
// ErrResourceNotFound or ErrConflict matches the whole family.

// Student errors
var (
	ErrStudentNotFound = fmt.Errorf("%w: student account", ErrResourceNotFound)
)

// Course errors
var (
	ErrCourseNotFound   = fmt.Errorf("%w: course", ErrResourceNotFound)
	ErrAlreadyEnrolled  = fmt.Errorf("%w: student already enrolled in this course", ErrConflict)
	ErrDeadlineAttached = fmt.Errorf("%w: deadline already associated with a course", ErrConflict)
)

// Deadline errors
var (
	ErrDeadlineNotFound   = fmt.Errorf("%w: deadline", ErrResourceNotFound)
	ErrAlreadyAssigned    = fmt.Errorf("%w: deadline already assigned to this student", ErrConflict)
	ErrAssignmentNotFound = fmt.Errorf("%w: assignment for this student", ErrResourceNotFound)
)

// Department errors
var (
	ErrDepartmentNotFound      = fmt.Errorf("%w: department", ErrResourceNotFound)
	ErrDepartmentAlreadyExists = fmt.Errorf("%w: department with this name already exists", ErrConflict)
	ErrAlreadyMember           = fmt.Errorf("%w: user is already a member of this department", ErrConflict)
)

// Resto errors
var (
	ErrRestoNotFound = fmt.Errorf("%w: resto", ErrResourceNotFound)
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewValidationError creates a new custom error for malformed input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
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

// Is returns whether target matches any of the errors in errList
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
	Code    string
	Details map[string]interface{}
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

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
