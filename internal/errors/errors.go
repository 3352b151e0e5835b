package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes
const (
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeDuplicate  = "DUPLICATE_NAME"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// Process exit statuses reported for each error code.
const (
	StatusInternal   = 1
	StatusValidation = 2
	StatusNotFound   = 3
	StatusDuplicate  = 4
)

// AppError represents an application error with an exit status and error code
type AppError struct {
	Code    string // Error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Message string // Human-readable error message
	Status  int    // Process exit status
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, name interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s with name '%v' does not exist", resource, name),
		Status:  StatusNotFound,
	}
}

// NewMissingReferenceError creates a NOT_FOUND error for names that refer to nothing
func NewMissingReferenceError(resource string, names []string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("referenced %s does not exist: %s", resource, strings.Join(names, ", ")),
		Status:  StatusNotFound,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  StatusValidation,
	}
}

// NewDuplicateError creates a new DUPLICATE_NAME error
func NewDuplicateError(resource string, name string) *AppError {
	return &AppError{
		Code:    ErrCodeDuplicate,
		Message: fmt.Sprintf("%s with name '%s' already exists", resource, name),
		Status:  StatusDuplicate,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal error",
		Status:  StatusInternal,
		Err:     err,
	}
}

// As returns the first AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Message returns the user-facing message of err.
func Message(err error) string {
	if appErr, ok := As(err); ok {
		if appErr.Code == ErrCodeInternal && appErr.Err != nil {
			return fmt.Sprintf("%s: %v", appErr.Message, appErr.Err)
		}
		return appErr.Message
	}
	return err.Error()
}

// ExitStatus maps err to a process exit status. nil maps to 0 and errors
// that are not AppErrors are internal.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	if appErr, ok := As(err); ok && appErr.Status > 0 {
		return appErr.Status
	}
	return StatusInternal
}

func hasCode(err error, code string) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}

func IsNotFound(err error) bool   { return hasCode(err, ErrCodeNotFound) }
func IsValidation(err error) bool { return hasCode(err, ErrCodeValidation) }
func IsDuplicate(err error) bool  { return hasCode(err, ErrCodeDuplicate) }
