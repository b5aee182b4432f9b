package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Policy errors
	ErrScopeInvalid ErrorCode = "SCOPE_INVALID"
	ErrShellInvalid ErrorCode = "SHELL_INVALID"

	// External collaborator errors
	ErrExternalTool ErrorCode = "EXTERNAL_TOOL"
	ErrElevation    ErrorCode = "ELEVATION"
	ErrClone        ErrorCode = "CLONE"

	// FileSystem errors
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileRemove    ErrorCode = "FILE_REMOVE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
	ErrPathRelative  ErrorCode = "PATH_RELATIVE"
)

// ProflinkError represents a structured error with code and details
type ProflinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ProflinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ProflinkError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ProflinkError) Is(target error) bool {
	var targetErr *ProflinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ProflinkError with the given code and message
func New(code ErrorCode, message string) *ProflinkError {
	return &ProflinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ProflinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ProflinkError {
	return &ProflinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ProflinkError
func Wrap(err error, code ErrorCode, message string) *ProflinkError {
	if err == nil {
		return nil
	}
	return &ProflinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ProflinkError {
	if err == nil {
		return nil
	}
	return &ProflinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ProflinkError) WithDetail(key string, value interface{}) *ProflinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var perr *ProflinkError
	if errors.As(err, &perr) {
		return perr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ProflinkError
func GetErrorCode(err error) ErrorCode {
	var perr *ProflinkError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ErrUnknown
}
