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
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Link resolution errors
	ErrTargetResolve ErrorCode = "TARGET_RESOLVE"
	ErrDirAccess     ErrorCode = "DIR_ACCESS"
	ErrEntryStat     ErrorCode = "ENTRY_STAT"
	ErrLinkRead      ErrorCode = "LINK_READ"
	ErrLinkResolve   ErrorCode = "LINK_RESOLVE"

	// Device enumeration errors
	ErrDeviceDir ErrorCode = "DEVICE_DIR"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// LsinputError represents a structured error with code and details
type LsinputError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LsinputError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LsinputError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LsinputError) Is(target error) bool {
	var targetErr *LsinputError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LsinputError with the given code and message
func New(code ErrorCode, message string) *LsinputError {
	return &LsinputError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LsinputError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LsinputError {
	return &LsinputError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LsinputError
func Wrap(err error, code ErrorCode, message string) *LsinputError {
	if err == nil {
		return nil
	}
	return &LsinputError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LsinputError {
	if err == nil {
		return nil
	}
	return &LsinputError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LsinputError) WithDetail(key string, value interface{}) *LsinputError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var lsErr *LsinputError
	if errors.As(err, &lsErr) {
		return lsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LsinputError
func GetErrorCode(err error) ErrorCode {
	var lsErr *LsinputError
	if errors.As(err, &lsErr) {
		return lsErr.Code
	}
	return ErrUnknown
}
