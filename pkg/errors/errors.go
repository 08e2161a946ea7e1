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
	ErrAborted      ErrorCode = "ABORTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Installation discovery errors. These are fatal and abort the run
	// before anything is touched.
	ErrPrefixNotFound   ErrorCode = "PREFIX_NOT_FOUND"
	ErrManifestEmpty    ErrorCode = "MANIFEST_EMPTY"
	ErrManifestInvalid  ErrorCode = "MANIFEST_INVALID"
	ErrManifestFetch    ErrorCode = "MANIFEST_FETCH"
	ErrManifestNotFound ErrorCode = "MANIFEST_NOT_FOUND"

	// Per-path removal errors. These are recorded and the run continues.
	ErrRemoveFailed ErrorCode = "REMOVE_FAILED"
	ErrUnlinkFailed ErrorCode = "UNLINK_FAILED"
	ErrIndexFailed  ErrorCode = "INDEX_FAILED"
	ErrReadOnly     ErrorCode = "READ_ONLY"

	// External process errors
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
)

// UnbrewError is the base error type for all unbrew errors
type UnbrewError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *UnbrewError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *UnbrewError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *UnbrewError) Is(target error) bool {
	var targetErr *UnbrewError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new UnbrewError with the given code and message
func New(code ErrorCode, message string) *UnbrewError {
	return &UnbrewError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new UnbrewError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *UnbrewError {
	return &UnbrewError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an UnbrewError
func Wrap(err error, code ErrorCode, message string) *UnbrewError {
	if err == nil {
		return nil
	}
	return &UnbrewError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *UnbrewError {
	if err == nil {
		return nil
	}
	return &UnbrewError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *UnbrewError) WithDetail(key string, value interface{}) *UnbrewError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var unbrewErr *UnbrewError
	if errors.As(err, &unbrewErr) {
		return unbrewErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an UnbrewError
func GetErrorCode(err error) ErrorCode {
	var unbrewErr *UnbrewError
	if errors.As(err, &unbrewErr) {
		return unbrewErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an UnbrewError
func GetErrorDetails(err error) map[string]interface{} {
	var unbrewErr *UnbrewError
	if errors.As(err, &unbrewErr) {
		return unbrewErr.Details
	}
	return nil
}

// IsFatal reports whether err belongs to the abort-before-mutation class.
func IsFatal(err error) bool {
	switch GetErrorCode(err) {
	case ErrPrefixNotFound, ErrManifestEmpty, ErrManifestInvalid,
		ErrManifestFetch, ErrManifestNotFound, ErrConfigLoad, ErrConfigParse:
		return true
	}
	return false
}
