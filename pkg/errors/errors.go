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

	// Precondition errors: raised before anything on disk is touched
	ErrSourceMissing ErrorCode = "SOURCE_MISSING"
	ErrTargetExists  ErrorCode = "TARGET_EXISTS"

	// Operation errors: a mutating filesystem call failed
	ErrSymlinkCreate       ErrorCode = "SYMLINK_CREATE"
	ErrCopyFailed          ErrorCode = "COPY_FAILED"
	ErrFallbackExhausted   ErrorCode = "FALLBACK_EXHAUSTED"
	ErrUnsupportedFileType ErrorCode = "UNSUPPORTED_FILE_TYPE"
	ErrDirCreate           ErrorCode = "DIR_CREATE"
	ErrRemoveFailed        ErrorCode = "REMOVE_FAILED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Manifest errors
	ErrManifestRead  ErrorCode = "MANIFEST_READ"
	ErrManifestWrite ErrorCode = "MANIFEST_WRITE"
)

// Kind groups error codes by how a caller is expected to react to them.
type Kind int

const (
	// KindOther covers codes that are neither precondition nor operation failures.
	KindOther Kind = iota
	// KindPrecondition means the caller violated an invariant; nothing was mutated.
	KindPrecondition
	// KindOperation means a mutating filesystem call failed.
	KindOperation
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition"
	case KindOperation:
		return "operation"
	default:
		return "other"
	}
}

// Kind returns the kind an error code belongs to
func (c ErrorCode) Kind() Kind {
	switch c {
	case ErrSourceMissing, ErrTargetExists, ErrInvalidInput:
		return KindPrecondition
	case ErrSymlinkCreate, ErrCopyFailed, ErrFallbackExhausted,
		ErrUnsupportedFileType, ErrDirCreate, ErrRemoveFailed:
		return KindOperation
	default:
		return KindOther
	}
}

// LinkerError represents a structured error with code and details
type LinkerError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LinkerError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LinkerError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LinkerError) Is(target error) bool {
	var targetErr *LinkerError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Kind returns the kind of the error's code
func (e *LinkerError) Kind() Kind {
	return e.Code.Kind()
}

// New creates a new LinkerError with the given code and message
func New(code ErrorCode, message string) *LinkerError {
	return &LinkerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LinkerError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LinkerError {
	return &LinkerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LinkerError
func Wrap(err error, code ErrorCode, message string) *LinkerError {
	if err == nil {
		return nil
	}
	return &LinkerError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LinkerError {
	if err == nil {
		return nil
	}
	return &LinkerError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LinkerError) WithDetail(key string, value interface{}) *LinkerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *LinkerError) WithDetails(details map[string]interface{}) *LinkerError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var linkerErr *LinkerError
	if errors.As(err, &linkerErr) {
		return linkerErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LinkerError
func GetErrorCode(err error) ErrorCode {
	var linkerErr *LinkerError
	if errors.As(err, &linkerErr) {
		return linkerErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a LinkerError
func GetErrorDetails(err error) map[string]interface{} {
	var linkerErr *LinkerError
	if errors.As(err, &linkerErr) {
		return linkerErr.Details
	}
	return nil
}

// KindOf returns the kind of the outermost LinkerError in the chain.
func KindOf(err error) Kind {
	var linkerErr *LinkerError
	if errors.As(err, &linkerErr) {
		return linkerErr.Kind()
	}
	return KindOther
}

// IsPrecondition reports whether err signals a violated precondition.
func IsPrecondition(err error) bool {
	return KindOf(err) == KindPrecondition
}

// IsOperation reports whether err signals a failed filesystem operation.
func IsOperation(err error) bool {
	return KindOf(err) == KindOperation
}
