// Package errors provides the error kinds reported by the suzu configuration
// store and its file collaborators.
//
// The store never panics at its callers. Every public operation either returns
// a value with a built-in failure representation or an error carrying one of
// the codes below, so callers can branch on the kind of failure.
//
// # Error Types
//
// ConfigError is the primary error type, containing:
//   - Code: Categorizes the error (INVALID_STATE, OPEN_FILE, etc.)
//   - Message: Human-readable error description
//   - Path: The file path or document pointer involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// A nil error means Ok.
//
// # Sentinel Errors
//
// Each code has a pre-defined sentinel:
//
//	errors.ErrInvalidParameter // missing or malformed argument
//	errors.ErrInvalidState     // store is unhealthy
//	errors.ErrOpenFile         // file could not be opened
//	errors.ErrReadFile         // file opened but reading failed
//	errors.ErrWriteFile        // file opened but writing failed
//
// # Usage
//
//	if errors.Is(err, errors.ErrInvalidState) {
//	    // store needs a Reset
//	}
//
//	switch errors.CodeOf(err) {
//	case errors.ErrCodeOpenFile:
//	    // ...
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeOK               ErrorCode = "OK"                // No error
	ErrCodeUnknown          ErrorCode = "UNKNOWN"           // Error from outside this package
	ErrCodeNoOperation      ErrorCode = "NO_OPERATION"      // Nothing was done; not necessarily a failure
	ErrCodeInvalidParameter ErrorCode = "INVALID_PARAMETER" // Invalid function argument
	ErrCodeInvalidState     ErrorCode = "INVALID_STATE"     // Object is not in a usable state
	ErrCodeOpenFile         ErrorCode = "OPEN_FILE"         // File could not be opened
	ErrCodeReadFile         ErrorCode = "READ_FILE"         // Reading an open file failed
	ErrCodeWriteFile        ErrorCode = "WRITE_FILE"        // Writing an open file failed
	ErrCodeParse            ErrorCode = "PARSE"             // Document text is malformed
	ErrCodeValidation       ErrorCode = "VALIDATION"        // Document does not match its schema
	ErrCodeInternal         ErrorCode = "INTERNAL"          // Internal/unexpected error
)

// ConfigError represents a structured error with context about the operation.
type ConfigError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Path    string    // File path or document pointer (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Code)
	}
	if e.Path != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, msg, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for error chain traversal.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *ConfigError) Is(target error) bool {
	t, ok := target.(*ConfigError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrNoOperation indicates the call did nothing.
	ErrNoOperation = &ConfigError{Code: ErrCodeNoOperation, Message: "no operation"}

	// ErrInvalidParameter indicates a required argument was missing or malformed.
	ErrInvalidParameter = &ConfigError{Code: ErrCodeInvalidParameter, Message: "invalid parameter"}

	// ErrInvalidState indicates the operation was attempted on an unhealthy store.
	ErrInvalidState = &ConfigError{Code: ErrCodeInvalidState, Message: "invalid state"}

	// ErrOpenFile indicates a file could not be opened.
	ErrOpenFile = &ConfigError{Code: ErrCodeOpenFile, Message: "cannot open file"}

	// ErrReadFile indicates a file was opened but could not be read.
	ErrReadFile = &ConfigError{Code: ErrCodeReadFile, Message: "cannot read file"}

	// ErrWriteFile indicates a file was opened but could not be written.
	ErrWriteFile = &ConfigError{Code: ErrCodeWriteFile, Message: "cannot write file"}

	// ErrParse indicates the document text is not valid.
	ErrParse = &ConfigError{Code: ErrCodeParse, Message: "malformed document"}

	// ErrValidation indicates the document does not satisfy a schema.
	ErrValidation = &ConfigError{Code: ErrCodeValidation, Message: "schema validation failed"}

	// ErrInternal indicates an unexpected fault that was contained.
	ErrInternal = &ConfigError{Code: ErrCodeInternal, Message: "internal error"}
)

// New creates an error with the specified code and message.
func New(code ErrorCode, msg string) error {
	return &ConfigError{
		Code:    code,
		Message: msg,
	}
}

// InvalidParameter creates an invalid parameter error with a custom message.
func InvalidParameter(msg string) error {
	return &ConfigError{
		Code:    ErrCodeInvalidParameter,
		Message: msg,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &ConfigError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapPath creates an error with path context, message and underlying error.
func WrapPath(code ErrorCode, path, msg string, err error) error {
	return &ConfigError{
		Code:    code,
		Message: msg,
		Path:    path,
		Err:     err,
	}
}

// CodeOf returns the code of the first ConfigError in err's chain.
// A nil error yields ErrCodeOK and a foreign error yields ErrCodeUnknown.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr.Code
	}
	return ErrCodeUnknown
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
