package archipelago

import (
	"errors"
	"fmt"
)

// ErrorCode represents the type of error that occurred
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota
	TraversalErrorCode
	MissingConfigErrorCode
	LoadErrorCode
	ValidationErrorCode
	HookErrorCode
	RegistrationErrorCode
	ConfigurationErrorCode
)

// String returns the string representation of the error code
func (c ErrorCode) String() string {
	switch c {
	case TraversalErrorCode:
		return "TraversalError"
	case MissingConfigErrorCode:
		return "MissingConfigError"
	case LoadErrorCode:
		return "LoadError"
	case ValidationErrorCode:
		return "ValidationError"
	case HookErrorCode:
		return "HookError"
	case RegistrationErrorCode:
		return "RegistrationError"
	case ConfigurationErrorCode:
		return "ConfigurationError"
	default:
		return "UnknownError"
	}
}

// ErrMissingConfig is the cause of a strict-mode failure for a module that exports no config
var ErrMissingConfig = errors.New("no config exported")

// Error is returned by every stage of a discovery run
type Error struct {
	Code    ErrorCode
	Path    string // relative module path or directory the error is about
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying error cause for error chain inspection
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(code ErrorCode, path, message string, cause error) *Error {
	return &Error{Code: code, Path: path, Message: message, Cause: cause}
}

// CodeOf returns the code of the first *Error in err's chain
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return UnknownErrorCode
}
