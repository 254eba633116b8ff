package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	// Failures found before any network activity
	ErrorTypeInputMissing ErrorType = "input_missing"
	ErrorTypeURLInvalid   ErrorType = "url_invalid"

	// Failures while delivering or reported by the caller
	ErrorTypeTransport       ErrorType = "transport"
	ErrorTypeBusinessFailure ErrorType = "business_failure"

	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// ResponseError represents a structured error with context
type ResponseError struct {
	Type    ErrorType
	Message string
	Context map[string]interface{}
	Cause   error
}

// Error implements the error interface. An error with no message of its own
// reports its cause's text unchanged.
func (e *ResponseError) Error() string {
	if e.Cause != nil {
		if e.Message == "" {
			return e.Cause.Error()
		}
		return fmt.Sprintf("%s: %s", e.Message, e.Cause.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error for error unwrapping
func (e *ResponseError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches a specific type
func (e *ResponseError) Is(target error) bool {
	if targetErr, ok := target.(*ResponseError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// WithContext adds context information to the error
func (e *ResponseError) WithContext(key string, value interface{}) *ResponseError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new ResponseError
func New(errType ErrorType, message string) *ResponseError {
	return &ResponseError{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, message string) *ResponseError {
	return &ResponseError{
		Type:    errType,
		Message: message,
		Context: make(map[string]interface{}),
		Cause:   err,
	}
}

// Wrapf wraps an existing error with formatted message
func Wrapf(err error, errType ErrorType, format string, args ...interface{}) *ResponseError {
	return Wrap(err, errType, fmt.Sprintf(format, args...))
}

// Newf creates a new ResponseError with formatted message
func Newf(errType ErrorType, format string, args ...interface{}) *ResponseError {
	return New(errType, fmt.Sprintf(format, args...))
}

// IsType checks if an error, or any error it wraps, is of a specific type
func IsType(err error, errType ErrorType) bool {
	var rErr *ResponseError
	if stderrors.As(err, &rErr) {
		return rErr.Type == errType
	}
	return false
}

// GetType returns the error type, or ErrorTypeInternal if not a ResponseError
func GetType(err error) ErrorType {
	var rErr *ResponseError
	if stderrors.As(err, &rErr) {
		return rErr.Type
	}
	return ErrorTypeInternal
}

// GetContext returns context information from the error
func GetContext(err error) map[string]interface{} {
	var rErr *ResponseError
	if stderrors.As(err, &rErr) {
		return rErr.Context
	}
	return nil
}
