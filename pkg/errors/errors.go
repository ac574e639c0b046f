// Package errors provides custom error types for the datakit system.
// These errors enable programmatic error checking with errors.Is while
// keeping messages descriptive enough for debugging.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the datakit system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInterceptor indicates that a value does not implement
	// the Interceptor interface
	ErrInvalidInterceptor = errors.New("invalid interceptor")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	Name     string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in the catalog", e.Resource, e.Name)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, name string) *NotFoundError {
	return &NotFoundError{Resource: resource, Name: name}
}

// InterceptorError represents a registration failure caused by a value
// that does not satisfy the Interceptor interface
type InterceptorError struct {
	Value   any
	Message string
}

// Error implements the error interface
func (e *InterceptorError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("value of type %T is not an interceptor: %s", e.Value, e.Message)
	}
	return fmt.Sprintf("value of type %T is not an interceptor", e.Value)
}

// Is implements errors.Is support
func (e *InterceptorError) Is(target error) bool {
	return target == ErrInvalidInterceptor
}

// NewInterceptorError creates a new InterceptorError
func NewInterceptorError(value any, message string) *InterceptorError {
	return &InterceptorError{Value: value, Message: message}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// HandleError represents an error raised by a resource handle during
// load or save
type HandleError struct {
	Operation string // "load" or "save"
	Resource  string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *HandleError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
	}
	return fmt.Sprintf("failed to %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *HandleError) Unwrap() error {
	return e.Err
}

// NewHandleError creates a new HandleError
func NewHandleError(operation, resource string, err error) *HandleError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &HandleError{
		Operation: operation,
		Resource:  resource,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInterceptor checks if an error is an interceptor conformance error
func IsInvalidInterceptor(err error) bool {
	return errors.Is(err, ErrInvalidInterceptor)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// Helper wrapping functions for common patterns

// WrapHandle wraps an error as a HandleError
func WrapHandle(operation, resource string, err error) error {
	if err == nil {
		return nil
	}
	return NewHandleError(operation, resource, err)
}

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}
