package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the gofunnel library

var (
	// ErrClosed indicates that an operation was attempted on a closed channel
	ErrClosed = errors.New("channel is closed")

	// ErrTimeout indicates that an operation gave up waiting before data arrived
	ErrTimeout = errors.New("operation timed out")

	// ErrNoReceiver indicates that the receiving side has been released
	ErrNoReceiver = errors.New("receiver is gone")

	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// IsRetryable returns true if the error indicates a condition that might
// be resolved by retrying the operation
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsTerminal returns true if the error indicates a condition that no amount
// of retrying can resolve
func IsTerminal(err error) bool {
	return errors.Is(err, ErrClosed) || errors.Is(err, ErrNoReceiver)
}

// ValidationError describes a configuration value that failed validation
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError for the given module and field
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a remediation hint and returns the same error for chaining
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap lets errors.Is match a ValidationError against ErrInvalidConfiguration
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// OperationError records the failure of a named operation together with the
// module it belongs to and optional context
type OperationError struct {
	Module    string
	Operation string
	Cause     error
	Context   string
}

// NewOperationError creates an OperationError wrapping cause
func NewOperationError(module, operation string, cause error) *OperationError {
	return &OperationError{
		Module:    module,
		Operation: operation,
		Cause:     cause,
	}
}

// WithContext attaches context and returns the same error for chaining
func (e *OperationError) WithContext(ctx string) *OperationError {
	e.Context = ctx
	return e
}

// Error implements the error interface
func (e *OperationError) Error() string {
	msg := fmt.Sprintf("%s.%s failed: %v", e.Module, e.Operation, e.Cause)
	if e.Context != "" {
		msg += fmt.Sprintf(" (%s)", e.Context)
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *OperationError) Unwrap() error {
	return e.Cause
}

// IsValidationError reports whether err is or wraps a ValidationError
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
