// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (invalid
// operand, size limits, configuration, server) and for carrying the
// underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Error types that wrap a cause implement Unwrap() to support errors.Is/errors.As.
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the
// application, used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess             = 0   // Indicates successful execution.
	ExitErrorGeneric        = 1   // Indicates a generic error.
	ExitErrorTimeout        = 2   // Indicates the operation timed out.
	ExitErrorInvalidOperand = 3   // Indicates a malformed operand was rejected.
	ExitErrorConfig         = 4   // Indicates a configuration error.
	ExitErrorTooLarge       = 5   // Indicates an operand or transform size limit was hit.
	ExitErrorCanceled       = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// InvalidOperandError reports an operand that failed validation: empty,
// or containing a character outside '0'..'9'. The caller can recover by
// re-prompting or rejecting the request.
type InvalidOperandError struct {
	// Name identifies the offending operand ("a", "b", "x").
	Name string
	// Reason explains what made the operand invalid.
	Reason string
}

// Error returns the error message for an InvalidOperandError.
func (e InvalidOperandError) Error() string {
	return fmt.Sprintf("invalid operand %q: %s", e.Name, e.Reason)
}

// NewInvalidOperandError creates a new InvalidOperandError.
func NewInvalidOperandError(name, reason string) error {
	return InvalidOperandError{Name: name, Reason: reason}
}

// OperandTooLargeError reports that the operands exceed the digit-count
// bound derived from the field's overflow margin. The precondition of
// the algorithm is violated; retrying with the same inputs cannot succeed.
type OperandTooLargeError struct {
	// Digits is the digit count that broke the bound.
	Digits int
	// Limit is the maximum safe digit count.
	Limit int
}

// Error returns the error message for an OperandTooLargeError.
func (e OperandTooLargeError) Error() string {
	return fmt.Sprintf("operands too large: %d digits exceeds the safe limit of %d", e.Digits, e.Limit)
}

// ConvolutionTooLargeError reports that the required transform length
// would exceed the maximum supported power of two.
type ConvolutionTooLargeError struct {
	// Required is the minimal transform length the operands need.
	Required int
	// Max is the largest supported transform length.
	Max int
}

// Error returns the error message for a ConvolutionTooLargeError.
func (e ConvolutionTooLargeError) Error() string {
	return fmt.Sprintf("convolution too large: need a transform of length %d, maximum is %d", e.Required, e.Max)
}

// ConfigError represents a user configuration error, such as invalid
// flags or values. It indicates that the application cannot proceed due
// to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ServerError represents errors that occur in the HTTP server
// component. It wraps an underlying error with additional context
// specific to the server operation.
type ServerError struct {
	// Message is a descriptive message about the server error.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error returns the error message for a ServerError, combining the
// descriptive message and the underlying cause if present.
func (e ServerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e ServerError) Unwrap() error { return e.Cause }

// NewServerError creates a new ServerError with a message and optional cause.
func NewServerError(message string, cause error) error {
	return ServerError{Message: message, Cause: cause}
}

// WrapError wraps an error with additional context using fmt.Errorf and
// %w, so the result can still be inspected with errors.Is/errors.As.
// Returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or
// deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsSizeLimitError reports whether err is one of the two size-limit
// failures (operand too large, convolution too large).
func IsSizeLimitError(err error) bool {
	var opErr OperandTooLargeError
	var convErr ConvolutionTooLargeError
	return errors.As(err, &opErr) || errors.As(err, &convErr)
}
