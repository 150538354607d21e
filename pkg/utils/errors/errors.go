// Package errors carries the typed application errors the engine reports at
// its boundaries. Inside the numeric core, invalid domains propagate as
// floating-point NaN/Inf rather than errors; only the API layer and the
// iterative solvers produce values of these types.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType classifies an application error.
type ErrorType uint

const (
	// ErrorTypeUnknown represents an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeInvalidArgument represents a malformed or missing input.
	ErrorTypeInvalidArgument
	// ErrorTypeDomain represents an input outside the mathematical domain
	// of the requested computation.
	ErrorTypeDomain
	// ErrorTypeNoConvergence represents an iterative solver that ran out of
	// iterations or left its bounds.
	ErrorTypeNoConvergence
	// ErrorTypeInternal represents an internal failure.
	ErrorTypeInternal
)

// AppError is an error with a classification.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an unclassified error.
func New(message string) error {
	return &AppError{Type: ErrorTypeUnknown, Message: message}
}

// Newf creates an unclassified error from a format string.
func Newf(format string, args ...interface{}) error {
	return &AppError{Type: ErrorTypeUnknown, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a message, preserving its classification.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	errType := ErrorTypeUnknown
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		errType = appErr.Type
	}
	return &AppError{Type: errType, Message: message, Err: err}
}

// TypeOf returns the classification of err, ErrorTypeUnknown for plain
// errors.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

// InvalidArgument creates an ErrorTypeInvalidArgument error.
func InvalidArgument(message string) error {
	return &AppError{Type: ErrorTypeInvalidArgument, Message: message}
}

// InvalidArgumentf creates an ErrorTypeInvalidArgument error from a format
// string.
func InvalidArgumentf(format string, args ...interface{}) error {
	return &AppError{Type: ErrorTypeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// Domain creates an ErrorTypeDomain error.
func Domain(message string) error {
	return &AppError{Type: ErrorTypeDomain, Message: message}
}

// NoConvergence creates an ErrorTypeNoConvergence error.
func NoConvergence(message string) error {
	return &AppError{Type: ErrorTypeNoConvergence, Message: message}
}

// Internal creates an ErrorTypeInternal error.
func Internal(message string) error {
	return &AppError{Type: ErrorTypeInternal, Message: message}
}
