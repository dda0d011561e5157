package errors

import (
	"errors"
	"fmt"
)

// Code categorizes evaluation errors so callers can decide whether a
// failure is fatal to the batch or only to a single property.
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeMalformedExpression indicates a dice or range string that cannot
	// be parsed. Fatal to the single property being evaluated, never to
	// the batch.
	CodeMalformedExpression Code = "malformed_expression"

	// CodeAmbiguousLevel indicates a level field given as a range instead
	// of a scalar. Recovered locally by taking the lower bound.
	CodeAmbiguousLevel Code = "ambiguous_level"

	// CodeMissingField indicates a field absent at every level of an
	// entity's inheritance chain. Not an error for most properties; the
	// code exists for callers that require the field.
	CodeMissingField Code = "missing_field"

	// CodeInconsistentData indicates data in an unexpected shape, such as
	// a faction string missing its separator. The offending segment is
	// skipped and reported.
	CodeInconsistentData Code = "inconsistent_data"

	// CodeNotFound indicates a requested entity was not found in the index
	CodeNotFound Code = "not_found"

	// CodeInvalidArgument indicates the caller specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeInternal indicates an internal system error
	CodeInternal Code = "internal"
)

// Error represents an evaluation error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context, such as the entity and field
	// involved in the failure
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var qerr *Error
	if errors.As(err, &qerr) {
		return &Error{
			Code:    qerr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(qerr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper functions for common error types

// MalformedExpression creates a malformed expression error
func MalformedExpression(message string) *Error {
	return New(CodeMalformedExpression, message)
}

// MalformedExpressionf creates a formatted malformed expression error
func MalformedExpressionf(format string, args ...any) *Error {
	return Newf(CodeMalformedExpression, format, args...)
}

// AmbiguousLevel creates an ambiguous level error
func AmbiguousLevel(message string) *Error {
	return New(CodeAmbiguousLevel, message)
}

// MissingField creates a missing field error
func MissingField(message string) *Error {
	return New(CodeMissingField, message)
}

// MissingFieldf creates a formatted missing field error
func MissingFieldf(format string, args ...any) *Error {
	return Newf(CodeMissingField, format, args...)
}

// InconsistentData creates an inconsistent data error
func InconsistentData(message string) *Error {
	return New(CodeInconsistentData, message)
}

// InconsistentDataf creates a formatted inconsistent data error
func InconsistentDataf(format string, args ...any) *Error {
	return Newf(CodeInconsistentData, format, args...)
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var qerr *Error
	if errors.As(err, &qerr) {
		return qerr.Code == code
	}
	return false
}

// IsMalformedExpression checks if the error is a malformed expression error
func IsMalformedExpression(err error) bool {
	return Is(err, CodeMalformedExpression)
}

// IsAmbiguousLevel checks if the error is an ambiguous level error
func IsAmbiguousLevel(err error) bool {
	return Is(err, CodeAmbiguousLevel)
}

// IsMissingField checks if the error is a missing field error
func IsMissingField(err error) bool {
	return Is(err, CodeMissingField)
}

// IsInconsistentData checks if the error is an inconsistent data error
func IsInconsistentData(err error) bool {
	return Is(err, CodeInconsistentData)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsInternal checks if the error is an internal error
func IsInternal(err error) bool {
	return Is(err, CodeInternal)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var qerr *Error
	if errors.As(err, &qerr) {
		return qerr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var qerr *Error
	if errors.As(err, &qerr) {
		return qerr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
